package logging

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	sessionPrefix = "session_"
	sessionSuffix = ".log"
)

// GenerateSessionID creates a unique session identifier.
// Format: YYYYMMDD_HHMMSS_xxxx (timestamp + 4 random hex chars)
// Example: 20251217_205106_a7b3
func GenerateSessionID() string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return time.Now().Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// ShortSessionID extracts the short ID (last 4 hex chars) from a full session ID.
func ShortSessionID(sessionID string) string {
	if len(sessionID) < 4 {
		return sessionID
	}
	return sessionID[len(sessionID)-4:]
}

// ParseSessionFilename extracts the session ID from a log filename.
// Rotated backups ("session_<id>.log.<stamp>") are not sessions.
func ParseSessionFilename(filename string) (sessionID string, ok bool) {
	if !strings.HasPrefix(filename, sessionPrefix) || !strings.HasSuffix(filename, sessionSuffix) {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(filename, sessionPrefix), sessionSuffix)
	if id == "" {
		return "", false
	}
	return id, true
}

// SessionFilename generates the log filename for a session ID.
func SessionFilename(sessionID string) string {
	return sessionPrefix + sessionID + sessionSuffix
}

// SessionLog is a logger writing to the rotating file of one session.
type SessionLog struct {
	ID      string
	Logger  zerolog.Logger
	Rotator *LogRotator
}

// SessionLogOptions configures OpenSessionLog.
type SessionLogOptions struct {
	Dir        string
	Level      zerolog.Level
	Format     string
	MaxSizeMB  int
	MaxBackups int
}

// OpenSessionLog starts a new session log in opts.Dir. Every entry carries
// the session ID.
func OpenSessionLog(opts SessionLogOptions) (*SessionLog, error) {
	id := GenerateSessionID()
	rotator, err := NewLogRotator(RotatorOptions{
		Dir:        opts.Dir,
		FileName:   SessionFilename(id),
		MaxSizeMB:  opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		Compress:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("open session log: %w", err)
	}

	logger := New(Config{
		Level:      opts.Level,
		Format:     opts.Format,
		TimeFormat: time.RFC3339,
		Output:     rotator,
	}).With().Str("session", id).Logger()

	return &SessionLog{ID: id, Logger: logger, Rotator: rotator}, nil
}

// Close closes the log file.
func (s *SessionLog) Close() error {
	return s.Rotator.Close()
}

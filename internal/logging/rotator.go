package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const bytesPerMB = 1024 * 1024

// RotatorOptions configures a LogRotator. Zero MaxBackups and MaxAge keep
// every backup.
type RotatorOptions struct {
	Dir        string
	FileName   string
	MaxSizeMB  int
	MaxBackups int
	MaxAge     time.Duration
	Compress   bool
}

// LogRotator is an io.Writer that appends to Dir/FileName and moves the file
// aside once it would grow past MaxSizeMB.
type LogRotator struct {
	mu          sync.Mutex
	opts        RotatorOptions
	maxSize     int64
	currentFile *os.File
	currentSize int64
	now         func() time.Time
}

// NewLogRotator opens (or creates) the log file.
func NewLogRotator(opts RotatorOptions) (*LogRotator, error) {
	if opts.FileName == "" {
		return nil, fmt.Errorf("log rotator: file name is required")
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	r := &LogRotator{
		opts:    opts,
		maxSize: int64(opts.MaxSizeMB) * bytesPerMB,
		now:     time.Now,
	}
	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the path of the live log file.
func (r *LogRotator) Path() string {
	return filepath.Join(r.opts.Dir, r.opts.FileName)
}

func (r *LogRotator) openCurrentFile() error {
	logPath := r.Path()

	if info, err := os.Stat(logPath); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	r.currentFile = file
	return nil
}

func (r *LogRotator) Write(p []byte) (n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}

	if r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err = r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

// rotate must be called with r.mu held.
func (r *LogRotator) rotate() error {
	if err := r.currentFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close current log file: %v\n", err)
	}
	r.currentFile = nil

	backupPath := fmt.Sprintf("%s.%s", r.Path(), r.now().Format("2006-01-02-15-04-05.000"))
	if err := os.Rename(r.Path(), backupPath); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.opts.Compress {
		if err := compressFile(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to compress log file %s: %v\n", backupPath, err)
		} else if err := os.Remove(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove uncompressed log file %s: %v\n", backupPath, err)
		}
	}

	r.cleanup()

	r.currentSize = 0
	return r.openCurrentFile()
}

func compressFile(filePath string) (retErr error) {
	inputFile, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer func() { _ = inputFile.Close() }()

	outputFile, err := os.Create(filePath + ".gz")
	if err != nil {
		return err
	}
	defer func() {
		if err := outputFile.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}()

	gzipWriter := gzip.NewWriter(outputFile)
	if _, err := io.Copy(gzipWriter, inputFile); err != nil {
		_ = gzipWriter.Close()
		return err
	}
	return gzipWriter.Close()
}

// Backups lists rotated files of this log, oldest first.
func (r *LogRotator) Backups() []string {
	entries, err := os.ReadDir(r.opts.Dir)
	if err != nil {
		return nil
	}

	type backup struct {
		name string
		mod  time.Time
	}
	var backups []backup
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), r.opts.FileName+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		backups = append(backups, backup{name: e.Name(), mod: info.ModTime()})
	}
	sort.Slice(backups, func(i, j int) bool {
		if backups[i].mod.Equal(backups[j].mod) {
			return backups[i].name < backups[j].name
		}
		return backups[i].mod.Before(backups[j].mod)
	})

	names := make([]string, len(backups))
	for i, b := range backups {
		names[i] = b.name
	}
	return names
}

func (r *LogRotator) cleanup() {
	now := r.now()
	var kept []string
	for _, name := range r.Backups() {
		path := filepath.Join(r.opts.Dir, name)
		if r.opts.MaxAge > 0 {
			if info, err := os.Stat(path); err == nil && now.Sub(info.ModTime()) > r.opts.MaxAge {
				if err := os.Remove(path); err != nil {
					fmt.Fprintf(os.Stderr, "warning: failed to remove old log file: %v\n", err)
				}
				continue
			}
		}
		kept = append(kept, name)
	}

	if r.opts.MaxBackups > 0 && len(kept) > r.opts.MaxBackups {
		for _, name := range kept[:len(kept)-r.opts.MaxBackups] {
			if err := os.Remove(filepath.Join(r.opts.Dir, name)); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to remove excess backup file: %v\n", err)
			}
		}
	}
}

// Close closes the live file. Later writes reopen it.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}

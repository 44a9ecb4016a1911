package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/urlbar/internal/cli/styles"
	"github.com/bnema/urlbar/internal/logging"
)

func writeSession(t *testing.T, dir, id, content string, mod time.Time) string {
	t.Helper()
	path := filepath.Join(dir, logging.SessionFilename(id))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	require.NoError(t, os.Chtimes(path, mod, mod))
	return path
}

func testTheme() *styles.Theme {
	return styles.NewThemeFromBar(styles.DefaultDarkTheme())
}

func TestGetSessions_NewestFirstAndSkipsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeSession(t, dir, "20260101_100000_aaaa", "a\n", now.Add(-2*time.Hour))
	writeSession(t, dir, "20260102_100000_bbbb", "b\n", now.Add(-time.Hour))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, logging.SessionFilename("20260102_100000_bbbb")+".2026"), []byte("x"), 0o600))

	sessions, err := getSessions(dir)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "bbbb", sessions[0].ShortID)
	assert.Equal(t, "aaaa", sessions[1].ShortID)
}

func TestGetSessions_MissingDir(t *testing.T) {
	sessions, err := getSessions(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestFindSession(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeSession(t, dir, "20260101_100000_a7b3", "", now)
	writeSession(t, dir, "20260101_110000_c0de", "", now)

	t.Run("short id", func(t *testing.T) {
		s, err := findSession(dir, "A7B3")
		require.NoError(t, err)
		assert.Equal(t, "20260101_100000_a7b3", s.SessionID)
	})

	t.Run("partial id", func(t *testing.T) {
		s, err := findSession(dir, "110000")
		require.NoError(t, err)
		assert.Equal(t, "c0de", s.ShortID)
	})

	t.Run("ambiguous", func(t *testing.T) {
		_, err := findSession(dir, "20260101")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "multiple sessions")
	})

	t.Run("no match", func(t *testing.T) {
		_, err := findSession(dir, "zzzz")
		assert.Error(t, err)
	})
}

func TestShowSession_LastLines(t *testing.T) {
	dir := t.TempDir()
	path := writeSession(t, dir, "20260101_100000_aaaa", "one\ntwo\nthree\n", time.Now())

	var buf bytes.Buffer
	require.NoError(t, showSession(&buf, path, 2, testTheme()))

	out := buf.String()
	assert.NotContains(t, out, "one")
	assert.Contains(t, out, "two")
	assert.Contains(t, out, "three")
}

func TestColorizeLogLine_JSON(t *testing.T) {
	line := `{"level":"warn","time":"2026-01-01T10:11:12Z","component":"address-bar","message":"unknown theme"}`
	out := colorizeLogLine(line, testTheme())
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "address-bar:")
	assert.Contains(t, out, "unknown theme")
	assert.Contains(t, out, "10:11:12")
}

func TestColorizeLogLine_PlainPassesThrough(t *testing.T) {
	assert.Equal(t, "hello", colorizeLogLine("hello", testTheme()))
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "1.5 KB", formatSize(1536))
	assert.Equal(t, "2.0 MB", formatSize(2*1024*1024))
}

func TestClearSessions(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	old := writeSession(t, dir, "20250101_100000_0001", "x", now.AddDate(0, 0, -10))
	require.NoError(t, os.WriteFile(old+".2025-01-01-00-00-00.000.gz", []byte("x"), 0o600))
	recent := writeSession(t, dir, "20260101_100000_0002", "x", now.Add(-time.Hour))

	removed, err := clearSessions(dir, 7, false, now)
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Equal(t, "0001", removed[0].ShortID)
	assert.NoFileExists(t, old)
	assert.NoFileExists(t, old+".2025-01-01-00-00-00.000.gz")
	assert.FileExists(t, recent)

	removed, err = clearSessions(dir, 7, true, now)
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.NoFileExists(t, recent)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), "session_"), e.Name())
	}
}

package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRotator(t *testing.T, opts RotatorOptions) *LogRotator {
	t.Helper()
	r, err := NewLogRotator(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestLogRotator_WritesAndAppends(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	r := newTestRotator(t, RotatorOptions{Dir: dir, FileName: "a.log"})

	_, err := r.Write([]byte("one\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	// Writing after Close reopens the file in append mode.
	_, err = r.Write([]byte("two\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "a.log"))
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
	assert.Empty(t, r.Backups())
}

func TestLogRotator_RotatesPastMaxSize(t *testing.T) {
	dir := t.TempDir()
	r := newTestRotator(t, RotatorOptions{Dir: dir, FileName: "a.log", MaxSizeMB: 1, MaxBackups: 2})
	r.maxSize = 10

	stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.now = func() time.Time {
		stamp = stamp.Add(time.Second)
		return stamp
	}

	for _, line := range []string{"aaaaaaaa\n", "bbbbbbbb\n", "cccccccc\n", "dddddddd\n"} {
		_, err := r.Write([]byte(line))
		require.NoError(t, err)
	}

	data, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.Equal(t, "dddddddd\n", string(data))

	backups := r.Backups()
	require.Len(t, backups, 2, "oldest backup removed")
	for _, b := range backups {
		assert.False(t, strings.HasSuffix(b, ".gz"))
		assert.True(t, strings.HasPrefix(b, "a.log."))
	}
}

func TestLogRotator_CompressesBackups(t *testing.T) {
	dir := t.TempDir()
	r := newTestRotator(t, RotatorOptions{Dir: dir, FileName: "a.log", Compress: true})
	r.maxSize = 4

	_, err := r.Write([]byte("first\n"))
	require.NoError(t, err)
	_, err = r.Write([]byte("second\n"))
	require.NoError(t, err)

	backups := r.Backups()
	require.Len(t, backups, 1)
	assert.True(t, strings.HasSuffix(backups[0], ".gz"))
}

func TestNewLogRotator_RequiresFileName(t *testing.T) {
	_, err := NewLogRotator(RotatorOptions{Dir: t.TempDir()})
	assert.Error(t, err)
}

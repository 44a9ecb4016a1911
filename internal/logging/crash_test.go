package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogPanic_LogsAndRepanics(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	assert.PanicsWithValue(t, "boom", func() {
		defer LogPanic(&logger)
		panic("boom")
	})

	out := buf.String()
	assert.Contains(t, out, `"panic":"boom"`)
	assert.Contains(t, out, `"level":"fatal"`)
	assert.Contains(t, out, `"stack"`)
}

func TestLogPanic_NoPanicIsSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	func() {
		defer LogPanic(&logger)
	}()

	assert.Empty(t, buf.String())
}

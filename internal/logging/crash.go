package logging

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// LogPanic logs a recovered panic with its stack and re-panics. Use it
// deferred at the top of goroutines whose logs go to a file:
//
//	defer logging.LogPanic(logger)
func LogPanic(logger *zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}

	logger.WithLevel(zerolog.FatalLevel).
		Str("panic", fmt.Sprint(r)).
		Str("go", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", debug.Stack()).
		Msg("PANIC")

	panic(r)
}

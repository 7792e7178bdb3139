package core

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

var (
	// debugPrintln is the global debug print function (can be replaced by tests
	// or tools that want the trace elsewhere)
	debugPrintln DebugWriter = func(s string) { log.Println("periphfake:", s) }

	// debugEnabled traces context lifecycle and resolution.
	// Off by default; PERIPHFAKE_DEBUG=1 turns it on at startup.
	debugEnabled = envBool("PERIPHFAKE_DEBUG")
)

// SetDebugWriter redirects debug output and returns the previous writer
func SetDebugWriter(writer DebugWriter) DebugWriter {
	prev := debugPrintln
	debugPrintln = writer
	return prev
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

func debugf(format string, args ...any) {
	if !debugEnabled || debugPrintln == nil {
		return
	}
	debugPrintln(fmt.Sprintf(format, args...))
}

func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}

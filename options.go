package duotmpl

import (
	"log"
	"os"
)

// debugLogger receives low-level tracing output when debugging is enabled.
// It is unrelated to DiagnosticSink: DiagnosticSink carries user-facing
// deprecation warnings that are part of this package's contract, while
// debugLogger is an internal development aid that defaults to off.
var debugLogger = log.New(os.Stderr, "[duotmpl] ", log.Lshortfile)

// Debug controls whether the tokenizer logs internal tracing information
// (anchor matches, recognizer fallbacks) to debugLogger. It is false by
// default; tests and callers diagnosing a tokenizer bug may set it to true.
var Debug = false

func debugf(format string, args ...interface{}) {
	if !Debug {
		return
	}
	debugLogger.Printf(format, args...)
}

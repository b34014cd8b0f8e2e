package duotmpl

import (
	"io"
	"log"
)

// DiagnosticSink is the single capability the tokenizer needs from its
// caller: a place to send human-readable warning lines. The core never
// treats a warning as fatal; it issues one or more Warn calls and keeps
// tokenizing. Multi-line diagnostics (message, source line, caret) are
// sent as separate calls -- the core does the formatting, the sink just
// has to write each line somewhere.
type DiagnosticSink interface {
	Warn(message string)
}

// NopSink discards every warning. It is used when Tokenize is called with
// a nil sink.
type NopSink struct{}

// Warn implements DiagnosticSink by doing nothing.
func (NopSink) Warn(string) {}

// WriterSink writes each warning as its own line to an io.Writer, using
// the same bare *log.Logger pattern the rest of this package's ambient
// logging follows.
type WriterSink struct {
	logger *log.Logger
}

// NewWriterSink returns a DiagnosticSink that writes warnings to w, one
// per line, with no extra timestamp or prefix decoration.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{logger: log.New(w, "", 0)}
}

// Warn writes message to the underlying writer.
func (s *WriterSink) Warn(message string) {
	s.logger.Print(message)
}

// CollectorSink accumulates warnings in memory instead of writing them
// anywhere; it exists for tests that need to assert on exact diagnostic
// output without touching a real writer.
type CollectorSink struct {
	Messages []string
}

// Warn appends message to Messages.
func (s *CollectorSink) Warn(message string) {
	s.Messages = append(s.Messages, message)
}

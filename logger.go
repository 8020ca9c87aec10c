package scopenv

import (
	"fmt"
	"io"
)

// Logger defines minimal logging used inside the package.
// *log.Logger and *logrus.Logger both satisfy it.
type Logger interface {
	Printf(format string, args ...any)
}

type writerLogger struct {
	w io.Writer
}

func (l writerLogger) Printf(format string, args ...any) {
	fmt.Fprintf(l.w, format+"\n", args...)
}

// NewWriterLogger returns a Logger writing one line per call to w.
// A nil w discards everything.
func NewWriterLogger(w io.Writer) Logger {
	if w == nil {
		w = io.Discard
	}
	return writerLogger{w: w}
}

package download

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/merfiDEV/YT-Downloader/internal/console"
)

// ConsoleLogger prints library errors and hides debug and warning output
// unless verbose.
type ConsoleLogger struct {
	console console.Console
	msgs    *console.Catalog
	verbose bool
}

// NewConsoleLogger creates a logger writing to c
func NewConsoleLogger(c console.Console, msgs *console.Catalog, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{console: c, msgs: msgs, verbose: verbose}
}

// Debug prints msg only in verbose mode
func (l *ConsoleLogger) Debug(msg string) {
	if l.verbose {
		l.console.Tell(console.TonePlain, msg)
	}
}

// Warning prints msg only in verbose mode
func (l *ConsoleLogger) Warning(msg string) {
	if l.verbose {
		l.console.Tell(console.ToneWarning, msg)
	}
}

// Error prints a highlighted "ERROR: msg" line
func (l *ConsoleLogger) Error(msg string) {
	l.console.Tell(console.ToneFailure, l.msgs.Format(console.KeyLoggerError, msg))
}

// Writer returns an io.Writer that sends each written line to Debug.
// It is meant for log.SetOutput so libraries logging through the standard
// logger stay quiet.
func (l *ConsoleLogger) Writer() io.Writer {
	return &lineWriter{emit: l.Debug}
}

type lineWriter struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	emit func(string)
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// keep the partial line for the next write
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		if line = strings.TrimRight(line, "\r\n"); line != "" {
			w.emit(line)
		}
	}
	return len(p), nil
}

// Package terminal holds log lines in memory while a TUI owns the screen and writes them out afterwards.
package terminal

import (
	"bytes"
	"io"
	"log"
	"sync"
)

type (
	Log struct {
		dest    io.Writer
		logger  *log.Logger
		buf     bytes.Buffer
		mux     sync.Mutex
		verbose bool
	}
)

func NewLog(dest io.Writer, prefix string, verbose bool) *Log {
	l := Log{dest: dest, verbose: verbose}

	l.logger = log.New(&l.buf, prefix, 0)

	return &l
}

func (l *Log) Printf(format string, v ...any) {
	l.mux.Lock()
	defer l.mux.Unlock()

	l.logger.Printf(format, v...)
}

func (l *Log) Println(v ...any) {
	l.mux.Lock()
	defer l.mux.Unlock()

	l.logger.Println(v...)
}

// Debugf only records when the log was created verbose.
func (l *Log) Debugf(format string, v ...any) {
	if !l.verbose {
		return
	}

	l.Printf(format, v...)
}

func (l *Log) Verbose() bool {
	return l.verbose
}

// Writer returns a writer whose output lands in the same buffer as the log lines, without the prefix.
func (l *Log) Writer() io.Writer {
	return lockedWriter{l}
}

// Flush writes everything recorded so far to the destination and empties the buffer.
func (l *Log) Flush() error {
	l.mux.Lock()
	defer l.mux.Unlock()

	if l.buf.Len() == 0 {
		return nil
	}

	_, err := l.dest.Write(l.buf.Bytes())

	l.buf.Reset()

	return err
}

type lockedWriter struct {
	l *Log
}

func (w lockedWriter) Write(p []byte) (int, error) {
	w.l.mux.Lock()
	defer w.l.mux.Unlock()

	return w.l.buf.Write(p)
}

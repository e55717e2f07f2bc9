// Package transcript records everything shown to and typed by the user
// during a session.
package transcript

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pbaille/flashcards/internal/domain"
)

// Log prints messages to an output and keeps an ordered transcript
type Log struct {
	out   io.Writer
	lines []string
}

// New creates a Log that prints to out
func New(out io.Writer) *Log {
	return &Log{out: out}
}

// LogAndPrint prints message and appends it to the transcript
func (l *Log) LogAndPrint(message string) {
	fmt.Fprintln(l.out, message)
	l.lines = append(l.lines, message)
}

// AddToLog appends a line of user input to the transcript
func (l *Log) AddToLog(line string) {
	l.lines = append(l.lines, line)
}

// Lines returns a copy of the transcript
func (l *Log) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Save writes the transcript to path, one entry per line
func (l *Log) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &domain.NotFoundError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close transcript: %w: %w", domain.ErrIO, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range l.lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("write transcript: %w: %w", domain.ErrIO, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush transcript: %w: %w", domain.ErrIO, err)
	}
	return nil
}

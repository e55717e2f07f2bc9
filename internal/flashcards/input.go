package flashcards

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pbaille/flashcards/internal/domain"
)

// LineReader yields one line of user input per call.
// Once exhausted it returns an error wrapping domain.ErrNoInput.
type LineReader interface {
	ReadLine() (string, error)
}

// Sink records the transcript. LogAndPrint shows a message to the user and
// records it; AddToLog records raw user input without showing anything.
type Sink interface {
	LogAndPrint(message string)
	AddToLog(line string)
}

// Input reads lines from an io.Reader
type Input struct {
	scanner *bufio.Scanner
}

// NewInput wraps r as a LineReader
func NewInput(r io.Reader) *Input {
	return &Input{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next line without its terminator
func (in *Input) ReadLine() (string, error) {
	if in.scanner.Scan() {
		return in.scanner.Text(), nil
	}
	if err := in.scanner.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", domain.ErrNoInput
}

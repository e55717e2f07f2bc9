package flashcards

import (
	"strings"

	"github.com/pbaille/flashcards/internal/domain"
)

type callKind int

const (
	printed callKind = iota
	logged
)

type call struct {
	kind callKind
	text string
}

func printCall(text string) call { return call{kind: printed, text: text} }
func logCall(text string) call   { return call{kind: logged, text: text} }

// recordingSink captures every sink call in order
type recordingSink struct {
	calls []call
}

func (s *recordingSink) LogAndPrint(message string) {
	s.calls = append(s.calls, printCall(message))
}

func (s *recordingSink) AddToLog(line string) {
	s.calls = append(s.calls, logCall(line))
}

// printedLines returns only the LogAndPrint messages
func (s *recordingSink) printedLines() []string {
	var out []string
	for _, c := range s.calls {
		if c.kind == printed {
			out = append(out, c.text)
		}
	}
	return out
}

func (s *recordingSink) lastPrinted() string {
	lines := s.printedLines()
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}

func script(lines ...string) *Input {
	return NewInput(strings.NewReader(strings.Join(lines, "\n")))
}

// readerFunc lets a test compute each answer from what has been asked so far
type readerFunc func() (string, error)

func (f readerFunc) ReadLine() (string, error) { return f() }

// answerWith answers every quiz prompt using the definition lookup fn,
// after first returning count
func answerWith(sink *recordingSink, count string, fn func(term string) string) readerFunc {
	first := true
	return func() (string, error) {
		if first {
			first = false
			return count, nil
		}
		prompt := sink.lastPrinted()
		if !strings.HasPrefix(prompt, "Print the definition of \"") {
			return "", domain.ErrNoInput
		}
		term := strings.TrimSuffix(strings.TrimPrefix(prompt, "Print the definition of \""), "\":")
		return fn(term), nil
	}
}

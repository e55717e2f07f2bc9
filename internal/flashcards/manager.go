// Package flashcards implements the operations a study session runs against
// a deck: adding and removing cards, quizzing, statistics, and bulk
// import/export. All user-facing text goes through a Sink.
package flashcards

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/pbaille/flashcards/internal/domain"
	"github.com/pbaille/flashcards/internal/store"
)

const (
	errorWritingFile = "Error writing to the file."
	promptFileName   = "File name:"
)

// Manager owns a deck and runs commands against it
type Manager struct {
	deck   *store.Deck
	rng    *rand.Rand
	logger *slog.Logger
}

// Option configures a Manager
type Option func(*Manager)

// WithRand sets the source used to pick quiz questions
func WithRand(rng *rand.Rand) Option {
	return func(m *Manager) {
		m.rng = rng
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// New creates a Manager with an empty deck
func New(opts ...Option) *Manager {
	m := &Manager{deck: store.NewDeck()}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	return m
}

// Len returns the number of cards in the deck
func (m *Manager) Len() int {
	return m.deck.Len()
}

// Card returns the card stored under term
func (m *Manager) Card(term string) (*domain.Flashcard, bool) {
	return m.deck.Get(term)
}

// Put stores a card directly, bypassing validation
func (m *Manager) Put(term string, card *domain.Flashcard) {
	m.deck.Put(term, card)
}

// Each calls fn for every card in insertion order
func (m *Manager) Each(fn func(term string, card *domain.Flashcard)) {
	m.deck.Each(fn)
}

// ask shows a prompt, reads the answer and records it in the transcript
func ask(in LineReader, sink Sink, prompt string) (string, error) {
	sink.LogAndPrint(prompt)
	line, err := in.ReadLine()
	if err != nil {
		return "", err
	}
	sink.AddToLog(line)
	return line, nil
}

func (m *Manager) checkTerm(term string) error {
	if term == "" {
		return domain.ErrEmptyTerm
	}
	if _, ok := m.deck.Get(term); ok {
		return domain.ErrDuplicateTerm
	}
	return nil
}

func (m *Manager) checkDefinition(definition string) error {
	if definition == "" {
		return domain.ErrEmptyDefinition
	}
	if _, ok := m.deck.HasDefinition(definition); ok {
		return domain.ErrDuplicateDefinition
	}
	return nil
}

// rejection returns the user-facing message for a validation error
func rejection(err error, value string) string {
	switch {
	case errors.Is(err, domain.ErrEmptyTerm):
		return "The term cannot be empty. Please enter a valid term."
	case errors.Is(err, domain.ErrDuplicateTerm):
		return fmt.Sprintf("The card \"%s\" already exists.", value)
	case errors.Is(err, domain.ErrEmptyDefinition):
		return "The definition cannot be empty. Please enter a valid term."
	case errors.Is(err, domain.ErrDuplicateDefinition):
		return fmt.Sprintf("The definition \"%s\" already exists.", value)
	default:
		return err.Error()
	}
}

// AddCard reads a term and a definition and adds them as a new card.
// Invalid input is reported to the user and is not an error.
func (m *Manager) AddCard(in LineReader, sink Sink) error {
	term, err := ask(in, sink, "The card:")
	if err != nil {
		return fmt.Errorf("read term: %w", err)
	}
	if err := m.checkTerm(term); err != nil {
		sink.LogAndPrint(rejection(err, term))
		return nil
	}

	definition, err := ask(in, sink, "The definition of the card:")
	if err != nil {
		return fmt.Errorf("read definition: %w", err)
	}
	if err := m.checkDefinition(definition); err != nil {
		sink.LogAndPrint(rejection(err, definition))
		return nil
	}

	m.deck.Put(term, domain.NewFlashcard(definition))
	sink.LogAndPrint(fmt.Sprintf("The pair (\"%s\":\"%s\") has been added.", term, definition))
	m.logger.Debug("card added", "term", term, "cards", m.deck.Len())
	return nil
}

// RemoveCard reads a term and removes its card
func (m *Manager) RemoveCard(in LineReader, sink Sink) error {
	term, err := ask(in, sink, "Which card?")
	if err != nil {
		return fmt.Errorf("read term: %w", err)
	}

	if !m.deck.Delete(term) {
		sink.LogAndPrint(fmt.Sprintf("Can't remove \"%s\": there is no such card.", term))
		return nil
	}

	sink.LogAndPrint("The card has been removed.")
	m.logger.Debug("card removed", "term", term, "cards", m.deck.Len())
	return nil
}

// ResetStats sets every card's mistake count to zero
func (m *Manager) ResetStats(sink Sink) {
	m.deck.Each(func(_ string, card *domain.Flashcard) {
		card.ResetMistakes()
	})
	sink.LogAndPrint("Card statistics have been reset.")
}

// PrintHardestCard reports the card or cards with the most mistakes.
// Ties are listed in insertion order.
func (m *Manager) PrintHardestCard(sink Sink) {
	sink.LogAndPrint(m.HardestCardReport())
}

// HardestCardReport builds the message PrintHardestCard shows
func (m *Manager) HardestCardReport() string {
	top := 0
	var hardest []string
	m.deck.Each(func(term string, card *domain.Flashcard) {
		switch {
		case card.Mistakes > top:
			top = card.Mistakes
			hardest = []string{term}
		case card.Mistakes == top && top > 0:
			hardest = append(hardest, term)
		}
	})

	if top == 0 {
		return "There are no cards with errors."
	}

	quoted := make([]string, len(hardest))
	for i, term := range hardest {
		quoted[i] = `"` + term + `"`
	}

	if len(hardest) == 1 {
		return fmt.Sprintf("The hardest card is %s. You have %d errors answering it.", quoted[0], top)
	}
	return fmt.Sprintf("The hardest cards are %s. You have %d errors answering them.", strings.Join(quoted, ", "), top)
}

// AskDefinitions quizzes the user on randomly chosen cards. A wrong answer
// adds a mistake to the card that was asked.
func (m *Manager) AskDefinitions(in LineReader, sink Sink) error {
	sink.LogAndPrint("How many times to ask?")
	raw, err := in.ReadLine()
	if err != nil {
		return fmt.Errorf("read count: %w", err)
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		sink.LogAndPrint("Invalid number format: " + raw)
		return fmt.Errorf("parse count %q: %w", raw, domain.ErrInvalidNumberFormat)
	}
	sink.AddToLog(raw)

	terms := m.deck.Terms()
	if len(terms) == 0 {
		sink.LogAndPrint("There are no cards.")
		return nil
	}

	for range count {
		term := terms[m.rng.IntN(len(terms))]
		card, _ := m.deck.Get(term)

		answer, err := ask(in, sink, fmt.Sprintf("Print the definition of \"%s\":", term))
		if err != nil {
			return fmt.Errorf("read answer: %w", err)
		}

		if answer == card.Definition {
			sink.LogAndPrint("Correct!")
			continue
		}

		card.RecordMistake()
		if other, ok := m.deck.HasDefinition(answer); ok && other != term {
			sink.LogAndPrint(fmt.Sprintf("Wrong. The right answer is \"%s\", but your definition is correct for \"%s\".", card.Definition, other))
		} else {
			sink.LogAndPrint(fmt.Sprintf("Wrong. The right answer is \"%s\".", card.Definition))
		}
	}

	return nil
}

// ImportCards asks for a file name and imports it
func (m *Manager) ImportCards(in LineReader, sink Sink) error {
	path, err := ask(in, sink, promptFileName)
	if err != nil {
		return fmt.Errorf("read file name: %w", err)
	}

	if err := m.ImportFile(path, sink); err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			sink.LogAndPrint("File not found: " + path)
		}
		return err
	}
	return nil
}

// ImportFile loads every card in path. Existing terms are overwritten.
// A malformed file leaves the deck unchanged.
func (m *Manager) ImportFile(path string, sink Sink) error {
	f, err := os.Open(path)
	if err != nil {
		sink.LogAndPrint("File not found.")
		return &domain.NotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	records, err := store.ParseRecords(f)
	if err != nil {
		sink.LogAndPrint(errorWritingFile)
		return fmt.Errorf("import %s: %w", path, err)
	}

	for _, rec := range records {
		m.deck.Put(rec.Term, &domain.Flashcard{Definition: rec.Definition, Mistakes: rec.Mistakes})
	}

	sink.LogAndPrint(fmt.Sprintf("%d cards have been loaded.", len(records)))
	m.logger.Info("cards imported", "path", path, "count", len(records))
	return nil
}

// ExportCards asks for a file name and exports the deck to it
func (m *Manager) ExportCards(in LineReader, sink Sink) error {
	path, err := ask(in, sink, promptFileName)
	if err != nil {
		return fmt.Errorf("read file name: %w", err)
	}

	if err := m.ExportFile(path, sink); err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			sink.LogAndPrint("File not found: " + path)
		}
		return err
	}
	return nil
}

// ExportFile writes the deck to path, replacing any existing file
func (m *Manager) ExportFile(path string, sink Sink) error {
	f, err := os.Create(path)
	if err != nil {
		sink.LogAndPrint(errorWritingFile)
		return &domain.NotFoundError{Path: path, Err: err}
	}

	n, err := store.WriteRecords(f, m.deck)
	if err != nil {
		f.Close()
		sink.LogAndPrint(errorWritingFile)
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		sink.LogAndPrint(errorWritingFile)
		return fmt.Errorf("close %s: %w: %w", path, domain.ErrIO, err)
	}

	sink.LogAndPrint(fmt.Sprintf("%d cards have been saved.", n))
	m.logger.Info("cards exported", "path", path, "count", n)
	return nil
}

// CheckArgs looks for "-import <path>" (or "-export <path>" when export is
// set) in args and runs the matching file operation. Missing flags are not
// an error.
func (m *Manager) CheckArgs(args []string, export bool, sink Sink) error {
	flag := "-import"
	if export {
		flag = "-export"
	}

	for i := 0; i < len(args)-1; i++ {
		if args[i] != flag {
			continue
		}
		if export {
			return m.ExportFile(args[i+1], sink)
		}
		return m.ImportFile(args[i+1], sink)
	}
	return nil
}

// Package session runs the interactive menu loop of the flashcards program.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pbaille/flashcards/internal/domain"
	"github.com/pbaille/flashcards/internal/flashcards"
)

const menu = "Input the action (add, remove, import, export, ask, exit, log, hardest card, reset stats):"

// Deck is the set of card operations the menu dispatches to
type Deck interface {
	AddCard(in flashcards.LineReader, sink flashcards.Sink) error
	RemoveCard(in flashcards.LineReader, sink flashcards.Sink) error
	ImportCards(in flashcards.LineReader, sink flashcards.Sink) error
	ExportCards(in flashcards.LineReader, sink flashcards.Sink) error
	AskDefinitions(in flashcards.LineReader, sink flashcards.Sink) error
	PrintHardestCard(sink flashcards.Sink)
	ResetStats(sink flashcards.Sink)
	CheckArgs(args []string, export bool, sink flashcards.Sink) error
}

// Transcript is a sink that can be written to a file
type Transcript interface {
	flashcards.Sink
	Save(path string) error
}

// Session drives a deck from line-oriented user input
type Session struct {
	deck   Deck
	log    Transcript
	logger *slog.Logger
}

// New creates a Session
func New(deck Deck, log Transcript, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{deck: deck, log: log, logger: logger}
}

// Run imports the -import file named in args, then reads actions until
// "exit" or the end of input, and finally exports to the -export file.
// Only a failed final export is returned as an error.
func (s *Session) Run(ctx context.Context, in flashcards.LineReader, args []string) error {
	if err := s.deck.CheckArgs(args, false, s.log); err != nil {
		s.logger.Warn("initial import failed", "error", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.log.LogAndPrint(menu)
		action, err := in.ReadLine()
		if errors.Is(err, domain.ErrNoInput) {
			return s.exit(args)
		}
		if err != nil {
			return fmt.Errorf("read action: %w", err)
		}
		s.log.AddToLog(action)

		if action == "exit" {
			return s.exit(args)
		}

		if err := s.dispatch(action, in); err != nil {
			if errors.Is(err, domain.ErrNoInput) {
				return s.exit(args)
			}
			s.logger.Warn("action failed", "action", action, "error", err)
		}
		s.log.LogAndPrint("")
	}
}

func (s *Session) dispatch(action string, in flashcards.LineReader) error {
	switch action {
	case "add":
		return s.deck.AddCard(in, s.log)
	case "remove":
		return s.deck.RemoveCard(in, s.log)
	case "import":
		return s.deck.ImportCards(in, s.log)
	case "export":
		return s.deck.ExportCards(in, s.log)
	case "ask":
		return s.deck.AskDefinitions(in, s.log)
	case "log":
		return s.saveLog(in)
	case "hardest card":
		s.deck.PrintHardestCard(s.log)
	case "reset stats":
		s.deck.ResetStats(s.log)
	default:
		s.log.LogAndPrint(fmt.Sprintf("Unknown action \"%s\".", action))
	}
	return nil
}

func (s *Session) saveLog(in flashcards.LineReader) error {
	s.log.LogAndPrint("File name:")
	path, err := in.ReadLine()
	if err != nil {
		return fmt.Errorf("read file name: %w", err)
	}
	s.log.AddToLog(path)

	if err := s.log.Save(path); err != nil {
		s.log.LogAndPrint("Error writing to the file.")
		return fmt.Errorf("save log: %w", err)
	}
	s.log.LogAndPrint("The log has been saved.")
	return nil
}

func (s *Session) exit(args []string) error {
	s.log.LogAndPrint("Bye bye!")
	if err := s.deck.CheckArgs(args, true, s.log); err != nil {
		return fmt.Errorf("export on exit: %w", err)
	}
	return nil
}

// Package store holds the in-memory card deck and its flat-file format.
//
// The file format is one card per line, written as term:definition:mistakes.
// Colons inside a term or definition are not escaped, so such cards cannot
// round-trip.
package store

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pbaille/flashcards/internal/domain"
)

const fieldSeparator = ":"

// Record is one parsed line of a card file
type Record struct {
	Term       string
	Definition string
	Mistakes   int
}

// ParseRecords reads every line of r. It stops at the first malformed line
// and returns no records in that case.
func ParseRecords(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		rec, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read cards: %w: %w", domain.ErrIO, err)
	}

	return records, nil
}

func parseLine(line string) (Record, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 3 {
		return Record{}, fmt.Errorf("%w: expected 3 fields, got %d", domain.ErrInvalidLineFormat, len(fields))
	}
	if fields[0] == "" {
		return Record{}, fmt.Errorf("%w: empty term", domain.ErrInvalidLineFormat)
	}

	mistakes, err := strconv.Atoi(fields[2])
	if err != nil || mistakes < 0 {
		return Record{}, fmt.Errorf("%w: bad mistake count %q", domain.ErrInvalidLineFormat, fields[2])
	}

	return Record{Term: fields[0], Definition: fields[1], Mistakes: mistakes}, nil
}

// FormatRecord renders a card as a single line without the trailing newline
func FormatRecord(term string, card *domain.Flashcard) string {
	return term + fieldSeparator + card.Definition + fieldSeparator + strconv.Itoa(card.Mistakes)
}

// WriteRecords writes every card of deck to w in insertion order and
// returns how many lines were written
func WriteRecords(w io.Writer, deck *Deck) (int, error) {
	bw := bufio.NewWriter(w)

	n := 0
	var werr error
	deck.Each(func(term string, card *domain.Flashcard) {
		if werr != nil {
			return
		}
		if _, err := bw.WriteString(FormatRecord(term, card) + "\n"); err != nil {
			werr = err
			return
		}
		n++
	})
	if werr != nil {
		return n, fmt.Errorf("write cards: %w: %w", domain.ErrIO, werr)
	}

	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("flush cards: %w: %w", domain.ErrIO, err)
	}
	return n, nil
}

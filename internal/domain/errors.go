// Package domain defines the flashcard entity and the errors shared across packages.
package domain

import "errors"

// Validation errors. The manager reports these to the user and recovers;
// they never escape an operation.
var (
	// ErrEmptyTerm is returned when a term is blank.
	ErrEmptyTerm = errors.New("term cannot be empty")

	// ErrEmptyDefinition is returned when a definition is blank.
	ErrEmptyDefinition = errors.New("definition cannot be empty")

	// ErrDuplicateTerm is returned when a term is already in the deck.
	ErrDuplicateTerm = errors.New("term already exists")

	// ErrDuplicateDefinition is returned when another card already uses a definition.
	ErrDuplicateDefinition = errors.New("definition already exists")
)

// Structural errors. These abort the operation and propagate to the caller.
var (
	// ErrFileNotFound is returned when an import source cannot be opened
	// or an export destination cannot be created.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidLineFormat is returned when an import file line is not
	// term:definition:mistakes. The text is matched by existing tooling.
	ErrInvalidLineFormat = errors.New("Invalid line format")

	// ErrInvalidNumberFormat is returned when the quiz repeat count is not an integer.
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// ErrIO is returned for read or write failures on an already opened file.
	ErrIO = errors.New("i/o failure")

	// ErrNoInput is returned when the input source has no more lines.
	ErrNoInput = errors.New("no more input")
)

// NotFoundError reports a card file that could not be opened or created.
// It matches ErrFileNotFound and the underlying os error.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return "File not found: " + e.Path
}

func (e *NotFoundError) Unwrap() []error {
	return []error{ErrFileNotFound, e.Err}
}

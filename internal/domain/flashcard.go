package domain

// Flashcard holds a definition and the number of wrong answers given for it.
// The term is the key it is stored under, not part of the card.
type Flashcard struct {
	Definition string `json:"definition"`
	Mistakes   int    `json:"mistakes"`
}

// NewFlashcard creates a card with no recorded mistakes
func NewFlashcard(definition string) *Flashcard {
	return &Flashcard{Definition: definition}
}

// ResetMistakes clears the mistake counter
func (f *Flashcard) ResetMistakes() {
	f.Mistakes = 0
}

// RecordMistake increments the mistake counter
func (f *Flashcard) RecordMistake() {
	f.Mistakes++
}

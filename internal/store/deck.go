package store

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/pbaille/flashcards/internal/domain"
)

// Deck maps terms to flashcards and iterates in insertion order
type Deck struct {
	cards *orderedmap.OrderedMap[string, *domain.Flashcard]
}

// NewDeck creates an empty Deck
func NewDeck() *Deck {
	return &Deck{cards: orderedmap.New[string, *domain.Flashcard]()}
}

// Len returns the number of cards
func (d *Deck) Len() int {
	return d.cards.Len()
}

// Get returns the card stored under term
func (d *Deck) Get(term string) (*domain.Flashcard, bool) {
	return d.cards.Get(term)
}

// Put inserts or replaces the card for term. A replaced term keeps its
// original position.
func (d *Deck) Put(term string, card *domain.Flashcard) {
	d.cards.Set(term, card)
}

// Delete removes term and reports whether it was present
func (d *Deck) Delete(term string) bool {
	_, ok := d.cards.Delete(term)
	return ok
}

// Each calls fn for every card in insertion order
func (d *Deck) Each(fn func(term string, card *domain.Flashcard)) {
	for pair := d.cards.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Terms returns all terms in insertion order
func (d *Deck) Terms() []string {
	terms := make([]string, 0, d.cards.Len())
	d.Each(func(term string, _ *domain.Flashcard) {
		terms = append(terms, term)
	})
	return terms
}

// HasDefinition returns the first term whose card has the given definition
func (d *Deck) HasDefinition(definition string) (string, bool) {
	for pair := d.cards.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Definition == definition {
			return pair.Key, true
		}
	}
	return "", false
}

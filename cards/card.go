// Package cards holds the card records shown by the swipedeck application
// and loads decks from YAML files or the embedded default deck.
package cards

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

var (
	ErrEmptyDeckFile = errors.New("cards: deck file has no cards")
	ErrDuplicateID   = errors.New("cards: duplicate card id")
	ErrNotFound      = errors.New("cards: deck not found")
)

// Card is one swipeable record
type Card struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Color string `yaml:"color"`
}

// Key implements deck.Item
func (c Card) Key() string { return c.ID }

// Accent returns the card's accent color, falling back to the default
func (c Card) Accent() tcell.Color {
	if c.Color == "" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(c.Color)
}

// Deck is a named, ordered card list
type Deck struct {
	Name  string `yaml:"name"`
	Cards []Card `yaml:"cards"`
}

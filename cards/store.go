package cards

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var deckFS embed.FS

const defaultDeckFile = "data/default.yaml"

// Default returns the embedded starter deck
func Default() (Deck, error) {
	raw, err := deckFS.ReadFile(defaultDeckFile)
	if err != nil {
		return Deck{}, fmt.Errorf("read embedded deck: %w", err)
	}
	return Parse(raw)
}

// LoadFile reads a deck from a YAML file
func LoadFile(path string) (Deck, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Deck{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Deck{}, fmt.Errorf("read deck %s: %w", path, err)
	}
	d, err := Parse(raw)
	if err != nil {
		return Deck{}, fmt.Errorf("deck %s: %w", path, err)
	}
	return d, nil
}

// Load reads path, or the embedded deck when path is empty
func Load(path string) (Deck, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes a YAML deck, assigning UUIDs to cards without an id
// Every call returns a freshly allocated card slice
func Parse(raw []byte) (Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Deck{}, fmt.Errorf("parse deck: %w", err)
	}
	if len(d.Cards) == 0 {
		return Deck{}, ErrEmptyDeckFile
	}

	seen := make(map[string]struct{}, len(d.Cards))
	for i := range d.Cards {
		if d.Cards[i].ID == "" {
			d.Cards[i].ID = uuid.NewString()
		}
		if _, dup := seen[d.Cards[i].ID]; dup {
			return Deck{}, fmt.Errorf("%w: %q", ErrDuplicateID, d.Cards[i].ID)
		}
		seen[d.Cards[i].ID] = struct{}{}
	}
	return d, nil
}

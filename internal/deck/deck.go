// Package deck loads the stories shown by the carousel from TOML files.
package deck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"storyviewer/internal/domain"
)

// ErrEmptyDeck is returned for decks without any story
var ErrEmptyDeck = errors.New("deck has no stories")

// Deck is an ordered list of stories
type Deck struct {
	Title   string         `toml:"title"`
	Stories []domain.Story `toml:"story"`
}

// Parse decodes a deck. Stories without a title are named after their
// position.
func Parse(data []byte) (*Deck, error) {
	var d Deck
	if err := toml.Unmarshal(data, &d); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("invalid deck at line %d, column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("invalid deck: %w", err)
	}

	if len(d.Stories) == 0 {
		return nil, ErrEmptyDeck
	}

	for i := range d.Stories {
		s := &d.Stories[i]
		s.Title = strings.TrimSpace(s.Title)
		if s.Title == "" {
			s.Title = fmt.Sprintf("Story %d", i+1)
		}
		s.Body = strings.TrimSpace(s.Body)
	}

	return &d, nil
}

// Load reads and parses the deck at path
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if d.Title == "" {
		d.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return d, nil
}

// WriteFile writes d to path as TOML
func WriteFile(path string, d *Deck) error {
	if d == nil || len(d.Stories) == 0 {
		return ErrEmptyDeck
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create deck directory: %w", err)
	}
	data, err := toml.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal deck: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write deck: %w", err)
	}
	return nil
}

// Sample returns the built-in deck shown when no deck file is configured
func Sample() *Deck {
	return &Deck{
		Title: "Welcome",
		Stories: []domain.Story{
			{
				Title:  "Swipe",
				Body:   "Drag a story left or right with the mouse. Let go past the edge and the next one snaps in.",
				Author: "storyviewer",
				Color:  "99",
			},
			{
				Title:  "Click",
				Body:   "The arrows on the sides step one story back or forward. The bars at the bottom jump straight to a story.",
				Author: "storyviewer",
				Color:  "39",
			},
			{
				Title:  "Keys",
				Body:   "h and l, or the arrow keys, move between stories. 1 to 9 jump. ? opens the full help.",
				Author: "storyviewer",
				Color:  "78",
			},
			{
				Title:  "Your own deck",
				Body:   "Run storyviewer -init stories.toml to write this deck to a file, edit it, and open it with -deck. Changes are picked up while running.",
				Author: "storyviewer",
				Color:  "214",
			},
		},
	}
}

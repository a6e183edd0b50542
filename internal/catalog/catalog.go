// internal/catalog/catalog.go
package catalog

import (
	"cardhawk/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	val "cardhawk/internal/validator"
)

var (
	ErrDuplicateCard = errors.New("duplicate card id")
	ErrInvalidCard   = errors.New("invalid card")
	ErrUnknownCard   = errors.New("unknown card")
)

// Catalog is the read-only card collection. Safe for concurrent use once loaded.
type Catalog struct {
	cards []domain.Card
	byID  map[string]int
}

// Load validates cards and builds a catalog. Catalog order is preserved and is the
// tie-break order for every ranking.
func Load(cards []domain.Card) (*Catalog, error) {
	c := &Catalog{
		cards: make([]domain.Card, 0, len(cards)),
		byID:  make(map[string]int, len(cards)),
	}
	for _, card := range cards {
		if err := validateCard(card); err != nil {
			return nil, err
		}
		if _, exists := c.byID[card.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCard, card.ID)
		}
		c.byID[card.ID] = len(c.cards)
		c.cards = append(c.cards, card)
	}
	return c, nil
}

// LoadJSON reads a catalog from a JSON array of cards.
func LoadJSON(r io.Reader) (*Catalog, error) {
	var cards []domain.Card
	if err := json.NewDecoder(r).Decode(&cards); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return Load(cards)
}

// LoadFile loads a JSON catalog from path, or the built-in catalog when path is empty.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := LoadJSON(f)
	if err != nil {
		return nil, err
	}
	slog.Info("Catalog loaded", "path", path, "cards", c.Len())
	return c, nil
}

func Default() (*Catalog, error) {
	return Load(defaultCards)
}

// MustDefault panics if the built-in catalog is inconsistent.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}

func validateCard(card domain.Card) error {
	if err := val.Validate.Struct(card); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidCard, card.ID, err)
	}
	seen := make(map[string]bool, len(card.EarningRates))
	for _, er := range card.EarningRates {
		if seen[er.Category] {
			return fmt.Errorf("%w %q: category %q listed twice", ErrInvalidCard, card.ID, er.Category)
		}
		seen[er.Category] = true
	}
	return nil
}

func (c *Catalog) Len() int {
	return len(c.cards)
}

// All returns a copy of every card in catalog order.
func (c *Catalog) All() []domain.Card {
	return append([]domain.Card(nil), c.cards...)
}

func (c *Catalog) Get(id string) (domain.Card, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Card{}, false
	}
	return c.cards[i], true
}

// Contains reports whether id names a catalog card.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Resolve maps card ids to cards in catalog order. Any unknown id fails the whole call.
func (c *Catalog) Resolve(ids []string) ([]domain.Card, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !c.Contains(id) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCard, id)
		}
		want[id] = true
	}
	cards := make([]domain.Card, 0, len(want))
	for _, card := range c.cards {
		if want[card.ID] {
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// Issuers returns the distinct issuers, sorted.
func (c *Catalog) Issuers() []string {
	seen := make(map[string]bool)
	var issuers []string
	for _, card := range c.cards {
		if !seen[card.Issuer] {
			seen[card.Issuer] = true
			issuers = append(issuers, card.Issuer)
		}
	}
	sort.Strings(issuers)
	return issuers
}

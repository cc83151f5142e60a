// README: Immutable tier catalog built once at start-up.
package pricing

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTier    = errors.New("unknown tier")
	ErrInvalidCatalog = errors.New("invalid tier catalog")
)

// Catalog is safe for concurrent reads; it is never mutated after NewCatalog.
type Catalog struct {
	tiers []Tier
	byID  map[string]int
}

func NewCatalog(tiers []Tier) (*Catalog, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: no tiers", ErrInvalidCatalog)
	}
	c := &Catalog{
		tiers: make([]Tier, len(tiers)),
		byID:  make(map[string]int, len(tiers)),
	}
	copy(c.tiers, tiers)
	for i, t := range c.tiers {
		if err := validateTier(t); err != nil {
			return nil, err
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate tier id %q", ErrInvalidCatalog, t.ID)
		}
		c.byID[t.ID] = i
	}
	return c, nil
}

// MustDefaultCatalog panics only if the built-in tiers are broken.
func MustDefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultTiers())
	if err != nil {
		panic(err)
	}
	return c
}

func validateTier(t Tier) error {
	switch {
	case t.ID == "":
		return fmt.Errorf("%w: empty tier id", ErrInvalidCatalog)
	case t.BasePrice < 0 || t.PricePerKm < 0:
		return fmt.Errorf("%w: tier %q has a negative price", ErrInvalidCatalog, t.ID)
	case t.Capacity <= 0:
		return fmt.Errorf("%w: tier %q capacity must be positive", ErrInvalidCatalog, t.ID)
	}
	return nil
}

// All returns the tiers in catalog order.
func (c *Catalog) All() []Tier {
	out := make([]Tier, len(c.tiers))
	copy(out, c.tiers)
	return out
}

func (c *Catalog) Get(id string) (Tier, error) {
	i, ok := c.byID[id]
	if !ok {
		return Tier{}, ErrUnknownTier
	}
	return c.tiers[i], nil
}

func (c *Catalog) Len() int {
	return len(c.tiers)
}

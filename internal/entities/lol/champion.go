package lol

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Champion is a single catalog entry. Tags are kept as published so that a
// malformed entry can be reported by name when the catalog is indexed.
type Champion struct {
	// ID is the Data Dragon identifier, unique within a catalog (e.g. "MonkeyKing")
	ID string
	// Key is the numeric champion key as a string (e.g. "62")
	Key   string
	Name  string
	Title string
	Tags  []string
}

// GetID returns the champion ID
func (c *Champion) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Champion) GetType() string {
	return "champion"
}

// DisplayName prefers the human readable name over the identifier.
func (c *Champion) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

var _ core.Entity = (*Champion)(nil)

// Catalog is the ordered champion list for one game version. Indices into
// Champions are stable for the lifetime of the value.
type Catalog struct {
	Version   string
	Champions []Champion

	byID map[string]int
}

// NewCatalog builds a catalog and its ID lookup.
func NewCatalog(version string, champions []Champion) *Catalog {
	c := &Catalog{
		Version:   version,
		Champions: champions,
		byID:      make(map[string]int, len(champions)),
	}
	for i := range champions {
		c.byID[champions[i].ID] = i
	}
	return c
}

// Len returns the number of champions
func (c *Catalog) Len() int {
	return len(c.Champions)
}

// Lookup finds a champion by ID.
func (c *Catalog) Lookup(id string) (*Champion, bool) {
	if c.byID == nil {
		for i := range c.Champions {
			if c.Champions[i].ID == id {
				return &c.Champions[i], true
			}
		}
		return nil, false
	}
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.Champions[i], true
}

// IDs maps indices to champion IDs.
func (c *Catalog) IDs(indices []int) []string {
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = c.Champions[idx].ID
	}
	return out
}

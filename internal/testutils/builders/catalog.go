package builders

import (
	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
)

// CatalogBuilder provides a fluent interface for building test catalogs
type CatalogBuilder struct {
	version   string
	champions []lol.Champion
}

// NewCatalogBuilder creates an empty catalog builder
func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{version: "14.1.1"}
}

// WithVersion sets the catalog version
func (b *CatalogBuilder) WithVersion(version string) *CatalogBuilder {
	b.version = version
	return b
}

// WithChampion appends a champion whose name matches its ID
func (b *CatalogBuilder) WithChampion(id string, tags ...lol.Tag) *CatalogBuilder {
	raw := make([]string, len(tags))
	for i, t := range tags {
		raw[i] = t.String()
	}
	b.champions = append(b.champions, lol.Champion{ID: id, Name: id, Tags: raw})
	return b
}

// Build returns the catalog
func (b *CatalogBuilder) Build() *lol.Catalog {
	return lol.NewCatalog(b.version, b.champions)
}

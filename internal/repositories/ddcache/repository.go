// Package ddcache stores raw Data Dragon documents keyed by request identity.
// Entries never expire; Clear is the only invalidation.
package ddcache

import (
	"context"
	"crypto/md5" // #nosec G501 -- content addressing, not security
	"encoding/hex"
	"strings"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=ddcachemock github.com/KirkDiggler/custom-lobby/internal/repositories/ddcache Repository

// CacheKey identifies a cached document. Parts are ordered, e.g.
// endpoint, version, language.
type CacheKey []string

// Hash is the hex md5 of the parts joined by NUL
func (k CacheKey) Hash() string {
	sum := md5.Sum([]byte(strings.Join(k, "\x00"))) // #nosec G401
	return hex.EncodeToString(sum[:])
}

func (k CacheKey) String() string {
	return strings.Join(k, "/")
}

// GetInput contains parameters for reading a cached document
type GetInput struct {
	Key CacheKey
}

// GetOutput contains the cached document
type GetOutput struct {
	Data []byte
}

// PutInput contains parameters for storing a document
type PutInput struct {
	Key  CacheKey
	Data []byte
}

// PutOutput contains the result of storing a document
type PutOutput struct{}

// ClearOutput contains the result of emptying the cache
type ClearOutput struct {
	Removed int
}

// Repository defines the storage operations for cached documents
type Repository interface {
	// Get returns the stored bytes, or a NotFound error on a miss
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores the bytes, replacing any previous entry
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Clear removes every entry this repository owns
	Clear(ctx context.Context) (*ClearOutput, error)
}

package ddcache

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/KirkDiggler/custom-lobby/internal/errors"
)

var hashFileName = regexp.MustCompile(`^[0-9a-f]{32}$`)

// DiskConfig holds the configuration for the disk repository
type DiskConfig struct {
	Dir string
}

// Validate ensures all required fields are provided
func (c *DiskConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("dir", c.Dir, vb)
	return vb.Build()
}

type diskRepository struct {
	dir string
}

// NewDisk creates a repository keeping one file per key under cfg.Dir
func NewDisk(cfg *DiskConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &diskRepository{dir: cfg.Dir}, nil
}

var _ Repository = (*diskRepository)(nil)

func (r *diskRepository) path(key CacheKey) string {
	return filepath.Join(r.dir, key.Hash())
}

// Get reads the file for input.Key
func (r *diskRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if len(input.Key) == 0 {
		return nil, errors.InvalidArgument("key cannot be empty")
	}

	data, err := os.ReadFile(r.path(input.Key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("no cached document for %s", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to read cached document for %s", input.Key)
	}

	return &GetOutput{Data: data}, nil
}

// Put writes to a temp file and renames it over the entry
func (r *diskRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if len(input.Key) == 0 {
		return nil, errors.InvalidArgument("key cannot be empty")
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create cache dir %s", r.dir)
	}

	tmp, err := os.CreateTemp(r.dir, ".put-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(input.Data); err != nil {
		_ = tmp.Close()
		return nil, errors.Wrap(err, "failed to write cached document")
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to close cached document")
	}
	if err := os.Rename(tmp.Name(), r.path(input.Key)); err != nil {
		return nil, errors.Wrapf(err, "failed to store cached document for %s", input.Key)
	}

	return &PutOutput{}, nil
}

// Clear removes the cache files in the directory and leaves anything else
func (r *diskRepository) Clear(_ context.Context) (*ClearOutput, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &ClearOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to list cache dir %s", r.dir)
	}

	removed := 0
	for _, e := range entries {
		if !e.Type().IsRegular() || !hashFileName.MatchString(e.Name()) {
			continue
		}
		if err := os.Remove(filepath.Join(r.dir, e.Name())); err != nil {
			return nil, errors.Wrapf(err, "failed to remove %s", e.Name())
		}
		removed++
	}

	return &ClearOutput{Removed: removed}, nil
}

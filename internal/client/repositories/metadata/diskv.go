package metadata

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvRepository keeps one file per key under a base directory.
type DiskvRepository struct {
	d *diskv.Diskv
}

func NewDiskvRepository(basePath string) *DiskvRepository {
	return &DiskvRepository{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 64 * 1024,
		FilePerm:     0o600,
		PathPerm:     0o700,
	})}
}

func (r *DiskvRepository) Get(_ context.Context, key string) ([]byte, error) {
	value, err := r.d.Read(key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (r *DiskvRepository) Set(_ context.Context, key string, value []byte) error {
	if err := r.d.Write(key, value); err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *DiskvRepository) Delete(_ context.Context, key string) error {
	err := r.d.Erase(key)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

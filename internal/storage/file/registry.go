// Package file implements a json file backed registry.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pricelab/pricelab/internal/storage"
)

// Registry persists each entry as a json file under its own id.
type Registry struct {
	dir string
}

// NewRegistry creates a registry rooted at the given directory.
func NewRegistry(dir string) (*Registry, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("could not make dir '%s': %w", dir, err)
	}
	return &Registry{dir: dir}, nil
}

// Put saves the given value under the id.
func (r *Registry) Put(id string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal '%s': %w", id, err)
	}

	p := r.path(id)
	if err := os.WriteFile(p, b, 0644); err != nil {
		return fmt.Errorf("could not write file '%s': %w", p, err)
	}
	return nil
}

// Get loads the value stored under the id.
func (r *Registry) Get(id string, value interface{}) error {
	p := r.path(id)

	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("could not read file '%s': %w", p, storage.NotFoundErr)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return fmt.Errorf("could not unmarshal '%s': %s: %w", id, err.Error(), storage.CouldNotLoadErr)
	}
	return nil
}

func (r *Registry) path(id string) string {
	return filepath.Join(r.dir, fmt.Sprintf("%s.json", id))
}

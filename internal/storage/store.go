package storage

import (
	"errors"
)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Registry stores results one by one under an opaque identifier.
type Registry interface {
	Put(id string, value interface{}) error
	Get(id string, value interface{}) error
}

// VoidRegistry is a dummy registry which ignores all calls.
type VoidRegistry struct {
}

func NewVoidRegistry() *VoidRegistry {
	return &VoidRegistry{}
}

func (v VoidRegistry) Put(id string, value interface{}) error {
	return nil
}

func (v VoidRegistry) Get(id string, value interface{}) error {
	return NotFoundErr
}

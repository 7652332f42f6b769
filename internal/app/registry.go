package app

import (
	"context"
	"fmt"

	"fightgate/internal/app/schema"
)

// Handler executes one entrypoint call with already-validated input.
type Handler func(ctx context.Context, in map[string]any) (any, error)

// Descriptor declares one priced operation. Everything except Handler is
// discoverable metadata: key, description, schema, and price can be read
// without invoking anything.
type Descriptor struct {
	Key         string
	Description string
	Schema      schema.Schema
	Price       int64 // minor currency units; 0 marks a free operation
	Handler     Handler
}

// Registry holds the fixed operation catalog. It is populated once at
// startup and read-only afterwards, so lookups need no locking.
type Registry struct {
	descriptors map[string]Descriptor
	order       []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]Descriptor)}
}

// Register adds a descriptor. Keys must be unique within the process.
func (r *Registry) Register(d Descriptor) error {
	if d.Key == "" {
		return fmt.Errorf("%w: empty key", ErrConfiguration)
	}
	if d.Handler == nil {
		return fmt.Errorf("%w: %s has no handler", ErrConfiguration, d.Key)
	}
	if d.Price < 0 {
		return fmt.Errorf("%w: %s has negative price", ErrConfiguration, d.Key)
	}
	if _, exists := r.descriptors[d.Key]; exists {
		return fmt.Errorf("%w: duplicate key %s", ErrConfiguration, d.Key)
	}
	r.descriptors[d.Key] = d
	r.order = append(r.order, d.Key)
	return nil
}

// Describe returns the descriptor for key without invoking its handler.
func (r *Registry) Describe(key string) (Descriptor, error) {
	d, ok := r.descriptors[key]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrEntrypointNotFound, key)
	}
	return d, nil
}

// Catalog returns every descriptor in registration order.
func (r *Registry) Catalog() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.descriptors[key])
	}
	return out
}

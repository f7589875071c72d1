package registry

import "context"

// Lookup is a deferred reference: a handle over one name whose value is
// fetched from the active group each time Current is called. Objects can
// hold a Lookup at construction time and resolve it later in their
// lifetime, under whatever group is then active.
type Lookup struct {
	registry *Registry
	name     string
}

// Lookup returns a deferred reference handle for name.
func (r *Registry) Lookup(name string) *Lookup {
	return &Lookup{registry: r, name: name}
}

// Name returns the reference name the handle resolves.
func (l *Lookup) Name() string { return l.name }

// Current resolves the reference against the active group for ctx.
func (l *Lookup) Current(ctx context.Context) (any, error) {
	return l.registry.Resolve(ctx, l.name)
}

// TypedLookup is a Lookup whose Current performs the type assertion.
type TypedLookup[T any] struct {
	registry *Registry
	name     string
}

// LookupAs returns a typed deferred reference handle for name.
func LookupAs[T any](r *Registry, name string) *TypedLookup[T] {
	return &TypedLookup[T]{registry: r, name: name}
}

// Name returns the reference name the handle resolves.
func (l *TypedLookup[T]) Name() string { return l.name }

// Current resolves the reference against the active group for ctx.
func (l *TypedLookup[T]) Current(ctx context.Context) (T, error) {
	return As[T](l.registry, ctx, l.name)
}

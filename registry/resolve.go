package registry

import (
	"context"
	"fmt"
)

// As resolves a reference with type safety, returning an error on failure
// or type mismatch.
//
// Example:
//
//	host, err := registry.As[string](reg, ctx, "db_host")
func As[T any](r *Registry, ctx context.Context, name string) (T, error) {
	var zero T
	value, err := r.Resolve(ctx, name)
	if err != nil {
		return zero, err
	}
	result, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("registry: reference %s is %T, expected %T", name, value, zero)
	}
	return result, nil
}

// MustAs resolves a reference with type safety and panics on error.
// Use this during startup where a missing binding is a programming error.
func MustAs[T any](r *Registry, ctx context.Context, name string) T {
	result, err := As[T](r, ctx, name)
	if err != nil {
		panic(fmt.Sprintf("registry: failed to resolve %s: %v", name, err))
	}
	return result
}

// TryAs resolves a reference, returning the zero value and false when the
// reference is missing or holds a different type. Use this when a binding
// is optional.
func TryAs[T any](r *Registry, ctx context.Context, name string) (T, bool) {
	result, err := As[T](r, ctx, name)
	if err != nil {
		var zero T
		return zero, false
	}
	return result, true
}

// Resolver returns a function resolving name on each call, for callers that
// want to defer resolution without capturing the registry.
func Resolver[T any](r *Registry, name string) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		return As[T](r, ctx, name)
	}
}

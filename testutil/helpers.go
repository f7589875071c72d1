package testutil

import (
	"context"
	"testing"

	"github.com/skillsenselab/refgroup/registry"
	"github.com/skillsenselab/refgroup/scope"
)

// NewRegistry returns a fresh registry for one test.
func NewRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	return registry.New()
}

// SwapDefault installs a fresh default registry and restores the previous
// one when the test ends. It returns the installed registry.
func SwapDefault(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	prev := registry.SetDefault(reg)
	t.Cleanup(func() {
		registry.SetDefault(prev)
	})
	return reg
}

// BuildGroup binds every entry of refs into the named group, failing the
// test on a binding error.
func BuildGroup(t *testing.T, reg *registry.Registry, group string, refs map[string]any) {
	t.Helper()
	b := reg.Builder(group)
	for name, value := range refs {
		b.AddNamedRef(name, value)
	}
	if err := b.Err(); err != nil {
		t.Fatalf("building group %s: %v", group, err)
	}
}

// GroupContext returns a context with the named group active.
func GroupContext(t *testing.T, group string) context.Context {
	t.Helper()
	return scope.WithGroup(context.Background(), group)
}

// MustResolve resolves name against reg, failing the test on error.
func MustResolve(t *testing.T, reg *registry.Registry, ctx context.Context, name string) any {
	t.Helper()
	v, err := reg.Resolve(ctx, name)
	if err != nil {
		t.Fatalf("resolving %s: %v", name, err)
	}
	return v
}

// ResolveAs resolves name with a type assertion, failing the test on error
// or mismatch.
func ResolveAs[T any](t *testing.T, reg *registry.Registry, ctx context.Context, name string) T {
	t.Helper()
	v, err := registry.As[T](reg, ctx, name)
	if err != nil {
		t.Fatalf("resolving %s: %v", name, err)
	}
	return v
}

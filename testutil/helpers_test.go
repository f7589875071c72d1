package testutil

import (
	"context"
	"testing"

	"github.com/skillsenselab/refgroup/registry"
)

func TestNewRegistryIsolation(t *testing.T) {
	a := NewRegistry(t)
	b := NewRegistry(t)

	BuildGroup(t, a, "only-a", map[string]any{"key": 1})

	if b.Has("only-a", "key") {
		t.Error("expected registries to be independent")
	}
}

func TestBuildGroupAndResolve(t *testing.T) {
	reg := NewRegistry(t)
	BuildGroup(t, reg, "testing", map[string]any{
		"db_host": "test-db",
		"debug":   true,
	})

	ctx := GroupContext(t, "testing")
	if got := MustResolve(t, reg, ctx, "db_host"); got != "test-db" {
		t.Errorf("expected 'test-db', got %v", got)
	}
	if got := ResolveAs[bool](t, reg, ctx, "debug"); !got {
		t.Error("expected debug true")
	}
}

func TestSwapDefaultRestores(t *testing.T) {
	original := registry.Default()

	t.Run("inner", func(t *testing.T) {
		swapped := SwapDefault(t)
		if registry.Default() != swapped {
			t.Error("expected swapped registry to be the default")
		}
		swapped.Builder("testing").AddNamedRef("leak", "no")
	})

	if registry.Default() != original {
		t.Error("expected original default to be restored after the subtest")
	}
	if registry.Default().Has("testing", "leak") {
		t.Error("expected bindings on the swapped registry not to leak")
	}
}

func TestSwapDefaultRoutesPackageResolve(t *testing.T) {
	reg := SwapDefault(t)
	BuildGroup(t, reg, "default", map[string]any{"mode": "test"})

	v, err := registry.Resolve(context.Background(), "mode")
	if err != nil {
		t.Fatalf("package-level Resolve failed: %v", err)
	}
	if v != "test" {
		t.Errorf("expected 'test', got %v", v)
	}
}

package registry

import (
	"context"
	"testing"

	"github.com/skillsenselab/refgroup/scope"
)

func appContext(reg *Registry) context.Context {
	return scope.WithGroup(context.Background(), "app")
}

func TestAs(t *testing.T) {
	reg := New()
	reg.Builder("app").AddNamedRef("port", 5000)

	port, err := As[int](reg, appContext(reg), "port")
	if err != nil {
		t.Fatalf("As failed: %v", err)
	}
	if port != 5000 {
		t.Errorf("expected 5000, got %d", port)
	}
}

func TestAsTypeMismatch(t *testing.T) {
	reg := New()
	reg.Builder("app").AddNamedRef("port", 5000)

	_, err := As[string](reg, appContext(reg), "port")
	if err == nil {
		t.Error("expected error on type mismatch")
	}
}

func TestAsMissing(t *testing.T) {
	reg := New()
	reg.Builder("app").AddNamedRef("present", 1)

	_, err := As[int](reg, appContext(reg), "absent")
	if err == nil {
		t.Error("expected error for missing reference")
	}
}

func TestMustAs(t *testing.T) {
	reg := New()
	reg.Builder("app").AddNamedRef("host", "localhost")

	if got := MustAs[string](reg, appContext(reg), "host"); got != "localhost" {
		t.Errorf("expected 'localhost', got %q", got)
	}
}

func TestMustAsPanics(t *testing.T) {
	reg := New()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected MustAs to panic for missing reference")
		}
	}()
	MustAs[string](reg, appContext(reg), "missing")
}

func TestTryAs(t *testing.T) {
	reg := New()
	reg.Builder("app").AddNamedRef("host", "localhost")
	ctx := appContext(reg)

	if got, ok := TryAs[string](reg, ctx, "host"); !ok || got != "localhost" {
		t.Errorf("expected ('localhost', true), got (%q, %v)", got, ok)
	}
	if _, ok := TryAs[string](reg, ctx, "missing"); ok {
		t.Error("expected false for missing reference")
	}
	if _, ok := TryAs[int](reg, ctx, "host"); ok {
		t.Error("expected false on type mismatch")
	}
}

func TestResolver(t *testing.T) {
	reg := New()
	reg.Builder("app").AddNamedRef("host", "first")

	resolve := Resolver[string](reg, "host")

	got, err := resolve(appContext(reg))
	if err != nil {
		t.Fatalf("resolver failed: %v", err)
	}
	if got != "first" {
		t.Errorf("expected 'first', got %q", got)
	}

	// The resolver reads live state, not a snapshot.
	reg.Builder("app").AddNamedRef("host", "second")
	got, err = resolve(appContext(reg))
	if err != nil {
		t.Fatalf("resolver failed after rebind: %v", err)
	}
	if got != "second" {
		t.Errorf("expected 'second', got %q", got)
	}
}

package scope

import (
	"context"
	"sync"
	"testing"
)

func TestSwitcherSelectsGroupPerCall(t *testing.T) {
	sw := NewSwitcher(func(ctx context.Context, query string) (string, error) {
		return ActiveGroup(ctx) + ":" + query, nil
	})

	got, err := sw.Group("mysql_db")(context.Background(), "SELECT 1")
	if err != nil {
		t.Fatalf("mysql call failed: %v", err)
	}
	if got != "mysql_db:SELECT 1" {
		t.Errorf("expected mysql result, got %q", got)
	}

	got, err = sw.Group("postgres_db")(context.Background(), "SELECT 1")
	if err != nil {
		t.Fatalf("postgres call failed: %v", err)
	}
	if got != "postgres_db:SELECT 1" {
		t.Errorf("expected postgres result, got %q", got)
	}
}

func TestSwitcherRepeatedCallsStayIndependent(t *testing.T) {
	sw := NewSwitcher0(func(ctx context.Context) (string, error) {
		return ActiveGroup(ctx), nil
	})

	for i := 0; i < 3; i++ {
		if got, _ := sw.Group("a")(context.Background()); got != "a" {
			t.Errorf("iteration %d: expected 'a', got %q", i, got)
		}
		if got, _ := sw.Group("b")(context.Background()); got != "b" {
			t.Errorf("iteration %d: expected 'b', got %q", i, got)
		}
	}
}

func TestSwitcherCachesWrappedCallable(t *testing.T) {
	sw := NewSwitcher0(func(ctx context.Context) (string, error) {
		return ActiveGroup(ctx), nil
	})

	sw.Group("cached")
	sw.Group("cached")
	sw.Group("other")

	if len(sw.groups) != 2 {
		t.Errorf("expected 2 cached entries, got %d", len(sw.groups))
	}
}

func TestSwitcherConcurrentAccess(t *testing.T) {
	sw := NewSwitcher0(func(ctx context.Context) (string, error) {
		return ActiveGroup(ctx), nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		group := "g"
		if i%2 == 1 {
			group = "h"
		}
		wg.Add(1)
		go func(group string) {
			defer wg.Done()
			got, err := sw.Group(group)(context.Background())
			if err != nil {
				t.Errorf("call failed: %v", err)
				return
			}
			if got != group {
				t.Errorf("expected %q, got %q", group, got)
			}
		}(group)
	}
	wg.Wait()
}

type queryRunner struct {
	prefix string
}

func (q *queryRunner) Run(ctx context.Context, query string) (string, error) {
	return q.prefix + ActiveGroup(ctx) + ":" + query, nil
}

func TestSwitcherOverMethodValue(t *testing.T) {
	runner := &queryRunner{prefix: "run/"}
	sw := NewSwitcher(runner.Run)

	got, err := sw.Group("mysql_db")(context.Background(), "SELECT 1")
	if err != nil {
		t.Fatalf("method call failed: %v", err)
	}
	if got != "run/mysql_db:SELECT 1" {
		t.Errorf("expected bound-method result, got %q", got)
	}
}

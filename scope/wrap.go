package scope

import (
	"context"

	"github.com/skillsenselab/refgroup/observability"
)

// Func0 is a wrappable callable taking no arguments beyond the context.
type Func0[R any] func(context.Context) (R, error)

// Func is a wrappable callable taking one argument.
type Func[A, R any] func(context.Context, A) (R, error)

// Func2 is a wrappable callable taking two arguments.
type Func2[A, B, R any] func(context.Context, A, B) (R, error)

// Wrap0 returns fn with the active group fixed to name for the duration of
// each invocation. The group applies only to the call chain rooted at the
// invocation; concurrent invocations of other wrapped callables are
// unaffected, and the caller's group is intact when the call returns, whether
// it returns normally, with an error, or by panicking.
func Wrap0[R any](name string, fn Func0[R]) Func0[R] {
	return func(ctx context.Context) (R, error) {
		return fn(enter(ctx, name))
	}
}

// Wrap returns fn with the active group fixed to name for the duration of
// each invocation. See Wrap0 for the scoping contract.
func Wrap[A, R any](name string, fn Func[A, R]) Func[A, R] {
	return func(ctx context.Context, a A) (R, error) {
		return fn(enter(ctx, name), a)
	}
}

// Wrap2 is Wrap for two-argument callables.
func Wrap2[A, B, R any](name string, fn Func2[A, B, R]) Func2[A, B, R] {
	return func(ctx context.Context, a A, b B) (R, error) {
		return fn(enter(ctx, name), a, b)
	}
}

// WrapFunc is Wrap for callables that return only an error.
func WrapFunc(name string, fn func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		return fn(enter(ctx, name))
	}
}

// enter pushes the group and annotates the current span, if one is recording.
func enter(ctx context.Context, name string) context.Context {
	observability.SetSpanAttribute(ctx, observability.AttrGroup, name)
	return WithGroup(ctx, name)
}

package scope

import "context"

// DefaultGroup is the group used when no group has been activated.
const DefaultGroup = "default"

// groupKey is an unexported context key type to avoid collisions.
type groupKey struct{}

// frame is one entry of the per-call-chain group stack. Frames are immutable
// and linked through the parent context, so sibling call chains share nothing.
type frame struct {
	group string
	prev  *frame
}

// WithGroup returns a child context whose active group is name. The parent
// context keeps its own group, so exiting the call that holds the child
// context restores the prior group without any bookkeeping.
func WithGroup(ctx context.Context, name string) context.Context {
	prev, _ := ctx.Value(groupKey{}).(*frame)
	return context.WithValue(ctx, groupKey{}, &frame{group: name, prev: prev})
}

// ActiveGroup returns the innermost active group for ctx, or DefaultGroup
// when no group has been activated.
func ActiveGroup(ctx context.Context) string {
	if f, ok := ctx.Value(groupKey{}).(*frame); ok {
		return f.group
	}
	return DefaultGroup
}

// Groups returns the group stack for ctx, outermost first. The result is
// empty when no group has been activated.
func Groups(ctx context.Context) []string {
	f, _ := ctx.Value(groupKey{}).(*frame)
	if f == nil {
		return nil
	}
	var n int
	for cur := f; cur != nil; cur = cur.prev {
		n++
	}
	out := make([]string, n)
	for cur := f; cur != nil; cur = cur.prev {
		n--
		out[n] = cur.group
	}
	return out
}

// Depth returns how many groups are stacked on ctx.
func Depth(ctx context.Context) int {
	var n int
	for f, _ := ctx.Value(groupKey{}).(*frame); f != nil; f = f.prev {
		n++
	}
	return n
}

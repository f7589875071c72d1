// Package scope tracks the active reference group for a logical call chain.
//
// The active group travels on a context.Context rather than in shared mutable
// state, so concurrent call chains can never observe each other's group.
// Entering a wrapped call derives a child context carrying the new group;
// the caller's context is untouched, which makes the restore-on-exit step
// automatic for every exit path, including panics and cancellation.
//
// Fix a group at wrap time:
//
//	query := scope.Wrap("mysql_db", runQuery)
//	rows, err := query(ctx, "SELECT 1")
//
// Or select the group per call site with a switcher:
//
//	sw := scope.NewSwitcher(runQuery)
//	rows, err := sw.Group("postgres_db")(ctx, "SELECT 1")
//
// Nested wraps stack: a call wrapped with group A that invokes a call
// wrapped with group B observes B inside the inner call and A again as soon
// as it returns.
package scope

// Package registry implements the scoped reference registry: named values
// bound into named groups, resolved against whichever group is active for
// the calling context.
//
// # Building
//
//	reg := registry.New()
//	reg.Builder("production").
//		AddNamedRef("db_host", "prod-db.example.com").
//		AddNamedRef("debug", false)
//
// # Resolution
//
// Resolve reads the active group from the context (see the scope package)
// and falls back to "default" when none is set:
//
//	host, err := registry.As[string](reg, ctx, "db_host")
//
// Values are heterogeneous; callers are responsible for asserting the
// expected type, either directly on Resolve's return value or through the
// generic As, MustAs, and TryAs helpers.
//
// A package-level default registry mirrors the single-registry common case.
// Tests that need isolation should create their own instances with New.
package registry

// Package modules is a process-wide registry of named module providers,
// the binding targets of Builder.LazyAddRef.
//
// Packages register a provider for their module at init time, in the same
// way database/sql drivers self-register:
//
//	func init() {
//		modules.Register("clock", func() (any, error) {
//			return clock.System(), nil
//		})
//	}
//
// A provider runs at most once; every resolution of the same module name
// yields the value constructed on first resolution.
package modules

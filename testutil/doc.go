// Package testutil provides helpers for testing code that resolves
// references from a registry.
//
// Tests get isolated registries so bindings cannot leak between cases:
//
//	func TestMyFeature(t *testing.T) {
//	    reg := testutil.NewRegistry(t)
//	    testutil.BuildGroup(t, reg, "testing", map[string]any{
//	        "db_host": "test-db",
//	    })
//	    ...
//	}
//
// Code under test that resolves through the package-level default registry
// can be isolated with SwapDefault, which installs a fresh default registry
// and restores the previous one when the test ends.
package testutil

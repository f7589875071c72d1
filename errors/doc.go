// Package errors provides the structured error types used across refgroup.
// It implements coded errors with cause chaining and detail maps so callers
// can distinguish a missing group from a missing reference programmatically
// instead of matching error strings.
package errors

// Package errors provides the coded error type returned by the parallel
// evaluator and its collaborators.
//
// Every failure carries a machine-readable Code. Errors compare equal under
// errors.Is when their codes match, so callers test against the exported
// sentinels:
//
//	if errors.Is(err, iterparerrors.ErrCancelled) { ... }
//
// An Error may carry one primary Cause and any number of Suppressed causes.
// Both are visible to errors.Is and errors.As.
package errors

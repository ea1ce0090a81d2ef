// Package errs holds the error types shared by the planner domain, application
// and adapter layers.
//
// Every type follows the same shape: a sentinel (ErrValueIsRequired and friends)
// that callers match with errors.Is, a struct carrying the offending parameter,
// constructors with and without a cause, and an Unwrap that returns the sentinel.
// The HTTP adapter maps the sentinels onto status codes.
package errs

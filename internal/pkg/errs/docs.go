// Package errs provides the structured error types shared by the storefront core.
//
// Each error kind follows the same shape:
//   - a sentinel variable (ErrObjectNotFound, ErrValueIsRequired, ...)
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error and New...ErrorWithCause constructors
//   - Unwrap returning the sentinel (and the cause, where it helps classification)
//
// Domain packages combine these kinds with their own sentinels, so a caller can
// ask both "is this a not-found?" and "which rule failed?" with errors.Is.
// StorageError marks infrastructure failures that must never be confused with
// business outcomes such as insufficient stock.
package errs

// Package viewmodel shapes archive records into display values for the
// portal templates.
//
// Every function here is pure and total: unknown statuses fall back to the
// gray badge, out-of-range numbers are clamped, and nothing touches I/O or
// shared mutable state, so callers may use the package from any number of
// request goroutines without coordination.
package viewmodel

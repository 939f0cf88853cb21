// Package try provides Try[T], a synchronous container holding either the
// value a computation produced or the error it failed with.
//
// Highlights:
// - Given/GivenValue: run a computation and capture its error or panic
// - Success/Failure: construct a Try directly
// - IsSuccess/IsFailure: variant predicates
// - Get/Value/GetOrElse/GetOrElseFunc: extract the value
// - Map/Then/FlatMap: transform successful values, short-circuiting on failure
// - DoIfSuccess/DoIfFailed/OnFailure: side effects that return the receiver
// - Fold: reduce to a concrete value via success/failure handlers
//
// Only Get panics; every other operation treats failure as data.
package try

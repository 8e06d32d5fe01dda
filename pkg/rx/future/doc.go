// Package future implements an explicit one-shot future: a handle to a
// deferred computation that resolves to exactly one value at some later
// time (https://en.wikipedia.org/wiki/Futures_and_promises).
//
// A Future[T] has value semantics and may be copied freely across
// goroutines; all copies share one resolution. The promise runs at most
// once, on the goroutine of whichever Await drives the future first; later
// Await calls only wait. Ready builds an already-resolved future.
package future

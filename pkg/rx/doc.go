// Package rx contains the push-protocol core: the Observer sink, the
// Emitter plug-in point, single-subscription Observables and the two-armed
// Outcome[T] used to classify a computation's output as success or failure.
//
// Highlights:
// - Observer/NewObserver: the next/error/complete sink, from interface or funcs
// - Emitter/New: build an Observable around an emission routine
// - Success/Failure: construct Outcome[T]; Match dispatches on the arm
// - Just/JustOutcome: single-value emitters (next+complete, or error)
// - First/Collect: block until a terminal notification with a bounded wait
//
// Every observer handed to an emitter is wrapped so notifications are safe
// from any goroutine and nothing is delivered after the terminal signal.
package rx

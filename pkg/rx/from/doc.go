// Package from bridges one-shot futures into the push protocol.
//
// Two sibling adapters share one hand-off pattern: on subscription the
// emitter wraps the future with a continuation that performs the push, and
// submits it to a worker pool. Subscription never blocks and never delivers
// synchronously; the push always happens later, on a pool worker.
//
// - Future: the resolved value is delivered as next+complete, always. Even
//   an error-shaped value (say, an Outcome holding an error) arrives via
//   next — the value bridge deliberately never raises a stream error.
// - FutureOutcome/FutureResult: the resolved output is converted into an
//   Outcome first; the success arm is delivered as next+complete, the
//   failure arm as a single terminal error notification.
//
// Bridges use the process-wide pool.Shared() unless a caller injects a
// pool. Submission failure is an unrecoverable configuration error: the
// emission attempt panics rather than delivering a partial sequence.
package from

// Package pool runs submitted units of work on a bounded set of worker
// goroutines. It backs the future bridges: emission continuations are
// handed to a Pool and the push happens on whatever worker picks them up.
//
// Shared returns the process-wide pool, constructed lazily on first use and
// never torn down; bridges use it unless a caller injects their own Pool.
// Submission appends to an internal queue under a mutex and returns at
// once; a dispatcher goroutine waits for free workers, and execution runs
// unsynchronized across them.
package pool

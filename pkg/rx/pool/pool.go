package pool

import (
	"errors"
	"runtime"
	"sync"

	concpool "github.com/sourcegraph/conc/pool"
)

var ErrPoolClosed = errors.New("pool is closed")

// Pool executes submitted work on a bounded set of worker goroutines.
// Submissions land in an internal queue and return immediately; a single
// dispatcher goroutine feeds queued work to the workers, so a saturated
// pool delays execution, never the submitter.
// The zero value is not usable; construct with New or NewSize.
type Pool struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool

	exec *concpool.Pool
	idle chan struct{}
}

// New creates a Pool sized to the number of CPUs.
func New() *Pool {
	return NewSize(runtime.NumCPU())
}

// NewSize creates a Pool running at most maxWorkers goroutines at a time.
func NewSize(maxWorkers int) *Pool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	p := &Pool{
		exec: concpool.New().WithMaxGoroutines(maxWorkers),
		idle: make(chan struct{}),
	}
	p.cond = sync.NewCond(&p.mu)
	go p.dispatch()
	return p
}

// Submit queues work for execution and returns immediately, even when all
// workers are busy. The work runs to completion at most once, on an
// arbitrary worker goroutine, never on the submitting one. The lock covers
// only the queue append, not the hand-off to a worker and not execution.
func (p *Pool) Submit(work func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPoolClosed
	}
	p.queue = append(p.queue, work)
	p.cond.Signal()
	return nil
}

// dispatch moves queued work to the workers. Waiting for a free worker
// happens here, off the submitters' path.
func (p *Pool) dispatch() {
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			p.mu.Unlock()
			close(p.idle)
			return
		}
		work := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		p.exec.Go(work)
	}
}

// Close drains the queue, waits for running work to finish and rejects
// further submissions. The shared pool is never closed; Close exists for
// caller-owned pools.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.cond.Signal()
	p.mu.Unlock()

	<-p.idle
	p.exec.Wait()
}

var (
	sharedMu sync.Mutex
	shared   *Pool
)

// Shared returns the process-wide pool, constructing it on first use.
// All callers observe the same instance; it lives for the process duration.
func Shared() *Pool {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared == nil {
		shared = New()
	}
	return shared
}

package pool

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSubmit_RunsWork(t *testing.T) {
	t.Parallel()
	p := NewSize(2)
	defer p.Close()

	done := make(chan struct{})
	if err := p.Submit(func() { close(done) }); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("submitted work never ran")
	}
}

func TestSubmit_ReturnsBeforeWorkCompletes(t *testing.T) {
	t.Parallel()
	p := NewSize(2)

	gate := make(chan struct{})
	if err := p.Submit(func() { <-gate }); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	// Submit returned while the work is still blocked on the gate, so the
	// hand-off is asynchronous.
	close(gate)
	p.Close()
}

func TestSubmit_NonBlockingWhenSaturated(t *testing.T) {
	t.Parallel()
	p := NewSize(1)

	gate := make(chan struct{})
	if err := p.Submit(func() { <-gate }); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	// The only worker is parked on the gate; queuing more work must still
	// return promptly.
	ran := make(chan struct{})
	submitted := make(chan struct{})
	go func() {
		if err := p.Submit(func() { close(ran) }); err != nil {
			t.Errorf("submit failed: %v", err)
		}
		close(submitted)
	}()

	select {
	case <-submitted:
	case <-time.After(time.Second):
		t.Fatalf("submit blocked on a saturated pool")
	}
	select {
	case <-ran:
		t.Fatalf("queued work ran before a worker freed up")
	default:
	}

	close(gate)
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatalf("queued work never ran")
	}
	p.Close()
}

func TestSubmit_AfterClose(t *testing.T) {
	t.Parallel()
	p := NewSize(1)
	p.Close()

	err := p.Submit(func() {})
	if !errors.Is(err, ErrPoolClosed) {
		t.Fatalf("expected ErrPoolClosed, got: %v", err)
	}
}

func TestSubmit_ConcurrentAllRun(t *testing.T) {
	t.Parallel()
	p := NewSize(4)

	const n = 100
	var ran atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := p.Submit(func() { ran.Add(1) }); err != nil {
				t.Errorf("submit failed: %v", err)
			}
		}()
	}
	wg.Wait()
	p.Close()

	if got := ran.Load(); got != n {
		t.Fatalf("expected %d executions, got: %d", n, got)
	}
}

func TestShared_SingleInstance(t *testing.T) {
	t.Parallel()

	const n = 16
	pools := make([]*Pool, n)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pools[i] = Shared()
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if pools[i] != pools[0] {
			t.Fatalf("expected one shared pool, got distinct instances at %d", i)
		}
	}
}

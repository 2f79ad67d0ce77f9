// Package workers runs CPU-bound highlight jobs on a bounded pool of
// OS-thread-locked workers, each owning reusable per-worker state.
package workers

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// ErrPoolClosed is reported for jobs submitted after Close; the job never ran.
var ErrPoolClosed = errors.New("worker pool closed")

// DefaultSize is the default cap on concurrent workers.
const DefaultSize = 512

type task struct {
	fn   func(*State)
	done chan error
}

// Pool is a lazily-grown set of worker goroutines, capped at a fixed size.
// Workers are spawned on demand and persist, so the per-worker highlighter
// and renderer are re-used across files that land on the same worker.
type Pool struct {
	jobs   chan task
	sem    *semaphore.Weighted
	closed chan struct{}
}

func NewPool(size int) *Pool {
	if size <= 0 {
		size = DefaultSize
	}
	return &Pool{
		jobs:   make(chan task),
		sem:    semaphore.NewWeighted(int64(size)),
		closed: make(chan struct{}),
	}
}

// Submit schedules job on some worker and returns a channel that receives
// exactly one value when the job finishes: nil on normal completion, a
// non-nil error when the job panicked or the pool is closed. The job's
// results travel out-of-band (the caller's closure); receiving from the
// channel happens-after the job wrote them.
func (p *Pool) Submit(job func(*State)) <-chan error {
	t := task{fn: job, done: make(chan error, 1)}
	select {
	case <-p.closed:
		t.done <- ErrPoolClosed
		return t.done
	default:
	}

	// Hand off to an idle worker when one exists; otherwise grow the pool
	// up to its cap and queue on whichever worker frees up first.
	select {
	case p.jobs <- t:
	default:
		if p.sem.TryAcquire(1) {
			go p.worker()
		}
		select {
		case p.jobs <- t:
		case <-p.closed:
			t.done <- ErrPoolClosed
		}
	}
	return t.done
}

// Close stops accepting work and lets idle workers exit. Jobs already handed
// to a worker run to completion.
func (p *Pool) Close() {
	close(p.closed)
}

func (p *Pool) worker() {
	// Worker-local state is an OS-thread property; pin the goroutine so the
	// tree-sitter parser never migrates mid-parse.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer p.sem.Release(1)

	st := newState()
	defer st.close()

	for {
		select {
		case t := <-p.jobs:
			t.done <- runSafe(st, t.fn)
		case <-p.closed:
			return
		}
	}
}

func runSafe(st *State, fn func(*State)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker panic: %v", r)
		}
	}()
	fn(st)
	return nil
}

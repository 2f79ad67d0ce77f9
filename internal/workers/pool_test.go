package workers

import (
	"bytes"
	"sync"
	"testing"

	"github.com/standardbeagle/daylight/internal/highlight"
)

func TestSubmitRunsJob(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	ran := false
	done := pool.Submit(func(st *State) {
		ran = st != nil
	})
	if err := <-done; err != nil {
		t.Fatalf("unexpected join error: %v", err)
	}
	if !ran {
		t.Fatal("job did not run")
	}
}

func TestWorkerStateIsReusable(t *testing.T) {
	pool := NewPool(1)
	defer pool.Close()

	// With a single worker, both jobs must see the same state instance.
	var first, second *State
	<-pool.Submit(func(st *State) { first = st })
	<-pool.Submit(func(st *State) { second = st })
	if first == nil || first != second {
		t.Fatalf("expected the single worker to reuse its state: %p vs %p", first, second)
	}
}

func TestPanicBecomesJoinError(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	done := pool.Submit(func(st *State) {
		panic("highlighter exploded")
	})
	if err := <-done; err == nil {
		t.Fatal("expected a join error from a panicking job")
	}

	// The worker survives its job's panic.
	ok := pool.Submit(func(st *State) {})
	if err := <-ok; err != nil {
		t.Fatalf("worker should survive a panic, got %v", err)
	}
}

func TestSubmitAfterClose(t *testing.T) {
	pool := NewPool(2)
	pool.Close()

	done := pool.Submit(func(st *State) {})
	if err := <-done; err != ErrPoolClosed {
		t.Fatalf("expected ErrPoolClosed, got %v", err)
	}
}

func TestConcurrentSubmissions(t *testing.T) {
	pool := NewPool(8)
	defer pool.Close()

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			done := pool.Submit(func(st *State) {
				_ = st.WithRenderer(func(r *highlight.HTMLRenderer) error {
					return r.Render([]highlight.Event{
						{Kind: highlight.EventSource, Start: 0, End: 2},
					}, []byte("ok"), &highlight.Flag{}, func(hl int, out *bytes.Buffer) {})
				})
			})
			if err := <-done; err != nil {
				t.Errorf("join error: %v", err)
			}
		}()
	}
	wg.Wait()
}

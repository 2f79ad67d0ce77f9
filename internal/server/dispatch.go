package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/standardbeagle/daylight/internal/highlight"
	"github.com/standardbeagle/daylight/internal/processors"
	"github.com/standardbeagle/daylight/internal/workers"
)

// dispatch is the heart of the service: it fans every work unit out to the
// blocking worker pool, enforces the per-file deadline, and harvests
// outcomes in completion order.
//
// A timeout on any one file stores the shared cancellation flag, so every
// other in-flight file of the request observes cancellation at its next
// polling point; the flag never resets for the life of the request. The
// request context tearing down (client gone) flips the same flag.
func dispatch[T any](ctx context.Context, pool *workers.Pool, proc processors.Processor[T],
	units []workUnit, timeout time.Duration) []processors.Outcome[T] {

	cancel := &highlight.Flag{}
	stop := context.AfterFunc(ctx, cancel.Set)
	defer stop()

	results := make(chan processors.Outcome[T], len(units))
	for _, u := range units {
		if u.failed {
			// Pre-resolved failure; joins the same merged stream as the
			// real work below.
			results <- processors.Failure[T](u.ident, u.filename, u.lang, u.failure)
			continue
		}
		go func(u workUnit) {
			var out processors.Outcome[T]
			done := pool.Submit(func(st *workers.State) {
				out = proc.Process(st, u.ident, u.filename, u.lang, u.contents, u.includeInjections, cancel)
			})

			timer := time.NewTimer(timeout)
			defer timer.Stop()
			select {
			case err := <-done:
				if err != nil {
					reason := processors.ErrWorkerJoinFailure
					if errors.Is(err, workers.ErrPoolClosed) {
						reason = processors.ErrCancelled
					}
					slog.Warn("worker join error", "ident", u.ident, "filename", u.filename, "err", err)
					results <- processors.Failure[T](u.ident, u.filename, u.lang, reason)
					return
				}
				results <- out
			case <-timer.C:
				// The worker keeps running until its next polling point; the
				// flag tells it, and every sibling, to stop.
				cancel.Set()
				results <- processors.Failure[T](u.ident, u.filename, u.lang, processors.ErrTimedOut)
			}
		}(u)
	}

	// Harvest without ordering; ident preserves identity.
	outcomes := make([]processors.Outcome[T], 0, len(units))
	for range units {
		outcomes = append(outcomes, <-results)
	}
	return outcomes
}

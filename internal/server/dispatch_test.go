package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/daylight/internal/highlight"
	"github.com/standardbeagle/daylight/internal/languages"
	"github.com/standardbeagle/daylight/internal/processors"
	"github.com/standardbeagle/daylight/internal/workers"
)

// stubProcessor hangs on designated idents until the cancellation flag flips,
// which makes timeout behavior deterministic in tests.
type stubProcessor struct {
	slow map[uint16]bool
}

func (p stubProcessor) Process(st *workers.State, ident uint16, filename string, lang *languages.Config,
	contents []byte, includeInjections bool, cancel *highlight.Flag) processors.Outcome[string] {
	if p.slow[ident] {
		for !cancel.IsSet() {
			time.Sleep(time.Millisecond)
		}
		return processors.Failure[string](ident, filename, lang, processors.FromHighlightError(highlight.ErrCancelled))
	}
	return processors.Success(ident, filename, lang, []string{"ok"})
}

func (p stubProcessor) BuildResponse(outcomes []processors.Outcome[string]) ([]byte, error) {
	return nil, nil
}

func idents(outcomes []processors.Outcome[string]) map[uint16]processors.Outcome[string] {
	m := make(map[uint16]processors.Outcome[string], len(outcomes))
	for _, o := range outcomes {
		m[o.Ident] = o
	}
	return m
}

func TestDispatchMergesPreResolvedFailures(t *testing.T) {
	pool := workers.NewPool(4)
	defer pool.Close()

	units := []workUnit{
		{ident: 0, filename: "ok.c", contents: []byte("x")},
		{ident: 1, filename: "bad.zzz", failed: true, failure: processors.ErrInvalidLanguage},
		{ident: 2, filename: "empty.c", failed: true, failure: processors.ErrEmptyFile},
	}

	outcomes := dispatch[string](context.Background(), pool, stubProcessor{}, units, time.Second)
	require.Len(t, outcomes, 3)

	m := idents(outcomes)
	assert.True(t, m[0].Success)
	assert.Equal(t, processors.ErrInvalidLanguage, m[1].Reason)
	assert.Equal(t, processors.ErrEmptyFile, m[2].Reason)
}

func TestDispatchTimeoutFailsFast(t *testing.T) {
	pool := workers.NewPool(4)
	defer pool.Close()

	units := []workUnit{
		{ident: 0, filename: "fast.c", contents: []byte("x")},
		{ident: 1, filename: "slow.c", contents: []byte("y")},
	}
	proc := stubProcessor{slow: map[uint16]bool{1: true}}

	start := time.Now()
	outcomes := dispatch[string](context.Background(), pool, proc, units, 50*time.Millisecond)
	require.Len(t, outcomes, 2)

	m := idents(outcomes)
	require.True(t, m[0].Success, "fast file must not be blocked behind the slow one")
	require.False(t, m[1].Success)
	assert.Equal(t, processors.ErrTimedOut, m[1].Reason)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestDispatchContextTeardownSetsFlag(t *testing.T) {
	pool := workers.NewPool(4)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	units := []workUnit{{ident: 0, filename: "slow.c", contents: []byte("x")}}
	proc := stubProcessor{slow: map[uint16]bool{0: true}}

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	outcomes := dispatch[string](ctx, pool, proc, units, time.Minute)
	require.Len(t, outcomes, 1)

	// The worker observed the flag and reported cancellation as a timeout.
	assert.False(t, outcomes[0].Success)
	assert.Equal(t, processors.ErrTimedOut, outcomes[0].Reason)
}

func TestDispatchPanicBecomesJoinFailure(t *testing.T) {
	pool := workers.NewPool(4)
	defer pool.Close()

	units := []workUnit{{ident: 0, filename: "boom.c", contents: []byte("x")}}
	outcomes := dispatch[string](context.Background(), pool, panicProcessor{}, units, time.Second)

	require.Len(t, outcomes, 1)
	assert.Equal(t, processors.ErrWorkerJoinFailure, outcomes[0].Reason)
	assert.Equal(t, uint16(0), outcomes[0].Ident)
	assert.Equal(t, "boom.c", outcomes[0].Filename)
}

type panicProcessor struct{}

func (panicProcessor) Process(st *workers.State, ident uint16, filename string, lang *languages.Config,
	contents []byte, includeInjections bool, cancel *highlight.Flag) processors.Outcome[string] {
	panic("boom")
}

func (panicProcessor) BuildResponse(outcomes []processors.Outcome[string]) ([]byte, error) {
	return nil, nil
}

func TestDispatchManyFilesArbitraryOrder(t *testing.T) {
	pool := workers.NewPool(8)
	defer pool.Close()

	const n = 100
	units := make([]workUnit, 0, n)
	for i := 0; i < n; i++ {
		units = append(units, workUnit{ident: uint16(i), filename: "f.c", contents: []byte("x")})
	}

	outcomes := dispatch[string](context.Background(), pool, stubProcessor{}, units, time.Minute)
	require.Len(t, outcomes, n)

	seen := make(map[uint16]int, n)
	for _, o := range outcomes {
		seen[o.Ident]++
	}
	for i := 0; i < n; i++ {
		assert.Equal(t, 1, seen[uint16(i)], "ident %d", i)
	}
}

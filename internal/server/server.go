// Package server implements the request core: envelope decoding, per-file
// concurrent dispatch with cancellation and timeouts, and the HTTP surface.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/daylight/internal/config"
	"github.com/standardbeagle/daylight/internal/metrics"
	"github.com/standardbeagle/daylight/internal/processors"
	"github.com/standardbeagle/daylight/internal/workers"
)

// Server holds the worker pool and the runtime-adjustable timeout knobs.
// Timeouts are read atomically per request, so a config reload never tears a
// request in half.
type Server struct {
	pool             *workers.Pool
	defaultTimeoutMs atomic.Uint64
	maxTimeoutMs     atomic.Uint64
}

func New(cfg *config.Config) *Server {
	s := &Server{pool: workers.NewPool(cfg.Workers.Threads)}
	s.ApplyConfig(cfg)
	return s
}

// ApplyConfig swaps the runtime-adjustable knobs. Worker pool size is fixed
// at startup.
func (s *Server) ApplyConfig(cfg *config.Config) {
	s.defaultTimeoutMs.Store(cfg.Timeouts.DefaultPerFileMs)
	s.maxTimeoutMs.Store(cfg.Timeouts.MaxPerFileMs)
}

// Close shuts the worker pool down.
func (s *Server) Close() {
	s.pool.Close()
}

// Handler builds the route table wrapped in the middleware stack.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/html", handleProcessor[string](s, processors.HTML{}))
	mux.HandleFunc("POST /v1/spans", handleProcessor[processors.SpanTuple](s, processors.Spans{}))
	mux.HandleFunc("GET /health", handleHealth)
	return wrap(mux)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"metrics": metrics.Default.Snapshot(),
	})
}

// handleProcessor processes one batch request using the given processor. The
// body is read whole; per-file content slices alias it for the rest of the
// request.
func handleProcessor[T any](s *Server, proc processors.Processor[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxRequestSize))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}

		units, timeoutMs, err := decodeRequest(body)
		if err != nil {
			metrics.Default.DecodeFailed()
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		effectiveMs := timeoutMs
		if effectiveMs == 0 {
			effectiveMs = s.defaultTimeoutMs.Load()
		}
		maxMs := s.maxTimeoutMs.Load()
		if effectiveMs > maxMs {
			err := &TimeoutTooLargeError{MaxMs: maxMs}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		timeout := time.Duration(effectiveMs) * time.Millisecond

		slog.Debug("request decoded",
			"request_id", r.Header.Get(requestIDHeader),
			"num_files", len(units),
			"timeout_ms", timeoutMs,
			"body_xxh64", xxhash.Sum64(body))

		var outcomes []processors.Outcome[T]
		if len(units) > 0 {
			outcomes = dispatch(r.Context(), s.pool, proc, units, timeout)
			for i := range outcomes {
				o := &outcomes[i]
				metrics.Default.FileProcessed(!o.Success && o.Reason != processors.ErrEmptyFile,
					!o.Success && o.Reason == processors.ErrTimedOut)
			}
		}

		response, err := proc.BuildResponse(outcomes)
		if err != nil {
			slog.Error("response encoding failed", "err", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(response)
	}
}

// Run serves until ctx is cancelled, then drains connections gracefully.
func Run(ctx context.Context, cfg *config.Config) error {
	s := New(cfg)
	defer s.Close()

	srv := &http.Server{
		Addr:    cfg.Listen,
		Handler: s.Handler(),
	}

	// Hot-reload the timeout knobs while the server runs.
	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	go func() {
		if err := config.Watch(watchCtx, cfg.Path, s.ApplyConfig); err != nil {
			slog.Warn("config watcher unavailable", "err", err)
		}
	}()

	errc := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", cfg.Listen)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	slog.Info("starting graceful shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("server shutdown complete")
	return nil
}

package data

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Result is the outcome of one load.
type Result struct {
	Set     *RowSet
	Err     error
	Elapsed time.Duration
}

// Loader runs a source's Load off the caller's goroutine. Starting a load
// cancels the one in flight, so only the latest result is worth applying.
type Loader struct {
	src Source
	log *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewLoader creates a loader for src.
func NewLoader(src Source, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Loader{src: src, log: log}
}

// Source returns the loaded source.
func (l *Loader) Source() Source {
	return l.src
}

// Load starts a load and returns a channel that receives exactly one result
// and is then closed. A superseded load reports context.Canceled.
func (l *Loader) Load(ctx context.Context) <-chan Result {
	ctx, cancel := context.WithCancel(ctx)
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.cancel = cancel
	l.mu.Unlock()

	out := make(chan Result, 1)
	go func() {
		defer close(out)
		defer cancel()

		start := time.Now()
		rs, err := l.src.Load(ctx)
		if err == nil {
			err = ctx.Err()
		}
		res := Result{Err: err, Elapsed: time.Since(start)}
		if err != nil {
			l.log.Warn("load failed", "path", l.src.Path(), "err", err)
		} else {
			res.Set = rs
			l.log.Info("loaded", "path", l.src.Path(), "id", rs.ID,
				"rows", rs.RowCount(), "cols", rs.ColumnCount(), "elapsed", res.Elapsed)
		}
		out <- res
	}()
	return out
}

// Cancel stops the load in flight, if any.
func (l *Loader) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

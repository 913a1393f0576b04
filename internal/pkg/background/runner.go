// Package background runs best-effort side effects (emails, event publishing) after
// the request that triggered them has been answered.
package background

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const DefaultTaskTimeout = 30 * time.Second

// Runner starts tasks on their own goroutines. Tasks are detached from the caller's
// cancellation but keep its values, are bounded by a per-task timeout, and are
// tracked so Wait can drain them on shutdown. Failures and panics are logged.
type Runner struct {
	logger  *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewRunner(logger *slog.Logger, timeout time.Duration) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = DefaultTaskTimeout
	}
	return &Runner{
		logger:  logger.With("component", "background"),
		timeout: timeout,
	}
}

// Go runs task in the background under name.
func (r *Runner) Go(ctx context.Context, name string, task func(ctx context.Context) error) {
	taskCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()
		defer func() {
			if p := recover(); p != nil {
				r.logger.ErrorContext(taskCtx, "background task panicked", "task", name, "panic", fmt.Sprint(p))
			}
		}()

		start := time.Now()
		if err := task(taskCtx); err != nil {
			r.logger.ErrorContext(taskCtx, "background task failed",
				"task", name,
				"error", err,
				"duration", time.Since(start),
			)
			return
		}
		r.logger.DebugContext(taskCtx, "background task finished", "task", name, "duration", time.Since(start))
	}()
}

// Wait blocks until every started task returns or ctx is done.
func (r *Runner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

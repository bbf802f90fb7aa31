package domain

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// AsyncRunner starts fn without blocking the caller. The context handed to fn
// is bounded by timeout when timeout is positive.
type AsyncRunner func(op string, timeout time.Duration, fn func(ctx context.Context) error)

// SafeAsync runs a function in a goroutine with a timeout and structured error logging.
// It prevents silent failures of background operations (feed fetches, settlements).
func SafeAsync(op string, timeout time.Duration, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := withTimeout(context.Background(), timeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
		} else {
			rlog.Debug("async operation succeeded", "op", op)
		}
	}()
}

// RunSync is an AsyncRunner that completes fn before returning. Tests use it
// to make the machine's background work deterministic.
func RunSync(op string, timeout time.Duration, fn func(ctx context.Context) error) {
	ctx, cancel := withTimeout(context.Background(), timeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		rlog.Debug("sync operation failed", "op", op, "error", err)
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

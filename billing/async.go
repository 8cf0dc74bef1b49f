package billing

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// runAsync is an indirection over safeAsync so tests can run the
// background work synchronously.
var runAsync = safeAsync

// safeAsync runs fn in a goroutine with a timeout and logs its failure.
// Watchdog signals are best effort: a lost tick signal at worst lets the
// watchdog end the session, which bills it through the normal path.
func safeAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
		} else {
			rlog.Debug("async operation succeeded", "op", op)
		}
	}()
}

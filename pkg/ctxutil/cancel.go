package ctxutil

import (
	"context"
	"time"
)

var cancelkey = SimpleKey("cancel")

// CancelContext provides a cancelable context keeping its cancel
// function, which can be triggered later by Cancel.
func CancelContext(ctx context.Context) context.Context {
	return withCancel(context.WithCancel(ctx))
}

// TimeoutContext provides a cancelable context with a timeout.
// A non-positive duration means no timeout.
func TimeoutContext(ctx context.Context, duration time.Duration) context.Context {
	if duration <= 0 {
		return CancelContext(ctx)
	}
	return withCancel(context.WithTimeout(ctx, duration))
}

func withCancel(ctx context.Context, cancel context.CancelFunc) context.Context {
	return context.WithValue(ctx, cancelkey, cancel)
}

// Cancel cancels a context created by CancelContext or TimeoutContext.
// It reports whether there was something to cancel.
func Cancel(ctx context.Context) bool {
	c, ok := ctx.Value(cancelkey).(context.CancelFunc)
	if ok {
		c()
	}
	return ok
}

// Package testutil holds small helpers shared by tests.
package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds database-backed unit tests.
const DefaultTimeout = 5 * time.Second

// Context returns a context with a timeout tied to the test lifecycle. The
// timeout shrinks to fit the test's own deadline when one is set.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if dt, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if deadline, ok := dt.Deadline(); ok {
			remaining := time.Until(deadline) - time.Second
			if remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

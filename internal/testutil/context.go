// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds a unit test context when no timeout is given.
const DefaultTimeout = 5 * time.Second

// Context returns a context derived from the test's own context that expires
// after timeout, or one second before the test deadline if that comes first.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if deadline, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if at, set := deadline.Deadline(); set {
			if remaining := time.Until(at) - time.Second; remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(t.Context(), timeout)
	t.Cleanup(cancel)
	return ctx
}

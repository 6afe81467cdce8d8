package testutil

import (
	"context"

	"github.com/kbukum/reqkit/component"
)

// TestComponent is a component whose recorded state a test can rewind.
// channel.Scripted is the canonical implementation: its snapshot holds the
// scripted result and every request sent so far.
type TestComponent interface {
	component.Component

	// Reset drops all recorded state.
	Reset(ctx context.Context) error
	// Snapshot returns an opaque copy of the recorded state.
	Snapshot(ctx context.Context) (any, error)
	// Restore rewinds to a value returned by Snapshot. Values from other
	// components are rejected.
	Restore(ctx context.Context, snapshot any) error
}

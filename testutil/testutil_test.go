package testutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kbukum/reqkit/channel"
	"github.com/kbukum/reqkit/component"
	"github.com/kbukum/reqkit/config"
	"github.com/kbukum/reqkit/request"
	"github.com/kbukum/reqkit/testutil"
)

type mockComponent struct {
	name     string
	started  bool
	resets   int
	state    int
	startErr error
	stopErr  error
	resetErr error
}

func newMockComponent(name string) *mockComponent {
	return &mockComponent{name: name}
}

func (m *mockComponent) Name() string { return m.name }

func (m *mockComponent) Start(_ context.Context) error {
	if m.startErr != nil {
		return m.startErr
	}
	m.started = true
	return nil
}

func (m *mockComponent) Stop(_ context.Context) error {
	if m.stopErr != nil {
		return m.stopErr
	}
	m.started = false
	return nil
}

func (m *mockComponent) Health(_ context.Context) component.Health {
	return component.Health{Name: m.name, Status: component.StatusHealthy}
}

func (m *mockComponent) Reset(_ context.Context) error {
	if m.resetErr != nil {
		return m.resetErr
	}
	m.resets++
	m.state = 0
	return nil
}

func (m *mockComponent) Snapshot(_ context.Context) (any, error) {
	return m.state, nil
}

func (m *mockComponent) Restore(_ context.Context, snapshot any) error {
	v, ok := snapshot.(int)
	if !ok {
		return errors.New("bad snapshot")
	}
	m.state = v
	return nil
}

func TestSetup(t *testing.T) {
	comp := newMockComponent("db")
	cleanup, err := testutil.Setup(context.Background(), comp)
	if err != nil {
		t.Fatalf("Setup() failed: %v", err)
	}
	if !comp.started {
		t.Fatal("component should be started")
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup() failed: %v", err)
	}
	if comp.started {
		t.Error("component should be stopped after cleanup")
	}
}

func TestSetup_StartError(t *testing.T) {
	comp := newMockComponent("db")
	comp.startErr = errors.New("boom")
	if _, err := testutil.Setup(context.Background(), comp); err == nil {
		t.Fatal("expected start error")
	}
}

func TestTHelper_SnapshotRestore(t *testing.T) {
	comp := newMockComponent("cache")
	h := testutil.T(t).WithContext(context.Background())
	h.Setup(comp)

	comp.state = 5
	snap := h.Snapshot(comp)
	comp.state = 9
	h.Restore(comp, snap)
	if comp.state != 5 {
		t.Errorf("state = %d, want 5", comp.state)
	}

	h.Reset(comp)
	if comp.state != 0 || comp.resets != 1 {
		t.Errorf("after reset state=%d resets=%d", comp.state, comp.resets)
	}
}

func TestManager_Lifecycle(t *testing.T) {
	m := testutil.NewManager(context.Background())
	a, b := newMockComponent("a"), newMockComponent("b")
	m.Add(a)
	m.Add(b)

	if got := len(m.Components()); got != 2 {
		t.Fatalf("Components() = %d, want 2", got)
	}
	if m.Get("b") != b {
		t.Error("Get(b) returned the wrong component")
	}
	if m.Get("missing") != nil {
		t.Error("Get(missing) should be nil")
	}

	if err := m.StartAll(); err != nil {
		t.Fatalf("StartAll() failed: %v", err)
	}
	if !a.started || !b.started {
		t.Error("all components should be started")
	}
	if err := m.ResetAll(); err != nil {
		t.Fatalf("ResetAll() failed: %v", err)
	}
	if a.resets != 1 || b.resets != 1 {
		t.Error("all components should be reset once")
	}
	if err := m.StopAll(); err != nil {
		t.Fatalf("StopAll() failed: %v", err)
	}
	if a.started || b.started {
		t.Error("all components should be stopped")
	}
}

func TestManager_Errors(t *testing.T) {
	m := testutil.NewManager(context.Background())
	bad := newMockComponent("bad")
	bad.startErr = errors.New("start")
	bad.stopErr = errors.New("stop")
	bad.resetErr = errors.New("reset")
	m.Add(bad)

	if err := m.StartAll(); err == nil {
		t.Error("StartAll() should fail")
	}
	if err := m.ResetAll(); err == nil {
		t.Error("ResetAll() should fail")
	}
	if err := m.StopAll(); !errors.Is(err, bad.stopErr) {
		t.Errorf("StopAll() = %v, want wrapped stop error", err)
	}
}

func TestManager_WithScriptedChannel(t *testing.T) {
	ctx := context.Background()
	m := testutil.NewManager(ctx)
	ch := channel.NewScripted()
	m.Add(ch)

	if err := m.StartAll(); err != nil {
		t.Fatalf("StartAll() failed: %v", err)
	}
	defer func() { _ = m.StopAll() }()

	ch.SetScriptedResult([]byte(`{}`), &channel.Metadata{StatusCode: 200}, nil)
	req, err := request.Build(request.New("ping", request.WithHost("h")), config.Settings{})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if _, err := ch.Send(ctx, req); err != nil {
		t.Fatalf("Send() failed: %v", err)
	}
	if ch.Calls() != 1 {
		t.Fatalf("Calls() = %d, want 1", ch.Calls())
	}

	if err := m.ResetAll(); err != nil {
		t.Fatalf("ResetAll() failed: %v", err)
	}
	if ch.Calls() != 0 {
		t.Errorf("Calls() after reset = %d, want 0", ch.Calls())
	}
	if h := ch.Health(ctx); h.Status != component.StatusHealthy {
		t.Errorf("Health() = %s, want healthy", h.Status)
	}
}

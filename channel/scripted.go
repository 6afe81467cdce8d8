package channel

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/kbukum/reqkit/component"
	"github.com/kbukum/reqkit/request"
)

// Scripted is a Channel that returns a preset result and records every
// request it receives. It is safe for concurrent use.
//
// A nil body with a nil error is delivered as a nil Response, which callers
// treat as "no bytes received".
type Scripted struct {
	mu       sync.RWMutex
	name     string
	body     []byte
	meta     *Metadata
	err      error
	requests []*request.Materialized
	started  bool
}

// scriptedState is the value returned by Snapshot.
type scriptedState struct {
	body     []byte
	meta     *Metadata
	err      error
	requests []*request.Materialized
}

// NewScripted creates a Scripted channel with nothing scripted.
func NewScripted() *Scripted {
	return &Scripted{name: "scripted"}
}

// SetScriptedResult sets the triple returned by subsequent sends.
func (s *Scripted) SetScriptedResult(body []byte, meta *Metadata, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.body = cloneBytes(body)
	s.meta = cloneMeta(meta)
	s.err = err
}

// Send records req and returns the scripted result.
func (s *Scripted) Send(ctx context.Context, req *request.Materialized) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.requests = append(s.requests, req.Clone())
	body, meta, err := cloneBytes(s.body), cloneMeta(s.meta), s.err
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}
	return &Response{Body: body, Meta: meta}, nil
}

// Requests returns copies of the requests received so far, in order.
func (s *Scripted) Requests() []*request.Materialized {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*request.Materialized, len(s.requests))
	for i, r := range s.requests {
		out[i] = r.Clone()
	}
	return out
}

// Calls returns the number of requests received.
func (s *Scripted) Calls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.requests)
}

// --- component.Component ---

func (s *Scripted) Name() string { return s.name }

func (s *Scripted) Start(_ context.Context) error {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()
	return nil
}

func (s *Scripted) Stop(_ context.Context) error {
	s.mu.Lock()
	s.started = false
	s.mu.Unlock()
	return nil
}

func (s *Scripted) Health(_ context.Context) component.Health {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return component.Unhealthy(s.name, "not started")
	}
	return component.Healthy(s.name)
}

// Describe returns the component description.
func (s *Scripted) Describe() component.Description {
	return component.Description{Name: "Scripted channel", Type: "channel", Details: "in-memory"}
}

// --- testutil.TestComponent ---

// Reset clears the scripted result and the recorded requests.
func (s *Scripted) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.body, s.meta, s.err = nil, nil, nil
	s.requests = nil
	return nil
}

func (s *Scripted) Snapshot(_ context.Context) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reqs := make([]*request.Materialized, len(s.requests))
	for i, r := range s.requests {
		reqs[i] = r.Clone()
	}
	return &scriptedState{
		body:     cloneBytes(s.body),
		meta:     cloneMeta(s.meta),
		err:      s.err,
		requests: reqs,
	}, nil
}

func (s *Scripted) Restore(_ context.Context, snapshot any) error {
	state, ok := snapshot.(*scriptedState)
	if !ok {
		return fmt.Errorf("channel: invalid snapshot type %T", snapshot)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.body = cloneBytes(state.body)
	s.meta = cloneMeta(state.meta)
	s.err = state.err
	s.requests = make([]*request.Materialized, len(state.requests))
	for i, r := range state.requests {
		s.requests[i] = r.Clone()
	}
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte{}, b...)
}

func cloneMeta(m *Metadata) *Metadata {
	if m == nil {
		return nil
	}
	return &Metadata{StatusCode: m.StatusCode, Headers: maps.Clone(m.Headers)}
}

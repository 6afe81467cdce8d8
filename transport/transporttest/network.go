// Package transporttest provides an Executor double for code that depends
// on transport.Executor.
package transporttest

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/kbukum/reqkit/channel"
	"github.com/kbukum/reqkit/request"
	"github.com/kbukum/reqkit/transport"
)

// Network answers every execution with a preset value, without building or
// sending anything. It is safe for concurrent use.
type Network struct {
	mu       sync.Mutex
	response any
	err      error
	meta     *channel.Metadata
	specs    []request.Spec
}

var _ transport.MetadataExecutor = (*Network)(nil)

// NewNetwork creates a Network that answers with response.
func NewNetwork(response any) *Network {
	return &Network{response: response}
}

// SetResponse changes the preset value and clears any preset failure.
func (n *Network) SetResponse(response any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.response = response
	n.err = nil
}

// SetError makes subsequent executions fail with err. Errors that are not
// *transport.Error are reported as transport failures.
func (n *Network) SetError(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.err = err
}

// SetMetadata sets the metadata reported on success.
func (n *Network) SetMetadata(meta *channel.Metadata) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.meta = meta
}

// Specs returns the specs executed so far.
func (n *Network) Specs() []request.Spec {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]request.Spec(nil), n.specs...)
}

// Execute assigns the preset value to target when its type matches.
func (n *Network) Execute(ctx context.Context, spec request.Spec, target any) error {
	_, err := n.Do(ctx, spec, target)
	return err
}

// Do is Execute that also returns the preset metadata.
func (n *Network) Do(_ context.Context, spec request.Spec, target any) (*channel.Metadata, error) {
	n.mu.Lock()
	n.specs = append(n.specs, spec)
	response, presetErr, meta := n.response, n.err, n.meta
	n.mu.Unlock()

	if presetErr != nil {
		return nil, transport.AsError(presetErr)
	}
	if _, ok := target.(*transport.Empty); ok {
		return meta, nil
	}

	dst := reflect.ValueOf(target)
	if !dst.IsValid() || dst.Kind() != reflect.Pointer || dst.IsNil() {
		return nil, transport.NewDecodeError(target, fmt.Errorf("target must be a non-nil pointer"))
	}
	elem := dst.Elem()
	if response == nil {
		return nil, transport.NewDecodeError(target, fmt.Errorf("no response preset"))
	}
	src := reflect.ValueOf(response)
	if !src.Type().AssignableTo(elem.Type()) {
		return nil, transport.NewDecodeError(target, fmt.Errorf("preset response is %T", response))
	}
	elem.Set(src)
	return meta, nil
}

// Package testutil adds test lifecycle helpers on top of component.
//
// A TestComponent is a Component that can also be reset, snapshotted and
// restored, which lets one instance serve several test cases:
//
//	func TestSomething(t *testing.T) {
//	    ch := channel.NewScripted()
//	    h := testutil.T(t)
//	    h.Setup(ch)
//	    ...
//	    h.Reset(ch)
//	}
//
// Manager starts, resets and stops a group of test components together.
package testutil

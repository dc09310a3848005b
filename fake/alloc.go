// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake allocator implementations for testing.
// Provides predictable, controllable allocation failure for every
// OOM and partial-result path in the library.

package fake

import (
	"github.com/momentics/hioload-buf/api"
)

// Allocator implements api.Allocator over the Go heap while counting
// requests and failing on demand.
type Allocator struct {
	// FailAfter makes Alloc fail once this many calls have succeeded.
	// Zero means never fail.
	FailAfter int

	Calls      int
	BytesAsked int64
}

// Alloc returns a zeroed slice, or api.ErrOutOfMemory once FailAfter
// successful calls have been served.
func (f *Allocator) Alloc(size int) ([]byte, error) {
	if f.FailAfter > 0 && f.Calls >= f.FailAfter {
		return nil, api.ErrOutOfMemory
	}
	f.Calls++
	f.BytesAsked += int64(size)
	return make([]byte, size), nil
}

var _ api.Allocator = (*Allocator)(nil)

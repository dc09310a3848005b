// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for the hioload-buf library.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrOutOfMemory is the single allocation failure: the backing
	// allocator or the arena budget could not satisfy a request.
	// Every allocation-backed operation propagates it unwrapped or
	// wrapped with %w.
	ErrOutOfMemory = fmt.Errorf("out of memory")

	// ErrNotSupported marks operations unavailable on this platform.
	ErrNotSupported = fmt.Errorf("operation not supported")

	// ErrInvalidArgument reports a malformed caller request.
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

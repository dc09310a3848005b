// File: pool/arena.go
// Package pool implements the budgeted arena allocator backing all
// buffer and chain structures.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The arena bump-allocates out of large backing blocks obtained from an
// api.Allocator. Nothing is freed individually: Reset drops every block
// at once and bumps the generation counter, invalidating all handles
// created under the previous generation.

package pool

import (
	"github.com/momentics/hioload-buf/api"
)

// DefaultBlockSize is the granularity of backing block requests.
const DefaultBlockSize = 16 * 1024

// heapAllocator is the default backing store: plain Go heap slices.
type heapAllocator struct{}

func (heapAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, api.ErrInvalidArgument
	}
	return make([]byte, size), nil
}

// Arena is a single-owner bump allocator. It is not safe for
// concurrent use: each worker owns its arenas outright.
type Arena struct {
	backing   api.Allocator
	blockSize int
	limit     int64 // total budget across Alloc and Reserve; 0 = unlimited

	blocks    [][]byte
	cur       []byte // tail of the current block still available
	allocated int64
	reserved  int64
	gen       uint64
}

// NewArena creates an arena drawing blocks of blockSize bytes from
// backing. limit caps the combined Alloc+Reserve budget; 0 disables
// the cap. A nil backing uses the Go heap.
func NewArena(blockSize int, limit int64, backing api.Allocator) *Arena {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	if backing == nil {
		backing = heapAllocator{}
	}
	return &Arena{
		backing:   backing,
		blockSize: blockSize,
		limit:     limit,
	}
}

// Alloc returns a zeroed n-byte slice carved from the arena.
// Requests larger than the block size get a dedicated block.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, api.ErrInvalidArgument
	}
	if err := a.charge(int64(n)); err != nil {
		return nil, err
	}
	if n > a.blockSize {
		blk, err := a.backing.Alloc(n)
		if err != nil {
			a.allocated -= int64(n)
			return nil, api.ErrOutOfMemory
		}
		a.blocks = append(a.blocks, blk)
		return blk, nil
	}
	if len(a.cur) < n {
		blk, err := a.backing.Alloc(a.blockSize)
		if err != nil {
			a.allocated -= int64(n)
			return nil, api.ErrOutOfMemory
		}
		a.blocks = append(a.blocks, blk)
		a.cur = blk
	}
	out := a.cur[:n:n]
	a.cur = a.cur[n:]
	return out, nil
}

// Reserve charges n bytes against the arena budget without handing out
// arena memory. Heap-side structures whose lifetime is tied to the
// arena (list segments, chain-link nodes) account themselves this way.
func (a *Arena) Reserve(n int) error {
	if n < 0 {
		return api.ErrInvalidArgument
	}
	if a.limit > 0 && a.allocated+a.reserved+int64(n) > a.limit {
		return api.ErrOutOfMemory
	}
	a.reserved += int64(n)
	return nil
}

func (a *Arena) charge(n int64) error {
	if a.limit > 0 && a.allocated+a.reserved+n > a.limit {
		return api.ErrOutOfMemory
	}
	a.allocated += n
	return nil
}

// Generation returns the current arena generation. Handles stamped
// with an older generation are dead.
func (a *Arena) Generation() uint64 { return a.gen }

// Live reports whether a handle stamped with gen is still valid.
func (a *Arena) Live(gen uint64) bool { return gen == a.gen }

// Reset performs bulk teardown: every block is released, all
// accounting returns to zero, and the generation advances so that
// outstanding handles become invalid atomically.
func (a *Arena) Reset() {
	a.blocks = nil
	a.cur = nil
	a.allocated = 0
	a.reserved = 0
	a.gen++
}

// Stats returns a snapshot of the arena accounting.
func (a *Arena) Stats() api.ArenaStats {
	return api.ArenaStats{
		BytesAllocated: a.allocated,
		BytesReserved:  a.reserved,
		Blocks:         len(a.blocks),
		Generation:     a.gen,
	}
}

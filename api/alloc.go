// File: api/alloc.go
// Author: momentics <momentics@gmail.com>
//
// Allocator abstracts the source of backing memory blocks for arenas.

package api

// Allocator hands out raw byte blocks. Implementations may be the Go
// heap, hugepage mmap regions, or test doubles that fail on demand.
//
// Alloc returns a zeroed slice of exactly size bytes, or ErrOutOfMemory
// when the request cannot be satisfied. Blocks are never freed
// individually; owners release them in bulk (see pool.Arena.Reset).
type Allocator interface {
	Alloc(size int) ([]byte, error)
}

// AllocatorFunc adapts a plain function to the Allocator interface.
type AllocatorFunc func(size int) ([]byte, error)

func (f AllocatorFunc) Alloc(size int) ([]byte, error) { return f(size) }

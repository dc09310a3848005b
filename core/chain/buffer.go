// File: core/chain/buffer.go
// Package chain implements the buffer and buffer-chain machinery of the
// hioload I/O pipeline.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A Buffer describes a byte range in memory, in a file, or both, with
// an independent read cursor. Buffers never own their storage: the
// arena does, and tag-scoped recycling (see recycle.go) decides who may
// rewind a consumed buffer for reuse.

package chain

import (
	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/pool"
)

// Buffer is a descriptor over a memory extent and/or a file byte range.
//
// Mem is the full owned extent; Pos and Last delimit the unread window
// within it (0 <= Pos <= Last <= len(Mem)). For file-backed buffers,
// FilePos and FileLast delimit the unread window within FD.
//
// A buffer with zero size in both domains and one of the Flush, Sync or
// LastBuf hints set is "special": a control marker carrying no payload.
// Consumers that measure data length must skip it.
type Buffer struct {
	Mem  []byte
	Pos  int
	Last int

	FD       int
	FilePos  int64
	FileLast int64

	// Tag names the subsystem responsible for recycling the backing
	// storage. Recyclers compare it by value.
	Tag api.Tag

	// Shadow is a weak back-reference to another buffer sharing the
	// same storage. It is never an ownership edge and is ignored by
	// the recycler.
	Shadow *Buffer

	Temporary bool // writable, owned by this pipeline
	Memory    bool // read-only memory
	InFile    bool
	Flush     bool
	Sync      bool
	LastBuf   bool // last buffer of the logical stream

	gen uint64
}

// NewTempBuffer allocates a zeroed writable buffer of size bytes from
// the arena. The unread window starts empty: Pos == Last == 0.
func NewTempBuffer(a *Arena, size int) (*Buffer, error) {
	mem, err := a.Alloc(size)
	if err != nil {
		return nil, err
	}
	b := &Buffer{
		Mem:       mem,
		Temporary: true,
		gen:       a.Generation(),
	}
	return b, nil
}

// InMemory reports whether the buffer carries readable bytes in memory.
func (b *Buffer) InMemory() bool {
	return b.Temporary || b.Memory
}

// Special reports whether the buffer is a zero-size control marker.
func (b *Buffer) Special() bool {
	return (b.Flush || b.Sync || b.LastBuf) && !b.InMemory() && !b.InFile
}

// Size returns the unread memory window length.
func (b *Buffer) Size() int {
	return b.Last - b.Pos
}

// FileSize returns the unread file window length.
func (b *Buffer) FileSize() int64 {
	return b.FileLast - b.FilePos
}

// ChainSize returns the buffer's remaining payload: the memory window
// when the buffer is in memory, the file window otherwise.
func (b *Buffer) ChainSize() int64 {
	if b.InMemory() {
		return int64(b.Size())
	}
	return b.FileSize()
}

// Rewind resets the memory cursors to the start of the extent,
// readying the buffer for refill.
func (b *Buffer) Rewind() {
	b.Pos = 0
	b.Last = 0
}

// Bytes returns the unread memory window.
func (b *Buffer) Bytes() []byte {
	return b.Mem[b.Pos:b.Last]
}

// Live reports whether the buffer's arena generation is still current.
// Any use of a buffer whose arena has been Reset is a bug; tests assert
// through this.
func (b *Buffer) Live(a *pool.Arena) bool {
	return a.Live(b.gen)
}

// File: core/chain/recycle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Tag-scoped free/busy recycling of buffers during streaming output.
//
// The busy list is maintained in strict enqueue order: oldest unsent
// buffer first. Update stops at the first buffer with unread bytes,
// which is correct only under that ordering; every caller appending to
// the recycler must preserve it.

package chain

import (
	"github.com/momentics/hioload-buf/api"
)

// Recycler tracks free and busy chain lists for one owning subsystem.
// Buffers whose tag matches the recycler's are rewound and parked on
// the free list once fully consumed; foreign-tagged nodes only return
// their link to the structural freelist — their buffer belongs to a
// different subsystem and must not be reused here.
type Recycler struct {
	arena *Arena
	tag   api.Tag
	free  *Link
	busy  *Link
}

// NewRecycler creates a recycler owning buffers tagged tag.
func NewRecycler(a *Arena, tag api.Tag) *Recycler {
	return &Recycler{arena: a, tag: tag}
}

// Tag returns the owner tag.
func (r *Recycler) Tag() api.Tag { return r.tag }

// Free returns the head of the free list.
func (r *Recycler) Free() *Link { return r.free }

// Busy returns the head of the busy list.
func (r *Recycler) Busy() *Link { return r.busy }

// GetFree pops a link from the free list, or allocates a fresh link
// with a zeroed buffer stamped with the recycler's tag.
func (r *Recycler) GetFree() (*Link, error) {
	if r.free != nil {
		l := r.free
		r.free = l.Next
		l.Next = nil
		return l, nil
	}
	l, err := r.arena.Link()
	if err != nil {
		return nil, err
	}
	l.Buf = &Buffer{Tag: r.tag, gen: r.arena.Generation()}
	return l, nil
}

// Update absorbs the out chain onto the busy tail, then reclaims
// fully-consumed buffers from the busy head:
//
//   - foreign-tag nodes go back to the structural freelist, never onto
//     free;
//   - own-tag buffers are rewound to the start of their extent and the
//     node is pushed onto free.
//
// The walk stops at the first buffer that still has unread bytes. The
// out chain is absorbed wholesale; the caller must treat it as
// consumed after the call.
func (r *Recycler) Update(out *Link) {
	if out != nil {
		if r.busy == nil {
			r.busy = out
		} else {
			l := r.busy
			for l.Next != nil {
				l = l.Next
			}
			l.Next = out
		}
	}

	for r.busy != nil {
		l := r.busy
		if l.Buf.ChainSize() != 0 {
			break
		}
		r.busy = l.Next

		if l.Buf.Tag != r.tag {
			r.arena.ReleaseLink(l)
			continue
		}

		l.Buf.Rewind()
		l.Next = r.free
		r.free = l
	}
}

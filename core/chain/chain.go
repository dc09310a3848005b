// File: core/chain/chain.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Chain links and the chain arena. A chain is a nil-terminated,
// singly-linked sequence of links, each referencing one buffer. Links
// are owned by whichever list currently holds them; the referenced
// buffer may be shared by several links after a reference-append.

package chain

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-buf/pool"
)

// Link is one chain node.
type Link struct {
	Buf  *Buffer
	Next *Link
}

// Len walks head and returns the number of links.
func Len(head *Link) int {
	n := 0
	for l := head; l != nil; l = l.Next {
		n++
	}
	return n
}

// linkSize approximates the per-node budget charged to the arena for
// heap-side link nodes.
const linkSize = 16

// Arena couples a byte arena with this package's structural freelist
// of link nodes. Recycled nodes are reused before the arena is asked
// for fresh ones; the freelist recycles nodes only, independent of the
// tag-based buffer recycling in recycle.go.
type Arena struct {
	*pool.Arena
	free *queue.Queue // of *Link
}

// NewArena wraps a pool arena for chain allocation.
func NewArena(a *pool.Arena) *Arena {
	return &Arena{
		Arena: a,
		free:  queue.New(),
	}
}

// Link returns a detached chain link, preferring the structural
// freelist over fresh allocation.
func (a *Arena) Link() (*Link, error) {
	if a.free.Length() > 0 {
		l := a.free.Remove().(*Link)
		l.Buf = nil
		l.Next = nil
		return l, nil
	}
	if err := a.Reserve(linkSize); err != nil {
		return nil, err
	}
	return &Link{}, nil
}

// ReleaseLink returns a node to the structural freelist. The node must
// be detached; its buffer reference is dropped, not recycled.
func (a *Arena) ReleaseLink(l *Link) {
	l.Buf = nil
	l.Next = nil
	a.free.Add(l)
}

// FreeLinks reports the structural freelist depth.
func (a *Arena) FreeLinks() int {
	return a.free.Length()
}

// Reset performs bulk teardown of the underlying arena and drops the
// structural freelist with it: nodes allocated under the old
// generation must not resurface.
func (a *Arena) Reset() {
	a.free = queue.New()
	a.Arena.Reset()
}

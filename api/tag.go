// File: api/tag.go
// Author: momentics <momentics@gmail.com>
//
// Owner tags discriminate which subsystem is responsible for recycling
// a buffer's backing storage. Tags are small values compared by value,
// never by address, so unrelated objects can share recycling lists
// without aliasing surprises.

package api

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Tag identifies the subsystem that owns a buffer's storage.
// The zero value means "unowned".
type Tag uint64

// TagNone marks buffers that no recycler may reclaim.
const TagNone Tag = 0

// TagFor derives a stable tag from a subsystem name. The same name
// always maps to the same tag across processes and restarts.
func TagFor(name string) Tag {
	t := Tag(xxhash.Sum64String(name))
	if t == TagNone {
		// Sum64String("") is non-zero, but guard the collision anyway.
		t = 1
	}
	return t
}

func (t Tag) String() string {
	if t == TagNone {
		return "tag(none)"
	}
	return fmt.Sprintf("tag(%016x)", uint64(t))
}

// File: core/list/list.go
// Package list implements a growable append-only list of fixed-size
// records spanning discontiguous arena-charged segments.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Used for append-only record storage elsewhere in the pipeline.
// There is no removal or compaction; entries live until the owning
// arena is reset.

package list

import (
	"unsafe"

	"github.com/momentics/hioload-buf/pool"
)

type segment[T any] struct {
	elems []T
	next  *segment[T]
}

// List is an append-only list of T. Segment capacity is fixed at
// creation; every segment has equal capacity and its elements are
// contiguous.
type List[T any] struct {
	arena    *pool.Arena
	head     *segment[T]
	last     *segment[T]
	cap      int
	elemSize int
	len      int
}

// New creates a list with one segment of capacity n charged against
// the arena budget.
func New[T any](a *pool.Arena, n int) (*List[T], error) {
	var zero T
	l := &List[T]{
		arena:    a,
		cap:      n,
		elemSize: int(unsafe.Sizeof(zero)),
	}
	seg, err := l.newSegment()
	if err != nil {
		return nil, err
	}
	l.head = seg
	l.last = seg
	return l, nil
}

func (l *List[T]) newSegment() (*segment[T], error) {
	if err := l.arena.Reserve(l.cap * l.elemSize); err != nil {
		return nil, err
	}
	return &segment[T]{elems: make([]T, 0, l.cap)}, nil
}

// Push returns a pointer to the next free record slot, growing the
// list by one segment of the same capacity when the last segment is
// full.
func (l *List[T]) Push() (*T, error) {
	last := l.last

	if len(last.elems) == l.cap {
		seg, err := l.newSegment()
		if err != nil {
			return nil, err
		}
		last.next = seg
		l.last = seg
		last = seg
	}

	var zero T
	last.elems = append(last.elems, zero)
	l.len++
	return &last.elems[len(last.elems)-1], nil
}

// Len returns the number of records pushed.
func (l *List[T]) Len() int { return l.len }

// Each visits records in insertion order until fn returns false.
func (l *List[T]) Each(fn func(*T) bool) {
	for seg := l.head; seg != nil; seg = seg.next {
		for i := range seg.elems {
			if !fn(&seg.elems[i]) {
				return
			}
		}
	}
}

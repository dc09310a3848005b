// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package chain_test

import (
	"os"
	"testing"

	"github.com/momentics/hioload-buf/core/chain"
)

func fileLink(fd int, from, to int64) *chain.Link {
	return &chain.Link{Buf: &chain.Buffer{
		InFile:   true,
		FD:       fd,
		FilePos:  from,
		FileLast: to,
	}}
}

func fileChain(links ...*chain.Link) *chain.Link {
	for i := 0; i < len(links)-1; i++ {
		links[i].Next = links[i+1]
	}
	return links[0]
}

func TestCoalesceFileContiguousRanges(t *testing.T) {
	page := int64(os.Getpagesize())
	in := fileChain(
		fileLink(3, 0, 4096),
		fileLink(3, 4096, 8192),
		fileLink(3, 8192, 12288),
	)

	const limit = 10000
	total, rest := chain.CoalesceFile(in, limit)

	if total < limit {
		t.Errorf("total = %d, want >= %d", total, limit)
	}
	if total > limit+page-1 {
		t.Errorf("total = %d exceeds limit by a full page", total)
	}
	if page == 4096 && total != 12288 {
		// Truncation point rounds up to the next page boundary.
		t.Errorf("total = %d, want 12288", total)
	}
	// Cursors are never mutated.
	for l, want := in, int64(0); l != nil; l = l.Next {
		if l.Buf.FilePos != want {
			t.Errorf("cursor mutated: file_pos = %d, want %d", l.Buf.FilePos, want)
		}
		want += 4096
	}
	// rest is the node holding the truncation point.
	if rest != in.Next.Next {
		t.Error("rest must point at the partially included node")
	}
}

func TestCoalesceFileStopsAtDifferentDescriptor(t *testing.T) {
	in := fileChain(
		fileLink(3, 0, 4096),
		fileLink(4, 4096, 8192),
	)
	total, rest := chain.CoalesceFile(in, 1<<20)
	if total != 4096 {
		t.Errorf("total = %d, want 4096", total)
	}
	if rest != in.Next {
		t.Error("rest must be the foreign-descriptor node")
	}
}

func TestCoalesceFileStopsAtGap(t *testing.T) {
	in := fileChain(
		fileLink(3, 0, 4096),
		fileLink(3, 8192, 12288), // hole at [4096,8192)
	)
	total, rest := chain.CoalesceFile(in, 1<<20)
	if total != 4096 {
		t.Errorf("total = %d, want 4096", total)
	}
	if rest != in.Next {
		t.Error("rest must be the non-contiguous node")
	}
}

func TestCoalesceFileStopsAtMemoryNode(t *testing.T) {
	mem := &chain.Link{Buf: &chain.Buffer{Memory: true, Mem: make([]byte, 16), Last: 16}}
	in := fileChain(fileLink(3, 0, 4096), mem)
	total, rest := chain.CoalesceFile(in, 1<<20)
	if total != 4096 {
		t.Errorf("total = %d, want 4096", total)
	}
	if rest != mem {
		t.Error("rest must be the memory-backed node")
	}
}

func TestCoalesceFileFullyConsumedChain(t *testing.T) {
	in := fileChain(fileLink(3, 0, 4096), fileLink(3, 4096, 8192))
	total, rest := chain.CoalesceFile(in, 1<<20)
	if total != 8192 {
		t.Errorf("total = %d, want 8192", total)
	}
	if rest != nil {
		t.Error("rest must be nil when the whole chain coalesces")
	}
}

func TestCoalesceFileExactLimitStops(t *testing.T) {
	in := fileChain(fileLink(3, 0, 4096), fileLink(3, 4096, 8192))
	total, rest := chain.CoalesceFile(in, 4096)
	if total != 4096 {
		t.Errorf("total = %d, want 4096", total)
	}
	if rest != in.Next {
		t.Error("reaching the limit exactly must stop before the next node")
	}
}

// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package chain_test

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/core/chain"
)

func TestNewBufferChain(t *testing.T) {
	a, _ := newTestArena(0)
	head, err := chain.NewBufferChain(a, 4, 256)
	if err != nil {
		t.Fatal(err)
	}
	if n := chain.Len(head); n != 4 {
		t.Fatalf("chain length = %d, want 4", n)
	}
	for l := head; l != nil; l = l.Next {
		checkBuf(t, l.Buf)
		if len(l.Buf.Mem) != 256 {
			t.Errorf("extent = %d, want 256", len(l.Buf.Mem))
		}
		if l.Buf.Pos != 0 || l.Buf.Last != 0 {
			t.Error("window must start empty")
		}
		if !l.Buf.Temporary {
			t.Error("uniform chain buffers must be writable")
		}
	}

	// Slices must tile one extent without overlap.
	first := head.Buf.Mem
	second := head.Next.Buf.Mem
	first[255] = 0xAA
	if second[0] != 0 {
		t.Error("adjacent buffer slices overlap")
	}
}

func TestAppendCopySharesBuffers(t *testing.T) {
	a, _ := newTestArena(0)
	dst, err := chain.NewBufferChain(a, 2, 64)
	if err != nil {
		t.Fatal(err)
	}
	src, err := chain.NewBufferChain(a, 3, 64)
	if err != nil {
		t.Fatal(err)
	}

	head, err := chain.AppendCopy(a, dst, src)
	if err != nil {
		t.Fatal(err)
	}
	if n := chain.Len(head); n != 5 {
		t.Fatalf("chain length = %d, want 5", n)
	}

	// Appended links reference src's buffers by identity.
	l := head
	for i := 0; i < 2; i++ {
		l = l.Next
	}
	for s := src; s != nil; s, l = s.Next, l.Next {
		if l.Buf != s.Buf {
			t.Fatal("appended link does not alias source buffer")
		}
	}
}

func TestAppendCopyNilDst(t *testing.T) {
	a, _ := newTestArena(0)
	src, err := chain.NewBufferChain(a, 2, 32)
	if err != nil {
		t.Fatal(err)
	}
	head, err := chain.AppendCopy(a, nil, src)
	if err != nil {
		t.Fatal(err)
	}
	if n := chain.Len(head); n != 2 {
		t.Fatalf("chain length = %d, want 2", n)
	}
}

func TestAppendCopyPartialOnOOM(t *testing.T) {
	srcArena, _ := newTestArena(0)
	src, err := chain.NewBufferChain(srcArena, 3, 32)
	if err != nil {
		t.Fatal(err)
	}

	// Budget for two link nodes only.
	a, _ := newTestArena(32)
	head, err := chain.AppendCopy(a, nil, src)
	if !errors.Is(err, api.ErrOutOfMemory) {
		t.Fatalf("err = %v, want ErrOutOfMemory", err)
	}
	if n := chain.Len(head); n != 2 {
		t.Fatalf("partial chain length = %d, want 2", n)
	}
	// The partial result must stay nil-terminated and alias src.
	if head.Buf != src.Buf || head.Next.Buf != src.Next.Buf {
		t.Error("partial result does not alias source buffers")
	}
}

func BenchmarkAppendCopy(b *testing.B) {
	a, _ := newTestArena(0)
	src, err := chain.NewBufferChain(a, 16, 64)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		head, err := chain.AppendCopy(a, nil, src)
		if err != nil {
			b.Fatal(err)
		}
		for head != nil {
			next := head.Next
			a.ReleaseLink(head)
			head = next
		}
	}
}

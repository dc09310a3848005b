// File: transport/writer_linux.go
//go:build linux
// +build linux

//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux drain path: writev for memory runs, sendfile for coalesced
// file spans.

package transport

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-buf/core/chain"
)

func (w *Writer) drain(in *chain.Link) (*chain.Link, error) {
	for in != nil {
		// Nothing to transmit: control markers and already-consumed
		// buffers.
		for in != nil && in.Buf.ChainSize() == 0 {
			in = in.Next
		}
		if in == nil {
			break
		}

		if in.Buf.InMemory() {
			vs := Gather(in, gatherVecs.Get())
			n, err := unix.Writev(w.fd, vs)
			if err != nil {
				gatherVecs.Put(vs[:0])
				if err == unix.EAGAIN || err == unix.EINTR {
					return in, nil
				}
				return in, fmt.Errorf("writev: %w", err)
			}
			sentAll := allSent(vs, n)
			gatherVecs.Put(vs[:0])
			w.stats.MemWrites++
			w.stats.BytesSent += int64(n)
			in = chain.UpdateSent(in, int64(n))
			if !sentAll {
				// Socket buffer full mid-write.
				return in, nil
			}
			continue
		}

		if !in.Buf.InFile {
			return in, fmt.Errorf("drain: buffer neither in memory nor in file: %w", errBadChain)
		}

		total, _ := chain.CoalesceFile(in, w.limit)
		off := in.Buf.FilePos
		n, err := unix.Sendfile(w.fd, in.Buf.FD, &off, int(total))
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				return in, nil
			}
			return in, fmt.Errorf("sendfile: %w", err)
		}
		w.stats.FileSends++
		w.stats.BytesSent += int64(n)
		in = chain.UpdateSent(in, int64(n))
		if int64(n) < total {
			return in, nil
		}
	}
	return nil, nil
}

// allSent reports whether n covers every gathered slice.
func allSent(vs [][]byte, n int) bool {
	for _, v := range vs {
		n -= len(v)
	}
	return n >= 0
}

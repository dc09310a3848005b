// File: core/chain/coalesce.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package chain

import "os"

var pageSize = int64(os.Getpagesize())

// CoalesceFile merges adjacent on-disk ranges starting at in into one
// span suitable for a single vectored file send. The head buffer must
// be file-backed. Consecutive nodes are absorbed while they are
// file-backed, share the head's descriptor, start exactly where the
// previous range ended, and keep the running total below limit.
//
// When the next range would cross limit it is truncated, then extended
// up to the next page boundary of the absolute file offset if that
// boundary still lies within the range. The returned total may thus
// exceed limit by at most pageSize-1 bytes; callers with a hard cap
// must re-clamp. Trading a bounded over-read for page-aligned I/O is
// the point.
//
// No cursors are mutated. rest is the first node not fully included in
// the span.
func CoalesceFile(in *Link, limit int64) (total int64, rest *Link) {
	l := in
	fd := l.Buf.FD

	for {
		size := l.Buf.FileSize()

		if size > limit-total {
			size = limit - total

			aligned := (l.Buf.FilePos + size + pageSize - 1) &^ (pageSize - 1)
			if aligned <= l.Buf.FileLast {
				size = aligned - l.Buf.FilePos
			}

			total += size
			break
		}

		total += size
		fprev := l.Buf.FilePos + size
		l = l.Next

		if l == nil || !l.Buf.InFile || total >= limit ||
			fd != l.Buf.FD || fprev != l.Buf.FilePos {
			break
		}
	}

	return total, l
}

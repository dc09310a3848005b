// File: transport/gather.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package transport

import (
	"github.com/momentics/hioload-buf/core/chain"
	"github.com/momentics/hioload-buf/pool"
)

// MaxGather caps the number of slices collected per vectored write.
const MaxGather = 64

// gatherVecs recycles scratch vectors across Drain calls.
var gatherVecs = pool.NewSyncPool(func() [][]byte {
	return make([][]byte, 0, MaxGather)
})

// Gather appends the unread memory windows of consecutive in-memory
// buffers starting at in onto vs, up to MaxGather slices. Special
// buffers are skipped; the walk stops at the first file-backed or
// otherwise non-memory buffer. Returns the filled vector.
func Gather(in *chain.Link, vs [][]byte) [][]byte {
	for l := in; l != nil && len(vs) < MaxGather; l = l.Next {
		if l.Buf.Special() {
			continue
		}
		if !l.Buf.InMemory() {
			break
		}
		if l.Buf.Size() == 0 {
			continue
		}
		vs = append(vs, l.Buf.Bytes())
	}
	return vs
}

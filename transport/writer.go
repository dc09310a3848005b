// File: transport/writer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package transport

import (
	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/control"
	"github.com/momentics/hioload-buf/core/chain"
)

// DefaultFileChunk bounds one coalesced sendfile span. Coalescing may
// round the span up to the next page boundary, so a single call can
// move up to DefaultFileChunk+pageSize-1 bytes.
const DefaultFileChunk = 1 << 20

// Writer drains buffer chains into a connected socket. Memory runs go
// out as one vectored write, file runs as coalesced sendfile spans.
// Like everything in this library, a Writer belongs to one worker.
type Writer struct {
	fd      int
	limit   int64
	metrics *control.MetricsRegistry
	stats   api.WriterStats
}

// NewWriter wraps a connected, non-blocking socket descriptor.
// limit bounds each coalesced file span; 0 means DefaultFileChunk.
// metrics may be nil.
func NewWriter(fd int, limit int64, metrics *control.MetricsRegistry) *Writer {
	if limit <= 0 {
		limit = DefaultFileChunk
	}
	return &Writer{fd: fd, limit: limit, metrics: metrics}
}

// Stats returns a snapshot of the writer counters.
func (w *Writer) Stats() api.WriterStats { return w.stats }

// Drain transmits as much of in as the socket accepts and returns the
// new unsent head (nil when the chain was fully sent). A would-block
// condition is not an error: the remaining head comes back and the
// caller re-arms its write readiness.
func (w *Writer) Drain(in *chain.Link) (*chain.Link, error) {
	rest, err := w.drain(in)
	if err != nil {
		return rest, err
	}
	if rest == nil {
		w.stats.FullDrains++
	}
	if w.metrics != nil {
		w.metrics.Set("writer.bytes_sent", w.stats.BytesSent)
		w.metrics.Set("writer.mem_writes", w.stats.MemWrites)
		w.metrics.Set("writer.file_sends", w.stats.FileSends)
	}
	return rest, nil
}

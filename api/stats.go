// File: api/stats.go
// Author: momentics <momentics@gmail.com>
//
// Shared stats DTOs for observability across pool and transport layers.

package api

// ArenaStats aggregates arena allocation accounting.
type ArenaStats struct {
	BytesAllocated int64 // bytes handed out from arena blocks
	BytesReserved  int64 // bytes charged via Reserve for heap-side structures
	Blocks         int   // backing blocks currently held
	Generation     uint64
}

// InUse reports the total budget consumed by the arena.
func (s ArenaStats) InUse() int64 {
	return s.BytesAllocated + s.BytesReserved
}

// WriterStats counts transmission work done by a chain writer.
type WriterStats struct {
	BytesSent  int64
	MemWrites  int64 // vectored memory writes issued
	FileSends  int64 // sendfile calls issued
	FullDrains int64 // Drain calls that consumed the whole chain
}

// Package pool
// Author: momentics <momentics@gmail.com>
//
// Memory layer for hioload-buf.
// Implements the budgeted arena allocator with bulk teardown plus small
// generic object pools. Arenas are single-owner: server-level
// concurrency comes from workers holding disjoint arenas, never from
// sharing one.
// See arena.go and objpool.go for implementation details.
package pool

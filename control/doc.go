// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for buffer pipelines.
//
// Provides concurrent-safe primitives:
//   - Metrics telemetry registry with counters and snapshots
//   - Debug hooks and probe registration for arena/writer state export
package control

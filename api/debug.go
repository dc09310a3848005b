// Package api
// Author: momentics
//
// Live introspection support for buffer pipelines under load.

package api

// Debug exposes runtime introspection of arenas, recyclers and writers.
type Debug interface {
	// DumpState emits a snapshot of subsystem state for diagnostics.
	DumpState() map[string]any

	// RegisterProbe dynamically registers a named debug probe.
	RegisterProbe(name string, fn func() any)
}

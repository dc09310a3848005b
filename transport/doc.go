// Package transport
// Author: momentics <momentics@gmail.com>
//
// Chain draining over sockets: gathers in-memory chain windows into
// vectored writes and pushes coalesced file spans through sendfile.
// Linux gets the zero-copy paths; other platforms report
// api.ErrNotSupported. The platform-independent Gather helper is
// usable (and tested) everywhere.
package transport

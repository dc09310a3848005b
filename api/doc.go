// Package api
// Author: momentics <momentics@gmail.com>
//
// Contract layer for hioload-buf: allocator abstraction, owner tags,
// stats DTOs and introspection interfaces shared by pool, chain and
// transport packages.
//
// All concrete implementations live in pool/, core/ and transport/;
// this package must stay dependency-light so every layer can import it.
package api

// File: transport/writer_stub.go
//go:build !linux
// +build !linux

//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Non-Linux platforms have no zero-copy drain path yet.

package transport

import (
	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/core/chain"
)

func (w *Writer) drain(in *chain.Link) (*chain.Link, error) {
	return in, api.ErrNotSupported
}

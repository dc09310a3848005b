// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import "sync"

// ObjectPool is a generic object pool.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

// SyncPool adapts sync.Pool for typed usage. The transport layer pools
// its gather vectors through it; anything transient and worker-local
// qualifies.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a SyncPool seeded with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}

var _ ObjectPool[any] = (*SyncPool[any])(nil)

// Package pool provides typed object pools for codec scratch space.
package pool

import (
	"bytes"
	"sync"
)

// Pool is a generic wrapper around sync.Pool. Items handed to Put are reset
// before they become visible to Get again.
type Pool[T any] struct {
	internal sync.Pool
	reset    func(T)
}

// New creates a new Pool with the given constructor. reset may be nil.
func New[T any](newFn func() T, reset func(T)) *Pool[T] {
	return &Pool[T]{
		internal: sync.Pool{
			New: func() any {
				return newFn()
			},
		},
		reset: reset,
	}
}

// Get retrieves an item from the pool.
func (p *Pool[T]) Get() T {
	return p.internal.Get().(T)
}

// Put resets item and returns it to the pool.
func (p *Pool[T]) Put(item T) {
	if p.reset != nil {
		p.reset(item)
	}
	p.internal.Put(item)
}

// NewBufferPool returns a pool of empty buffers with at least size bytes of capacity.
func NewBufferPool(size int) *Pool[*bytes.Buffer] {
	return New(
		func() *bytes.Buffer { return bytes.NewBuffer(make([]byte, 0, size)) },
		func(b *bytes.Buffer) { b.Reset() },
	)
}

// Package pool provides small reusable-scratch-space pools: the JSON
// reader's continuation stack, and the blob package's compression scratch
// buffers. In every case the
// pooled memory is either private bookkeeping or copied out of before
// being handed to a caller — it is never the caller-supplied codec
// buffer, which this module never owns or resizes.
package pool

import "sync"

// SlicePool is a typed freelist of zero-length, positive-capacity slices
// of T, adapted from the byte-buffer pool pattern mebo uses for its
// per-encoder scratch buffers.
type SlicePool[T any] struct {
	pool       sync.Pool
	defaultCap int
}

// NewSlicePool creates a SlicePool whose Get returns slices pre-sized to
// at least defaultCap.
func NewSlicePool[T any](defaultCap int) *SlicePool[T] {
	p := &SlicePool[T]{defaultCap: defaultCap}
	p.pool.New = func() any {
		s := make([]T, 0, defaultCap)
		return &s
	}
	return p
}

// Get returns a zero-length slice with spare capacity, either reused from
// the pool or freshly allocated.
func (p *SlicePool[T]) Get() []T {
	s := p.pool.Get().(*[]T)
	return (*s)[:0]
}

// Put returns s to the pool for reuse. Callers must not use s after
// calling Put.
func (p *SlicePool[T]) Put(s []T) {
	s = s[:0]
	p.pool.Put(&s)
}

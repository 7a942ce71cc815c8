package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlicePool_GetReturnsZeroLenWithCapacity(t *testing.T) {
	p := NewSlicePool[int](4)
	s := p.Get()
	assert.Empty(t, s)
	assert.GreaterOrEqual(t, cap(s), 4)
}

func TestSlicePool_PutResetsLength(t *testing.T) {
	p := NewSlicePool[string](2)
	s := p.Get()
	s = append(s, "a", "b")
	p.Put(s)

	reused := p.Get()
	assert.Empty(t, reused)
}

package stringview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_BytesAndString(t *testing.T) {
	v := Of([]byte("hello"))
	assert.Equal(t, "hello", v.String())
	assert.Equal(t, []byte("hello"), v.Bytes())
	assert.Equal(t, 5, v.Len())
}

func TestView_Empty(t *testing.T) {
	assert.Equal(t, 0, Empty.Len())
	assert.Equal(t, "", Empty.String())
}

func TestView_Equal(t *testing.T) {
	a := Of([]byte("abc"))
	b := Of([]byte("abc"))
	c := Of([]byte("abd"))
	d := Of([]byte("ab"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestView_EqualString(t *testing.T) {
	v := Of([]byte("key"))
	require.True(t, v.EqualString("key"))
	require.False(t, v.EqualString("Key"))
	require.False(t, v.EqualString("keys"))
}

func TestView_NoCopy(t *testing.T) {
	data := []byte("mutable")
	v := Of(data)
	data[0] = 'M'
	assert.Equal(t, "Mutable", v.String())
}

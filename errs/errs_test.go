package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_NoHandlerIsNoOp(t *testing.T) {
	SetHandler(nil)
	require.NotPanics(t, func() {
		Report(1, 2, "detail")
	})
}

func TestReport_InvokesHandler(t *testing.T) {
	var got string
	SetHandler(func(message string) { got = message })
	defer SetHandler(nil)

	Report(3, 7, "unexpected token")
	assert.Equal(t, "error: 3:7 : unexpected token", got)
}

func TestSentinels_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrCapacity, ErrUnderflow, ErrInvariant, ErrType, ErrIncomplete,
		ErrNoKey, ErrUnbalanced, ErrSyntax, ErrUnsupportedCompression,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}

package endian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLittleEndianEngine_RoundTrip(t *testing.T) {
	e := GetLittleEndianEngine()
	buf := make([]byte, 4)
	e.PutUint32(buf, 0x01020304)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
	assert.Equal(t, uint32(0x01020304), e.Uint32(buf))
}

func TestGetBigEndianEngine_RoundTrip(t *testing.T) {
	e := GetBigEndianEngine()
	buf := make([]byte, 4)
	e.PutUint32(buf, 0x01020304)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
	assert.Equal(t, uint32(0x01020304), e.Uint32(buf))
}

func TestEngines_Uint64(t *testing.T) {
	le := GetLittleEndianEngine()
	buf := le.AppendUint64(nil, 0x0102030405060708)
	assert.Equal(t, uint64(0x0102030405060708), le.Uint64(buf))
}

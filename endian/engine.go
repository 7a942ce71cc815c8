// Package endian provides the byte-order abstraction used by the cursor
// package. It combines encoding/binary's ByteOrder and AppendByteOrder
// interfaces so a single engine value supports both in-place puts and
// append-style writes.
//
// The wire format described by this module's container spec is
// little-endian, so GetLittleEndianEngine is the default everywhere; the
// engine is still threaded through every cursor constructor so a caller
// that must interoperate with a big-endian source can override it.
package endian

import "encoding/binary"

// Engine combines ByteOrder and AppendByteOrder from the standard library
// into one interface. binary.LittleEndian and binary.BigEndian both
// satisfy it already.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used by the
// canonical binary container format.
func GetLittleEndianEngine() Engine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine, provided for
// interoperability with foreign sources.
func GetBigEndianEngine() Engine {
	return binary.BigEndian
}

package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmsovetov/libdto/codec"
	"github.com/dmsovetov/libdto/errs"
	"github.com/dmsovetov/libdto/format"
)

func buildDoc(t *testing.T) []byte {
	t.Helper()
	enc := codec.NewEncoder(make([]byte, 256))
	enc.Key("name").String("ada")
	enc.Key("age").Int32(36)
	enc.Key("tags").StartSequence()
	enc.String("x")
	enc.String("y")
	enc.End()
	enc.Key("address").StartKeyValue()
	enc.Key("city").String("london")
	enc.End()
	doc, err := enc.Finish()
	require.NoError(t, err)
	return doc
}

func TestDto_ValidAndLength(t *testing.T) {
	doc := buildDoc(t)
	d := New(doc)
	assert.True(t, d.Valid())
	assert.Equal(t, int32(len(doc)), d.Length())
	assert.Equal(t, len(doc), d.Capacity())
}

func TestDto_InvalidTooShort(t *testing.T) {
	d := New([]byte{1, 2, 3})
	assert.False(t, d.Valid())
}

func TestDto_Find(t *testing.T) {
	doc := buildDoc(t)
	d := New(doc)

	it := d.Find("age")
	require.True(t, it.IsValid())
	assert.Equal(t, int32(36), it.ToInt32())

	missing := d.Find("nope")
	assert.False(t, missing.IsValid())
}

func TestDto_EntryCount(t *testing.T) {
	doc := buildDoc(t)
	d := New(doc)
	assert.Equal(t, 4, d.EntryCount())
}

func TestDto_FindDescendant(t *testing.T) {
	doc := buildDoc(t)
	d := New(doc)

	it := d.FindDescendant("address.city")
	require.True(t, it.IsValid())
	assert.Equal(t, "london", it.ToString().String())

	it2 := d.FindDescendant("tags.1")
	require.True(t, it2.IsValid())
	assert.Equal(t, "y", it2.ToString().String())

	assert.False(t, d.FindDescendant("address.missing").IsValid())
	assert.False(t, d.FindDescendant("name.x").IsValid(), "descending through a non-composite must fail")
}

func TestDto_Checksum_StableAndSensitive(t *testing.T) {
	doc := buildDoc(t)
	d1 := New(doc)
	d2 := New(doc)
	assert.Equal(t, d1.Checksum(), d2.Checksum())

	other := New(buildDoc(t))
	assert.Equal(t, d1.Checksum(), other.Checksum(), "identical content checksums equal regardless of allocation")

	mutated := append([]byte{}, doc...)
	mutated[len(mutated)-1] = 0xff
	assert.NotEqual(t, d1.Checksum(), New(mutated).Checksum())
}

func TestIterator_InitialAndExhaustedTagIsEnd(t *testing.T) {
	doc := buildDoc(t)
	it := New(doc).Iter()
	assert.Equal(t, format.TagEnd, it.Tag())

	for it.Next() {
	}
	assert.Equal(t, format.TagEnd, it.Tag())
	assert.False(t, it.IsValid())
}

func TestIterator_WrongTypeAccessorPanics(t *testing.T) {
	doc := buildDoc(t)
	it := New(doc).Find("name")
	require.True(t, it.IsValid())
	assert.PanicsWithValue(t, errs.ErrType, func() {
		it.ToBool()
	})
}

func TestIterator_ToInt32AcceptsDoubleCoercion(t *testing.T) {
	enc := codec.NewEncoder(make([]byte, 32))
	enc.Key("n").Double(7.9)
	doc, err := enc.Finish()
	require.NoError(t, err)

	it := New(doc).Find("n")
	require.True(t, it.IsValid())
	assert.Equal(t, int32(7), it.ToInt32())
}

func TestIterator_NestedSequenceWalk(t *testing.T) {
	doc := buildDoc(t)
	it := New(doc).Find("tags")
	require.True(t, it.IsValid())
	require.True(t, it.Tag().IsComposite())

	sub := it.ToDto()
	var vals []string
	si := sub.Iter()
	for si.Next() {
		vals = append(vals, si.ToString().String())
	}
	assert.Equal(t, []string{"x", "y"}, vals)
}

func TestIterator_ToDecompressedBinary_RoundTripsGenericSubtype(t *testing.T) {
	enc := codec.NewEncoder(make([]byte, 64))
	enc.Key("blob").Binary([]byte("payload"), format.BinarySubtypeGeneric)
	doc, err := enc.Finish()
	require.NoError(t, err)

	it := New(doc).Find("blob")
	require.True(t, it.IsValid())
	out, err := it.ToDecompressedBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), out)
}

func TestIterator_ToDecompressedBinary_CompressedRoundTrip(t *testing.T) {
	enc := codec.NewEncoder(make([]byte, 64), codec.WithBlobCompression(format.BinarySubtypeCompressedS2))
	_, err := enc.Key("blob").CompressedBinary([]byte("round trip me through s2"))
	require.NoError(t, err)
	doc, err := enc.Finish()
	require.NoError(t, err)

	it := New(doc).Find("blob")
	require.True(t, it.IsValid())
	assert.Equal(t, format.BinarySubtypeCompressedS2, it.ToBinary().Subtype)

	out, err := it.ToDecompressedBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte("round trip me through s2"), out)
}

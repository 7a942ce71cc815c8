package codec

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmsovetov/libdto/cursor"
	"github.com/dmsovetov/libdto/errs"
	"github.com/dmsovetov/libdto/event"
	"github.com/dmsovetov/libdto/format"
	"github.com/dmsovetov/libdto/value"
)

func buildSample(t *testing.T) []byte {
	t.Helper()
	enc := NewEncoder(make([]byte, 256))
	enc.Key("a").Int32(1)
	enc.Key("b").Bool(true)
	enc.Key("seq").StartSequence()
	enc.Double(1.5)
	enc.Double(2.5)
	enc.End()
	doc, err := enc.Finish()
	require.NoError(t, err)
	return doc
}

func TestEncoder_EmptyDocument(t *testing.T) {
	enc := NewEncoder(make([]byte, 16))
	doc, err := enc.Finish()
	require.NoError(t, err)
	assert.Len(t, doc, 5, "empty document is a 4-byte length prefix plus a terminating End byte")
	assert.Equal(t, byte(format.TagEnd), doc[4])
}

func TestEncoder_FinishWithOpenFrameFails(t *testing.T) {
	enc := NewEncoder(make([]byte, 64))
	enc.Key("a").StartKeyValue()
	_, err := enc.Finish()
	require.ErrorIs(t, err, errs.ErrIncomplete)
}

func TestEncoder_EndOnRootPanics(t *testing.T) {
	enc := NewEncoder(make([]byte, 16))
	assert.PanicsWithValue(t, errs.ErrUnbalanced, func() {
		enc.End()
	})
}

func TestEncoder_KeyOutsideObjectContextPanics(t *testing.T) {
	enc := NewEncoder(make([]byte, 32))
	enc.Key("seq").StartSequence()
	assert.PanicsWithValue(t, errs.ErrNoKey, func() {
		enc.Key("x")
	})
}

func TestEncoder_SequenceSynthesizesIndices(t *testing.T) {
	enc := NewEncoder(make([]byte, 64))
	enc.Key("seq").StartSequence()
	enc.String("zero")
	enc.String("one")
	enc.End()
	doc, err := enc.Finish()
	require.NoError(t, err)

	r := NewReader(doc)
	mustNext(t, r) // StreamStart
	seqStart, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, event.SequenceStart, seqStart.Kind)

	e0, _ := r.Next()
	assert.Equal(t, "0", e0.Key)
	e1, _ := r.Next()
	assert.Equal(t, "1", e1.Key)
}

func TestEncoder_AppendEncoderRequiresComplete(t *testing.T) {
	outer := NewEncoder(make([]byte, 64))
	sub := NewEncoder(make([]byte, 32))
	sub.Key("x").Int32(1)
	sub.Key("y").StartKeyValue()

	err := outer.AppendEncoder(sub)
	assert.ErrorIs(t, err, errs.ErrIncomplete)
}

func TestEncoder_AppendEncoderSplicesCompletedSub(t *testing.T) {
	sub := NewEncoder(make([]byte, 32))
	sub.Key("x").Int32(42)
	sub.Finish()

	outer := NewEncoder(make([]byte, 64))
	require.NoError(t, outer.Key("nested").AppendEncoder(sub))
	doc, err := outer.Finish()
	require.NoError(t, err)

	dto := NewReader(doc)
	mustNext(t, dto) // StreamStart
	nestedStart, _ := dto.Next()
	require.Equal(t, event.KeyValueStart, nestedStart.Kind)
	entry, _ := dto.Next()
	assert.Equal(t, int32(42), entry.Value.Int32)
}

func mustNext(t *testing.T, r *Reader) event.Event {
	t.Helper()
	ev, err := r.Next()
	require.NoError(t, err)
	return ev
}

func TestReader_EventSequence(t *testing.T) {
	doc := buildSample(t)
	r := NewReader(doc)

	var kinds []event.Kind
	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		kinds = append(kinds, ev.Kind)
	}

	assert.Equal(t, []event.Kind{
		event.StreamStart,
		event.Entry, event.Entry,
		event.SequenceStart, event.Entry, event.Entry, event.SequenceEnd,
		event.StreamEnd,
	}, kinds)
}

func TestReader_IOEOFAfterStreamEnd(t *testing.T) {
	enc := NewEncoder(make([]byte, 16))
	doc, err := enc.Finish()
	require.NoError(t, err)

	r := NewReader(doc)
	mustNext(t, r) // StreamStart
	end, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, event.StreamEnd, end.Kind)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestWriter_RoundTripsEncoderOutput(t *testing.T) {
	doc := buildSample(t)
	r := NewReader(doc)
	w := NewWriter(make([]byte, 256))

	for {
		ev, err := r.Next()
		require.NoError(t, err)
		_, err = w.Consume(ev)
		require.NoError(t, err)
		if ev.Kind == event.StreamEnd {
			break
		}
	}

	assert.Equal(t, doc, w.Bytes())
}

func TestWriter_UnbalancedStreamEndErrors(t *testing.T) {
	w := NewWriter(make([]byte, 16))
	_, err := w.Consume(event.Event{Kind: event.StreamEnd})
	assert.ErrorIs(t, err, errs.ErrUnbalanced)
}

func TestWriter_ErrorEventPropagates(t *testing.T) {
	w := NewWriter(make([]byte, 16))
	_, err := w.Consume(event.Event{Kind: event.Error, Message: "boom"})
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
}

func TestDecodeValue_AllLeafTags(t *testing.T) {
	enc := NewEncoder(make([]byte, 512))
	enc.Key("d").Double(1.25)
	enc.Key("s").String("hi")
	enc.Key("b").Bool(true)
	enc.Key("i32").Int32(-5)
	enc.Key("i64").Int64(-9)
	enc.Key("ts").Timestamp(99)
	enc.Key("date").Date(1000)
	enc.Key("null").Null()
	enc.Key("re").RegEx("a*", "i")
	enc.Key("uuid").UUID([16]byte{1: 1})
	enc.Key("bin").Binary([]byte{1, 2}, format.BinarySubtypeGeneric)
	doc, err := enc.Finish()
	require.NoError(t, err)

	r := NewReader(doc)
	mustNext(t, r) // StreamStart

	want := []struct {
		key string
		tag format.Tag
	}{
		{"d", format.TagDouble}, {"s", format.TagString}, {"b", format.TagBool},
		{"i32", format.TagInt32}, {"i64", format.TagInt64}, {"ts", format.TagTimestamp},
		{"date", format.TagDate}, {"null", format.TagNull}, {"re", format.TagRegEx},
		{"uuid", format.TagUUID}, {"bin", format.TagBinary},
	}
	for _, w := range want {
		ev, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, w.key, ev.Key)
		assert.Equal(t, w.tag, ev.Value.Tag)
	}
}

func TestReader_StringPayloadAdvancesToNextEntry(t *testing.T) {
	out := make([]byte, 64)
	oc := NewEncoder(out)
	oc.Key("s").String("hello")
	oc.Key("next").Bool(true)
	doc, err := oc.Finish()
	require.NoError(t, err)

	r := NewReader(doc)
	mustNext(t, r)
	ev, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, "hello", ev.Value.String.String())

	next, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "next", next.Key)
	assert.True(t, next.Value.Bool)
}

func TestEncodeValue_RoundTripsEveryTag(t *testing.T) {
	values := []value.Value{
		value.NewDouble(2.25),
		value.NewStringBytes([]byte("round")),
		value.NewBool(false),
		value.NewInt32(5),
		value.NewInt64(-5),
		value.NewTimestamp(1),
		value.NewDate(2),
		value.Null(),
		value.NewBinary([]byte{9, 9}, format.BinarySubtypeGeneric),
	}
	for _, v := range values {
		oc := cursor.NewOutputCursor(make([]byte, 64))
		EncodeValue(oc, v)
		ic := cursor.NewInputCursor(oc.Written())
		got := DecodeValue(v.Tag, ic)
		assert.Equal(t, v, got)
	}
}

package drax

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reloadTag encodes a tag payload and decodes it back through the public
// entry points, verifying SizeTag against the bytes actually produced.
func reloadTag(t *testing.T, tag Tag) Tag {
	t.Helper()
	var buf bytes.Buffer
	w, _ := NewWriter(&buf)
	require.NoError(t, WriteTag(w, tag))
	require.Equal(t, SizeTag(tag), buf.Len(), "SizeTag must match the encoded length")

	r, _ := NewReader(bytes.NewReader(buf.Bytes()))
	decoded, err := LoadTag(r, tag.Kind(), NewAccountant(0))
	require.NoError(t, err)
	return decoded
}

func TestTagRoundTripAllKinds(t *testing.T) {
	cases := []struct {
		name string
		tag  Tag
	}{
		{"End", TagEnd{}},
		{"Byte", TagByte(0xFE)},
		{"Short", TagShort(0xBBCC)},
		{"Int", TagInt(-13)},
		{"Long", TagLong(1 << 40)},
		{"Float", TagFloat(1.5)},
		{"Double", TagDouble(-2.25)},
		{"ByteArray", TagByteArray{1, 2, 3}},
		{"String", TagString("hello")},
		{"List", TagList{ElemKind: KindShort, Items: []Tag{TagShort(1), TagShort(2)}}},
		{"Compound", TagCompound{
			{Name: "a", Value: TagByte(1)},
			{Name: "b", Value: TagString("x")},
		}},
		{"IntArray", TagIntArray{-1, 0, 1}},
		{"LongArray", TagLongArray{1 << 33, -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.tag, reloadTag(t, tc.tag))
		})
	}
}

func TestTagWireFormat(t *testing.T) {
	t.Run("EmptyCompound", func(t *testing.T) {
		var buf bytes.Buffer
		w, _ := NewWriter(&buf)
		require.NoError(t, WriteTag(w, TagCompound{}))
		assert.Equal(t, []byte{0x00}, buf.Bytes(), "an empty compound is just its terminator")
		assert.Equal(t, 1, SizeTag(TagCompound{}))
	})

	t.Run("CompoundEntry", func(t *testing.T) {
		var buf bytes.Buffer
		w, _ := NewWriter(&buf)
		require.NoError(t, WriteTag(w, TagCompound{{Name: "x", Value: TagByte(5)}}))
		expected := []byte{
			0x01,           // child kind
			0x00, 0x01, 'x', // name
			0x05, // payload
			0x00, // terminator
		}
		assert.Equal(t, expected, buf.Bytes())
	})

	t.Run("ListOfShorts", func(t *testing.T) {
		var buf bytes.Buffer
		w, _ := NewWriter(&buf)
		list := TagList{ElemKind: KindShort, Items: []Tag{TagShort(0x0102), TagShort(0x0304)}}
		require.NoError(t, WriteTag(w, list))
		expected := []byte{
			0x02,                   // element kind
			0x00, 0x00, 0x00, 0x02, // count
			0x01, 0x02, // elements, no per-element kind byte
			0x03, 0x04,
		}
		assert.Equal(t, expected, buf.Bytes())
	})

	t.Run("SupplementaryName", func(t *testing.T) {
		tag := TagCompound{{Name: "\U0001D11E", Value: TagByte(1)}}
		assert.Equal(t, tag, reloadTag(t, tag))
	})

	t.Run("NulInString", func(t *testing.T) {
		tag := TagString("a\x00b")
		assert.Equal(t, 2+4, SizeTag(tag), "NUL occupies two bytes on the wire")
		assert.Equal(t, tag, reloadTag(t, tag))
	})
}

// nestedListWire builds the payload of a list nested to the given number
// of levels, each level holding exactly one child list.
func nestedListWire(levels int) []byte {
	var buf []byte
	for i := 0; i < levels-1; i++ {
		buf = append(buf, byte(KindList), 0, 0, 0, 1)
	}
	return append(buf, byte(KindEnd), 0, 0, 0, 0)
}

func TestTagDepthGuard(t *testing.T) {
	t.Run("AtLimit", func(t *testing.T) {
		r, _ := NewReader(bytes.NewReader(nestedListWire(512)))
		_, err := LoadTag(r, KindList, NewAccountant(0))
		require.NoError(t, err)
	})

	t.Run("PastLimit", func(t *testing.T) {
		r, _ := NewReader(bytes.NewReader(nestedListWire(513)))
		_, err := LoadTag(r, KindList, NewAccountant(0))
		assert.ErrorIs(t, err, ErrTagTooComplex)
	})
}

func TestTagAccountant(t *testing.T) {
	t.Run("ZeroLimitIsUnlimited", func(t *testing.T) {
		acc := NewAccountant(0)
		require.NoError(t, acc.Account(^uint64(0)))
		require.NoError(t, acc.Account(^uint64(0)))
	})

	t.Run("Overflow", func(t *testing.T) {
		acc := NewAccountant(^uint64(0))
		require.NoError(t, acc.Account(^uint64(0)))
		assert.ErrorIs(t, acc.Account(1), ErrAccountantOverflow)
	})

	t.Run("BudgetExceeded", func(t *testing.T) {
		// {"x": Byte(5)} weighs 48 for the compound, 28 before the key,
		// 1 for the key itself, 9 for the child, 36 after it: 122 total.
		var buf bytes.Buffer
		w, _ := NewWriter(&buf)
		require.NoError(t, WriteTag(w, TagCompound{{Name: "x", Value: TagByte(5)}}))

		r, _ := NewReader(bytes.NewReader(buf.Bytes()))
		_, err := LoadTag(r, KindCompound, NewAccountant(122))
		require.NoError(t, err)

		r, _ = NewReader(bytes.NewReader(buf.Bytes()))
		_, err = LoadTag(r, KindCompound, NewAccountant(121))
		var be *BudgetError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, uint64(121), be.Limit)
	})
}

func TestTagMalformedInput(t *testing.T) {
	t.Run("UnknownKind", func(t *testing.T) {
		r, _ := NewReader(bytes.NewReader(nil))
		_, err := LoadTag(r, TagKind(13), NewAccountant(0))
		var ike *InvalidTagKindError
		require.ErrorAs(t, err, &ike)
		assert.Equal(t, byte(13), ike.Kind)
	})

	t.Run("NegativeArrayCount", func(t *testing.T) {
		r, _ := NewReader(bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF}))
		_, err := LoadTag(r, KindByteArray, NewAccountant(0))
		assert.ErrorIs(t, err, ErrNegativeLength)
	})

	t.Run("TruncatedCompound", func(t *testing.T) {
		// Child kind byte but no name or terminator behind it.
		r, _ := NewReader(bytes.NewReader([]byte{0x01}))
		_, err := LoadTag(r, KindCompound, NewAccountant(0))
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("CompoundMissingTerminator", func(t *testing.T) {
		// One complete entry, then the stream ends where the terminator
		// or the next entry's kind byte belongs.
		r, _ := NewReader(bytes.NewReader([]byte{0x01, 0x00, 0x01, 'x', 0x05}))
		_, err := LoadTag(r, KindCompound, NewAccountant(0))
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("TruncatedList", func(t *testing.T) {
		// The list's kind byte was consumed by its container; an empty
		// stream here is mid-value, not a clean end of input.
		r, _ := NewReader(bytes.NewReader(nil))
		_, err := LoadTag(r, KindList, NewAccountant(0))
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("TruncatedBytePayload", func(t *testing.T) {
		r, _ := NewReader(bytes.NewReader(nil))
		_, err := LoadTag(r, KindByte, NewAccountant(0))
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestCompoundDocument(t *testing.T) {
	var ctx struct{}
	d := CompoundDocument[struct{}]{}

	t.Run("Present", func(t *testing.T) {
		tag := TagCompound{{Name: "hp", Value: TagInt(20)}}
		wire, err := Marshal[struct{}, Tag](d, tag, &ctx)
		require.NoError(t, err)
		assert.Equal(t, byte(KindCompound), wire[0])
		assert.Equal(t, []byte{0, 0}, wire[1:3], "the root name is always empty")

		decoded, err := Unmarshal[struct{}, Tag](d, wire, &ctx)
		require.NoError(t, err)
		assert.Equal(t, Tag(tag), decoded)
	})

	t.Run("Absent", func(t *testing.T) {
		wire, err := Marshal[struct{}, Tag](d, nil, &ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte{0}, wire)

		decoded, err := Unmarshal[struct{}, Tag](d, wire, &ctx)
		require.NoError(t, err)
		assert.Nil(t, decoded)
	})

	t.Run("SizeReports", func(t *testing.T) {
		s, err := d.Size(nil, &ctx)
		require.NoError(t, err)
		assert.True(t, s.IsConstant())
		assert.Equal(t, 1, s.Bytes())

		s, err = d.Size(TagCompound{}, &ctx)
		require.NoError(t, err)
		assert.False(t, s.IsConstant())
		assert.Equal(t, 4, s.Bytes())
	})

	t.Run("WrongHeaderKind", func(t *testing.T) {
		_, err := Unmarshal[struct{}, Tag](d, []byte{0x05}, &ctx)
		var ike *InvalidTagKindError
		require.ErrorAs(t, err, &ike)
		assert.Equal(t, byte(5), ike.Kind)
	})

	t.Run("BudgetWired", func(t *testing.T) {
		limited := CompoundDocument[struct{}]{Limit: 10}
		tag := TagCompound{{Name: "x", Value: TagByte(5)}}
		wire, err := Marshal[struct{}, Tag](CompoundDocument[struct{}]{}, tag, &ctx)
		require.NoError(t, err)

		_, err = Unmarshal[struct{}, Tag](limited, wire, &ctx)
		var be *BudgetError
		assert.ErrorAs(t, err, &be)
	})
}

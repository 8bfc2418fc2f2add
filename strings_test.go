package drax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringDelegate(t *testing.T) {
	var ctx struct{}
	d := String[struct{}]{}

	wire, err := Marshal[struct{}, string](d, "hello", &ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{5, 'h', 'e', 'l', 'l', 'o'}, wire)

	decoded, err := Unmarshal[struct{}, string](d, wire, &ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello", decoded)

	t.Run("Empty", func(t *testing.T) {
		wire, err := Marshal[struct{}, string](d, "", &ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte{0}, wire)
	})

	t.Run("Multibyte", func(t *testing.T) {
		wire, err := Marshal[struct{}, string](d, "héllo", &ctx)
		require.NoError(t, err)
		assert.Equal(t, byte(6), wire[0], "the prefix counts bytes, not characters")

		decoded, err := Unmarshal[struct{}, string](d, wire, &ctx)
		require.NoError(t, err)
		assert.Equal(t, "héllo", decoded)
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		_, err := Unmarshal[struct{}, string](d, []byte{2, 0xFF, 0xFE}, &ctx)
		assert.ErrorIs(t, err, ErrInvalidUTF8)
	})

	t.Run("NegativeCount", func(t *testing.T) {
		_, err := Unmarshal[struct{}, string](d, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}, &ctx)
		assert.ErrorIs(t, err, ErrNegativeLength)
	})
}

func TestLimitedStringDelegate(t *testing.T) {
	var ctx struct{}
	d := LimitedString[struct{}]{Limit: 10}

	t.Run("DecodeOverLimit", func(t *testing.T) {
		// Declared length 11 with no payload behind it: the check fires on
		// the prefix alone, before any payload byte is read.
		r, _ := NewReader(NewBytesReader([]byte{11}))
		_, err := d.Decode(&ctx, r)
		var le *LimitError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, int32(10), le.Limit)
		assert.Equal(t, int32(11), le.Actual)
		assert.Equal(t, "decoding string", le.Op)
		assert.EqualValues(t, 1, r.Count(), "only the prefix may be consumed")
	})

	t.Run("EncodeOverLimit", func(t *testing.T) {
		w := mustWriter(t)
		err := d.Encode("elevenchars", &ctx, w)
		var le *LimitError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, int32(11), le.Actual)
		assert.Equal(t, "encoding string", le.Op)
		assert.Zero(t, w.Count())
	})

	t.Run("AtLimit", func(t *testing.T) {
		wire, err := Marshal[struct{}, string](d, "exactlyten", &ctx)
		require.NoError(t, err)
		decoded, err := Unmarshal[struct{}, string](d, wire, &ctx)
		require.NoError(t, err)
		assert.Equal(t, "exactlyten", decoded)
	})
}

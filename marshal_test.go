package drax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lyingComponent reports one byte more than it writes.
type lyingComponent struct{}

func (lyingComponent) Decode(ctx *struct{}, r *Reader) (uint8, error) {
	var v uint8
	r.ReadUint8(&v)
	return v, r.Err()
}

func (lyingComponent) Encode(value uint8, ctx *struct{}, w *Writer) error {
	w.WriteUint8(value)
	return w.Err()
}

func (lyingComponent) Size(uint8, *struct{}) (Size, error) {
	return Constant(2), nil
}

func TestMarshalRoundTrip(t *testing.T) {
	var ctx struct{}

	wire, err := Marshal[struct{}, int32](Int32[struct{}]{}, 7, &ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 7}, wire)

	v, err := Unmarshal[struct{}, int32](Int32[struct{}]{}, wire, &ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)
}

func TestMarshalDetectsSizeMismatch(t *testing.T) {
	var ctx struct{}
	_, err := Marshal[struct{}, uint8](lyingComponent{}, 5, &ctx)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

package drax

import "golang.org/x/exp/constraints"

// Variable-length integers are encoded 7 bits per byte, least-significant
// bits first, with the high bit of each byte flagging continuation. A
// malicious stream can therefore stall a decoder with endless continuation
// bytes; decoding aborts once the bit offset reaches a per-width ceiling
// (35 bits for 32-bit numbers, 70 for 64-bit), bounding worst-case input
// to a handful of bytes.
const (
	varIntBitLimit  = 35
	varLongBitLimit = 70
)

// VarIntDecoder incrementally decodes a variable-length 32-bit integer.
// It consumes exactly one byte per Feed call and keeps its accumulator and
// bit offset between calls, so a caller that only receives a byte per
// scheduling turn can resume mid-number without losing state.
//
// The zero value is ready to use.
type VarIntDecoder struct {
	value  uint32
	offset uint32
}

// Feed consumes one byte. When the terminating byte has been seen it
// returns the decoded value with done set. Feeding past the bit ceiling
// returns ErrVarNumTooLarge.
func (d *VarIntDecoder) Feed(b byte) (value int32, done bool, err error) {
	if d.offset >= varIntBitLimit {
		return 0, false, ErrVarNumTooLarge
	}
	d.value |= uint32(b&0x7F) << d.offset
	d.offset += 7
	if b&0x80 == 0 {
		return int32(d.value), true, nil
	}
	return 0, false, nil
}

// Reset makes the decoder ready for a new number.
func (d *VarIntDecoder) Reset() { *d = VarIntDecoder{} }

func (d *VarIntDecoder) started() bool { return d.offset > 0 }

// VarLongDecoder is the 64-bit counterpart of VarIntDecoder.
//
// The zero value is ready to use.
type VarLongDecoder struct {
	value  uint64
	offset uint32
}

// Feed consumes one byte. See VarIntDecoder.Feed.
func (d *VarLongDecoder) Feed(b byte) (value int64, done bool, err error) {
	if d.offset >= varLongBitLimit {
		return 0, false, ErrVarNumTooLarge
	}
	d.value |= uint64(b&0x7F) << d.offset
	d.offset += 7
	if b&0x80 == 0 {
		return int64(d.value), true, nil
	}
	return 0, false, nil
}

// Reset makes the decoder ready for a new number.
func (d *VarLongDecoder) Reset() { *d = VarLongDecoder{} }

func (d *VarLongDecoder) started() bool { return d.offset > 0 }

func sizeVarNum[U constraints.Unsigned](u U) int {
	n := 1
	for u >= 0x80 {
		u >>= 7
		n++
	}
	return n
}

// SizeVarInt32 returns the encoded byte length of a variable-length 32-bit
// integer. A zero value still occupies one byte.
func SizeVarInt32(v int32) int { return sizeVarNum(uint32(v)) }

// SizeVarInt64 returns the encoded byte length of a variable-length 64-bit
// integer.
func SizeVarInt64(v int64) int { return sizeVarNum(uint64(v)) }

// VarInt encodes an int32 using the smallest possible number of bytes.
type VarInt[C any] struct{}

var _ Component[struct{}, int32] = VarInt[struct{}]{}

func (VarInt[C]) Decode(ctx *C, r *Reader) (int32, error) {
	var v int32
	r.ReadVarInt32(&v)
	return v, r.Err()
}

func (VarInt[C]) Encode(value int32, ctx *C, w *Writer) error {
	w.WriteVarInt32(value)
	return w.Err()
}

func (VarInt[C]) Size(value int32, ctx *C) (Size, error) {
	return Dynamic(SizeVarInt32(value)), nil
}

// VarLong encodes an int64 using the smallest possible number of bytes.
type VarLong[C any] struct{}

var _ Component[struct{}, int64] = VarLong[struct{}]{}

func (VarLong[C]) Decode(ctx *C, r *Reader) (int64, error) {
	var v int64
	r.ReadVarInt64(&v)
	return v, r.Err()
}

func (VarLong[C]) Encode(value int64, ctx *C, w *Writer) error {
	w.WriteVarInt64(value)
	return w.Err()
}

func (VarLong[C]) Size(value int64, ctx *C) (Size, error) {
	return Dynamic(SizeVarInt64(value)), nil
}

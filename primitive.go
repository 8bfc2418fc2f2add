package drax

import "github.com/google/uuid"

// Fixed-width numerics encode as big-endian byte sequences of their natural
// width; every delegate here reports a constant size.

type Uint8[C any] struct{}

func (Uint8[C]) Decode(ctx *C, r *Reader) (uint8, error) {
	var v uint8
	r.ReadUint8(&v)
	return v, r.Err()
}
func (Uint8[C]) Encode(value uint8, ctx *C, w *Writer) error {
	w.WriteUint8(value)
	return w.Err()
}
func (Uint8[C]) Size(uint8, *C) (Size, error) { return Constant(1), nil }

type Uint16[C any] struct{}

func (Uint16[C]) Decode(ctx *C, r *Reader) (uint16, error) {
	var v uint16
	r.ReadUint16(&v)
	return v, r.Err()
}
func (Uint16[C]) Encode(value uint16, ctx *C, w *Writer) error {
	w.WriteUint16(value)
	return w.Err()
}
func (Uint16[C]) Size(uint16, *C) (Size, error) { return Constant(2), nil }

type Uint32[C any] struct{}

func (Uint32[C]) Decode(ctx *C, r *Reader) (uint32, error) {
	var v uint32
	r.ReadUint32(&v)
	return v, r.Err()
}
func (Uint32[C]) Encode(value uint32, ctx *C, w *Writer) error {
	w.WriteUint32(value)
	return w.Err()
}
func (Uint32[C]) Size(uint32, *C) (Size, error) { return Constant(4), nil }

type Uint64[C any] struct{}

func (Uint64[C]) Decode(ctx *C, r *Reader) (uint64, error) {
	var v uint64
	r.ReadUint64(&v)
	return v, r.Err()
}
func (Uint64[C]) Encode(value uint64, ctx *C, w *Writer) error {
	w.WriteUint64(value)
	return w.Err()
}
func (Uint64[C]) Size(uint64, *C) (Size, error) { return Constant(8), nil }

type Int8[C any] struct{}

func (Int8[C]) Decode(ctx *C, r *Reader) (int8, error) {
	var v int8
	r.ReadInt8(&v)
	return v, r.Err()
}
func (Int8[C]) Encode(value int8, ctx *C, w *Writer) error {
	w.WriteInt8(value)
	return w.Err()
}
func (Int8[C]) Size(int8, *C) (Size, error) { return Constant(1), nil }

type Int16[C any] struct{}

func (Int16[C]) Decode(ctx *C, r *Reader) (int16, error) {
	var v int16
	r.ReadInt16(&v)
	return v, r.Err()
}
func (Int16[C]) Encode(value int16, ctx *C, w *Writer) error {
	w.WriteInt16(value)
	return w.Err()
}
func (Int16[C]) Size(int16, *C) (Size, error) { return Constant(2), nil }

type Int32[C any] struct{}

func (Int32[C]) Decode(ctx *C, r *Reader) (int32, error) {
	var v int32
	r.ReadInt32(&v)
	return v, r.Err()
}
func (Int32[C]) Encode(value int32, ctx *C, w *Writer) error {
	w.WriteInt32(value)
	return w.Err()
}
func (Int32[C]) Size(int32, *C) (Size, error) { return Constant(4), nil }

type Int64[C any] struct{}

func (Int64[C]) Decode(ctx *C, r *Reader) (int64, error) {
	var v int64
	r.ReadInt64(&v)
	return v, r.Err()
}
func (Int64[C]) Encode(value int64, ctx *C, w *Writer) error {
	w.WriteInt64(value)
	return w.Err()
}
func (Int64[C]) Size(int64, *C) (Size, error) { return Constant(8), nil }

type Float32[C any] struct{}

func (Float32[C]) Decode(ctx *C, r *Reader) (float32, error) {
	var v float32
	r.ReadFloat32(&v)
	return v, r.Err()
}
func (Float32[C]) Encode(value float32, ctx *C, w *Writer) error {
	w.WriteFloat32(value)
	return w.Err()
}
func (Float32[C]) Size(float32, *C) (Size, error) { return Constant(4), nil }

type Float64[C any] struct{}

func (Float64[C]) Decode(ctx *C, r *Reader) (float64, error) {
	var v float64
	r.ReadFloat64(&v)
	return v, r.Err()
}
func (Float64[C]) Encode(value float64, ctx *C, w *Writer) error {
	w.WriteFloat64(value)
	return w.Err()
}
func (Float64[C]) Size(float64, *C) (Size, error) { return Constant(8), nil }

// Bool encodes as a single byte. Only 0x01 is ever written for true, but
// any nonzero decoded byte reads back as true.
type Bool[C any] struct{}

func (Bool[C]) Decode(ctx *C, r *Reader) (bool, error) {
	var v bool
	r.ReadBool(&v)
	return v, r.Err()
}
func (Bool[C]) Encode(value bool, ctx *C, w *Writer) error {
	w.WriteBool(value)
	return w.Err()
}
func (Bool[C]) Size(bool, *C) (Size, error) { return Constant(1), nil }

// Unit encodes to zero bytes.
type Unit[C any] struct{}

func (Unit[C]) Decode(ctx *C, r *Reader) (struct{}, error) {
	return struct{}{}, r.Err()
}
func (Unit[C]) Encode(struct{}, *C, *Writer) error { return nil }
func (Unit[C]) Size(struct{}, *C) (Size, error)    { return Constant(0), nil }

// UUID encodes a 128-bit unique identifier as 16 raw bytes.
type UUID[C any] struct{}

var _ Component[struct{}, uuid.UUID] = UUID[struct{}]{}

func (UUID[C]) Decode(ctx *C, r *Reader) (uuid.UUID, error) {
	buf := r.ReadBytes(16)
	if err := r.Err(); err != nil {
		return uuid.Nil, err
	}
	return uuid.FromBytes(buf)
}

func (UUID[C]) Encode(value uuid.UUID, ctx *C, w *Writer) error {
	w.WriteBytes(value[:])
	return w.Err()
}

func (UUID[C]) Size(uuid.UUID, *C) (Size, error) { return Constant(16), nil }

package drax

// Vec encodes an ordered sequence as a variable-length element count
// followed by the elements in order.
//
// Decoding pre-allocates capacity equal to the declared count, so an
// adversarial peer can force a large allocation through a plain Vec; use
// LimitedVec on untrusted streams.
type Vec[C, T any] struct {
	Elem Component[C, T]
}

var _ Component[struct{}, []int32] = Vec[struct{}, int32]{}

func (d Vec[C, T]) Decode(ctx *C, r *Reader) ([]T, error) {
	var count int32
	r.ReadVarInt32(&count)
	if err := r.Err(); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, ErrNegativeLength
	}
	out := make([]T, 0, count)
	for i := int32(0); i < count; i++ {
		v, err := d.Elem.Decode(ctx, r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (d Vec[C, T]) Encode(value []T, ctx *C, w *Writer) error {
	w.WriteVarInt32(int32(len(value)))
	for i := range value {
		if err := d.Elem.Encode(value[i], ctx, w); err != nil {
			return err
		}
	}
	return w.Err()
}

func (d Vec[C, T]) Size(value []T, ctx *C) (Size, error) {
	prefix := SizeVarInt32(int32(len(value)))
	total := prefix
	for i := range value {
		s, err := d.Elem.Size(value[i], ctx)
		if err != nil {
			return Size{}, err
		}
		if s.IsConstant() {
			// Homogeneous constant elements: no need to size the rest.
			return Dynamic(s.Bytes()*len(value) + prefix), nil
		}
		total += s.Bytes()
	}
	return Dynamic(total), nil
}

// LimitedVec is a Vec whose element count is bounded to Limit. The count is
// compared against the limit before any element-level work happens, so an
// oversized declared count is rejected without performing the allocation.
type LimitedVec[C, T any] struct {
	Elem  Component[C, T]
	Limit int32
}

var _ Component[struct{}, []int32] = LimitedVec[struct{}, int32]{}

func (d LimitedVec[C, T]) Decode(ctx *C, r *Reader) ([]T, error) {
	var count int32
	r.ReadVarInt32(&count)
	if err := r.Err(); err != nil {
		return nil, err
	}
	if count > d.Limit {
		return nil, limitExceeded(d.Limit, count, "decoding vec")
	}
	if count < 0 {
		return nil, ErrNegativeLength
	}
	out := make([]T, 0, count)
	for i := int32(0); i < count; i++ {
		v, err := d.Elem.Decode(ctx, r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (d LimitedVec[C, T]) Encode(value []T, ctx *C, w *Writer) error {
	if count := int32(len(value)); count > d.Limit {
		return limitExceeded(d.Limit, count, "encoding vec")
	}
	return Vec[C, T]{Elem: d.Elem}.Encode(value, ctx, w)
}

func (d LimitedVec[C, T]) Size(value []T, ctx *C) (Size, error) {
	return Vec[C, T]{Elem: d.Elem}.Size(value, ctx)
}

// VecU8 encodes a byte slice as a variable-length byte count followed by
// the raw bytes. The count doubles as the remaining bytes to read, which
// lets both directions move whole buffers at once.
type VecU8[C any] struct{}

var _ Component[struct{}, []byte] = VecU8[struct{}]{}

func (VecU8[C]) Decode(ctx *C, r *Reader) ([]byte, error) {
	return readByteBlob(r)
}

func (VecU8[C]) Encode(value []byte, ctx *C, w *Writer) error {
	return writeByteBlob(w, value)
}

func (VecU8[C]) Size(value []byte, ctx *C) (Size, error) {
	return Dynamic(len(value) + SizeVarInt32(int32(len(value)))), nil
}

func readByteBlob(r *Reader) ([]byte, error) {
	var count int32
	r.ReadVarInt32(&count)
	if err := r.Err(); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, ErrNegativeLength
	}
	buf := r.ReadBytes(int(count))
	if err := r.Err(); err != nil {
		return nil, err
	}
	if buf == nil {
		buf = []byte{}
	}
	return buf, nil
}

func writeByteBlob(w *Writer, value []byte) error {
	w.WriteVarInt32(int32(len(value)))
	w.WriteBytes(value)
	return w.Err()
}

// ByteDrain consumes every remaining byte in the stream with no length
// prefix. Only useful where the surrounding framing already bounds the
// stream, e.g. inside a fixed-size packet.
type ByteDrain[C any] struct{}

var _ Component[struct{}, []byte] = ByteDrain[struct{}]{}

func (ByteDrain[C]) Decode(ctx *C, r *Reader) ([]byte, error) {
	buf := r.ReadAll()
	if err := r.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

func (ByteDrain[C]) Encode(value []byte, ctx *C, w *Writer) error {
	w.WriteBytes(value)
	return w.Err()
}

func (ByteDrain[C]) Size(value []byte, ctx *C) (Size, error) {
	return Dynamic(len(value)), nil
}

// Array encodes exactly Count elements with no length prefix. When the
// element size is constant the whole array sizes to a constant too.
type Array[C, T any] struct {
	Elem  Component[C, T]
	Count int
}

var _ Component[struct{}, []int32] = Array[struct{}, int32]{}

func (d Array[C, T]) Decode(ctx *C, r *Reader) ([]T, error) {
	out := make([]T, 0, d.Count)
	for i := 0; i < d.Count; i++ {
		v, err := d.Elem.Decode(ctx, r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (d Array[C, T]) Encode(value []T, ctx *C, w *Writer) error {
	if len(value) != d.Count {
		return ErrLengthMismatch
	}
	for i := range value {
		if err := d.Elem.Encode(value[i], ctx, w); err != nil {
			return err
		}
	}
	return w.Err()
}

func (d Array[C, T]) Size(value []T, ctx *C) (Size, error) {
	if len(value) != d.Count {
		return Size{}, ErrLengthMismatch
	}
	total := Constant(0)
	for i := range value {
		s, err := d.Elem.Size(value[i], ctx)
		if err != nil {
			return Size{}, err
		}
		if s.IsConstant() {
			return Constant(s.Bytes() * d.Count), nil
		}
		total = total.Add(s)
	}
	// An empty array never saw a dynamic element, so the zero stays
	// constant through the algebra.
	return total, nil
}

// RawBytes encodes exactly Count raw bytes with no length prefix.
type RawBytes[C any] struct {
	Count int
}

var _ Component[struct{}, []byte] = RawBytes[struct{}]{}

func (d RawBytes[C]) Decode(ctx *C, r *Reader) ([]byte, error) {
	buf := r.ReadBytes(d.Count)
	if err := r.Err(); err != nil {
		return nil, err
	}
	if buf == nil {
		buf = []byte{}
	}
	return buf, nil
}

func (d RawBytes[C]) Encode(value []byte, ctx *C, w *Writer) error {
	if len(value) != d.Count {
		return ErrLengthMismatch
	}
	w.WriteBytes(value)
	return w.Err()
}

func (d RawBytes[C]) Size(value []byte, ctx *C) (Size, error) {
	if len(value) != d.Count {
		return Size{}, ErrLengthMismatch
	}
	return Constant(d.Count), nil
}

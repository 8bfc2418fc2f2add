package drax

import "io"

// Framed bounds an inner component to an explicit byte-length frame: a
// varint byte count, then exactly that many bytes of inner encoding. The
// frame is the unit protocols built on this package ship over a socket.
//
// Decoding wraps the stream in an io.LimitedReader so the inner component
// cannot read past its frame, and drains whatever the inner decode leaves
// unread, so the stream always resumes at the next frame boundary.
type Framed[C, T any] struct {
	Elem Component[C, T]
}

var _ Component[struct{}, int32] = Framed[struct{}, int32]{}

func (d Framed[C, T]) Decode(ctx *C, r *Reader) (T, error) {
	var zero T
	var count int32
	r.ReadVarInt32(&count)
	if err := r.Err(); err != nil {
		return zero, err
	}
	if count < 0 {
		return zero, ErrNegativeLength
	}
	lr := &io.LimitedReader{R: r, N: int64(count)}
	inner, err := NewReader(lr)
	if err != nil {
		return zero, err
	}
	v, err := d.Elem.Decode(ctx, inner)
	if err != nil {
		return zero, err
	}
	if lr.N > 0 {
		if _, err := io.Copy(io.Discard, lr); err != nil {
			return zero, err
		}
	}
	return v, nil
}

func (d Framed[C, T]) Encode(value T, ctx *C, w *Writer) error {
	// Marshal also cross-checks the inner Size report against the bytes
	// actually produced, so a frame never carries a lying length prefix.
	blob, err := Marshal(d.Elem, value, ctx)
	if err != nil {
		return err
	}
	return writeByteBlob(w, blob)
}

func (d Framed[C, T]) Size(value T, ctx *C) (Size, error) {
	inner, err := d.Elem.Size(value, ctx)
	if err != nil {
		return Size{}, err
	}
	prefix := SizeVarInt32(int32(inner.Bytes()))
	if inner.IsConstant() {
		return Constant(prefix + inner.Bytes()), nil
	}
	return Dynamic(prefix + inner.Bytes()), nil
}

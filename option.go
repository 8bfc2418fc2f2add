package drax

// Maybe encodes an optional value as a single presence byte (0x00 absent,
// 0x01 present) followed by the inner encoding when present. A nil pointer
// is the absent value.
//
// Decoding a zero presence byte yields nil without touching any trailing
// bytes; decoding any nonzero presence byte delegates to the inner
// component.
type Maybe[C, T any] struct {
	Elem Component[C, T]
}

var _ Component[struct{}, *int32] = Maybe[struct{}, int32]{}

func (d Maybe[C, T]) Decode(ctx *C, r *Reader) (*T, error) {
	b, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, nil
	}
	v, err := d.Elem.Decode(ctx, r)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (d Maybe[C, T]) Encode(value *T, ctx *C, w *Writer) error {
	if value == nil {
		return w.WriteByte(0)
	}
	if err := w.WriteByte(1); err != nil {
		return err
	}
	return d.Elem.Encode(*value, ctx, w)
}

func (d Maybe[C, T]) Size(value *T, ctx *C) (Size, error) {
	if value == nil {
		return Constant(1), nil
	}
	inner, err := d.Elem.Size(*value, ctx)
	if err != nil {
		return Size{}, err
	}
	return Constant(1).Add(inner), nil
}

package drax

// Pointer forwards every operation to the inner component, producing and
// consuming values through an indirection. It adds no wire format of its
// own; it exists so recursive or large composite declarations can hold
// their value behind a pointer without losing the contract. Go draws no
// line between exclusively-owned and shared indirection, so one delegate
// covers both.
type Pointer[C, T any] struct {
	Elem Component[C, T]
}

var _ Component[struct{}, *int32] = Pointer[struct{}, int32]{}

func (d Pointer[C, T]) Decode(ctx *C, r *Reader) (*T, error) {
	v, err := d.Elem.Decode(ctx, r)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (d Pointer[C, T]) Encode(value *T, ctx *C, w *Writer) error {
	if value == nil {
		return ErrNilValue
	}
	return d.Elem.Encode(*value, ctx, w)
}

func (d Pointer[C, T]) Size(value *T, ctx *C) (Size, error) {
	if value == nil {
		return Size{}, ErrNilValue
	}
	return d.Elem.Size(*value, ctx)
}

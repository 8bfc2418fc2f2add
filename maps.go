package drax

// Map encodes a mapping with the same framing as Vec, but over key/value
// pairs: a variable-length entry count followed by alternating key and
// value encodings. Entry order on the wire is not significant.
//
// A duplicate decoded key is not an error: the later entry wins, matching
// the permissive behavior protocols built on this framing rely on.
type Map[C any, K comparable, V any] struct {
	Key Component[C, K]
	Val Component[C, V]
}

var _ Component[struct{}, map[int32]int32] = Map[struct{}, int32, int32]{}

func (d Map[C, K, V]) Decode(ctx *C, r *Reader) (map[K]V, error) {
	var count int32
	r.ReadVarInt32(&count)
	if err := r.Err(); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, ErrNegativeLength
	}
	out := make(map[K]V, count)
	for i := int32(0); i < count; i++ {
		k, err := d.Key.Decode(ctx, r)
		if err != nil {
			return nil, err
		}
		v, err := d.Val.Decode(ctx, r)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

func (d Map[C, K, V]) Encode(value map[K]V, ctx *C, w *Writer) error {
	w.WriteVarInt32(int32(len(value)))
	for k, v := range value {
		if err := d.Key.Encode(k, ctx, w); err != nil {
			return err
		}
		if err := d.Val.Encode(v, ctx, w); err != nil {
			return err
		}
	}
	return w.Err()
}

func (d Map[C, K, V]) Size(value map[K]V, ctx *C) (Size, error) {
	size := Constant(0).Add(Dynamic(SizeVarInt32(int32(len(value)))))
	for k, v := range value {
		ks, err := d.Key.Size(k, ctx)
		if err != nil {
			return Size{}, err
		}
		vs, err := d.Val.Size(v, ctx)
		if err != nil {
			return Size{}, err
		}
		size = size.Add(ks).Add(vs)
	}
	return size, nil
}

// LimitedMap is a Map whose entry count is bounded to Limit, checked before
// any entry-level work on both encode and decode.
type LimitedMap[C any, K comparable, V any] struct {
	Key   Component[C, K]
	Val   Component[C, V]
	Limit int32
}

var _ Component[struct{}, map[int32]int32] = LimitedMap[struct{}, int32, int32]{}

func (d LimitedMap[C, K, V]) Decode(ctx *C, r *Reader) (map[K]V, error) {
	var count int32
	r.ReadVarInt32(&count)
	if err := r.Err(); err != nil {
		return nil, err
	}
	if count > d.Limit {
		return nil, limitExceeded(d.Limit, count, "decoding map")
	}
	if count < 0 {
		return nil, ErrNegativeLength
	}
	out := make(map[K]V, count)
	for i := int32(0); i < count; i++ {
		k, err := d.Key.Decode(ctx, r)
		if err != nil {
			return nil, err
		}
		v, err := d.Val.Decode(ctx, r)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

func (d LimitedMap[C, K, V]) Encode(value map[K]V, ctx *C, w *Writer) error {
	if count := int32(len(value)); count > d.Limit {
		return limitExceeded(d.Limit, count, "encoding map")
	}
	return Map[C, K, V]{Key: d.Key, Val: d.Val}.Encode(value, ctx, w)
}

func (d LimitedMap[C, K, V]) Size(value map[K]V, ctx *C) (Size, error) {
	return Map[C, K, V]{Key: d.Key, Val: d.Val}.Size(value, ctx)
}

package drax

import "encoding/json"

// JSON bridges a value through its JSON representation: a varint byte
// count followed by the UTF-8 JSON document. Useful for config-like
// payloads where schema evolution matters more than wire compactness.
type JSON[C any, T any] struct{}

var _ Component[struct{}, map[string]int] = JSON[struct{}, map[string]int]{}

func (JSON[C, T]) Decode(ctx *C, r *Reader) (T, error) {
	var value T
	buf, err := readByteBlob(r)
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal(buf, &value); err != nil {
		return value, err
	}
	return value, nil
}

func (JSON[C, T]) Encode(value T, ctx *C, w *Writer) error {
	buf, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return writeByteBlob(w, buf)
}

func (JSON[C, T]) Size(value T, ctx *C) (Size, error) {
	buf, err := json.Marshal(value)
	if err != nil {
		return Size{}, err
	}
	return Dynamic(SizeVarInt32(int32(len(buf))) + len(buf)), nil
}

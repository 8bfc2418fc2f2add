package drax

import "github.com/fxamacker/cbor/v2"

// CBOR bridges a value through its CBOR representation: a varint byte
// count followed by the CBOR payload. A compact alternative to JSON for
// the same schema-evolution use cases.
type CBOR[C any, T any] struct{}

var _ Component[struct{}, map[string]int] = CBOR[struct{}, map[string]int]{}

func (CBOR[C, T]) Decode(ctx *C, r *Reader) (T, error) {
	var value T
	buf, err := readByteBlob(r)
	if err != nil {
		return value, err
	}
	if err := cbor.Unmarshal(buf, &value); err != nil {
		return value, err
	}
	return value, nil
}

func (CBOR[C, T]) Encode(value T, ctx *C, w *Writer) error {
	buf, err := cbor.Marshal(value)
	if err != nil {
		return err
	}
	return writeByteBlob(w, buf)
}

func (CBOR[C, T]) Size(value T, ctx *C) (Size, error) {
	buf, err := cbor.Marshal(value)
	if err != nil {
		return Size{}, err
	}
	return Dynamic(SizeVarInt32(int32(len(buf))) + len(buf)), nil
}

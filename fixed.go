package drax

import (
	"encoding/binary"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// structSizeCache avoids the high performance cost of reflection in
// `binary.Size` on every call. Using a global concurrent map makes it safe
// to share components across goroutines.
var structSizeCache = xsync.NewMap[reflect.Type, int]()

// Struct is a component for any struct T composed entirely of fixed-size
// fields, eliminating per-field boilerplate for simple wire records. All
// fields are encoded big-endian in declaration order.
//
// Constraint: T MUST NOT contain variable-size fields like slices, maps,
// or strings; sizing such a type fails with ErrNotFixedSize.
type Struct[C any, T any] struct{}

var _ Component[struct{}, struct{ A, B uint32 }] = Struct[struct{}, struct{ A, B uint32 }]{}

func structWireSize[T any]() (int, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if size, ok := structSizeCache.Load(t); ok {
		return size, nil
	}
	// Not cached, perform the expensive reflection-based calculation.
	size := binary.Size(reflect.New(t).Interface())
	if size < 0 {
		return 0, ErrNotFixedSize
	}
	structSizeCache.Store(t, size)
	return size, nil
}

func (Struct[C, T]) Decode(ctx *C, r *Reader) (T, error) {
	var value T
	size, err := structWireSize[T]()
	if err != nil {
		return value, err
	}
	buf := r.ReadBytes(size)
	if err := r.Err(); err != nil {
		return value, err
	}
	if _, err := binary.Decode(buf, binary.BigEndian, &value); err != nil {
		return value, err
	}
	return value, nil
}

func (Struct[C, T]) Encode(value T, ctx *C, w *Writer) error {
	size, err := structWireSize[T]()
	if err != nil {
		return err
	}
	buf := make([]byte, size)
	if _, err := binary.Encode(buf, binary.BigEndian, &value); err != nil {
		return err
	}
	w.WriteBytes(buf)
	return w.Err()
}

func (Struct[C, T]) Size(value T, ctx *C) (Size, error) {
	size, err := structWireSize[T]()
	if err != nil {
		return Size{}, err
	}
	return Constant(size), nil
}

package drax

import (
	"bytes"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// deflateBufPool reuses scratch buffers across encodes. Sizing a Compressed
// value compresses it too, so without the pool every Marshal of one would
// allocate twice.
var deflateBufPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

// Compressed wraps an inner component in a zlib-deflated blob: a varint
// byte count of the compressed payload, then the compressed bytes. The
// inner component never sees the compression layer.
//
// Sizing a Compressed value has to run the compressor, so it costs as
// much as encoding. Prefer it for large payloads where the wire savings
// pay for the extra pass.
type Compressed[C, T any] struct {
	Elem Component[C, T]
}

var _ Component[struct{}, []byte] = Compressed[struct{}, []byte]{}

func (d Compressed[C, T]) Decode(ctx *C, r *Reader) (T, error) {
	var value T
	blob, err := readByteBlob(r)
	if err != nil {
		return value, err
	}
	zr, err := zlib.NewReader(bytes.NewReader(blob))
	if err != nil {
		return value, err
	}
	defer zr.Close()
	inner, err := NewReader(zr)
	if err != nil {
		return value, err
	}
	return d.Elem.Decode(ctx, inner)
}

func (d Compressed[C, T]) Encode(value T, ctx *C, w *Writer) error {
	blob, err := d.deflate(value, ctx)
	if err != nil {
		return err
	}
	return writeByteBlob(w, blob)
}

func (d Compressed[C, T]) Size(value T, ctx *C) (Size, error) {
	blob, err := d.deflate(value, ctx)
	if err != nil {
		return Size{}, err
	}
	return Dynamic(SizeVarInt32(int32(len(blob))) + len(blob)), nil
}

func (d Compressed[C, T]) deflate(value T, ctx *C) ([]byte, error) {
	buf := deflateBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer deflateBufPool.Put(buf)

	zw := zlib.NewWriter(buf)
	inner, err := NewWriter(zw)
	if err != nil {
		return nil, err
	}
	if err := d.Elem.Encode(value, ctx, inner); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

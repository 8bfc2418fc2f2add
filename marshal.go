package drax

import "fmt"

// Marshal encodes value into a freshly allocated byte slice sized by the
// delegate's own Size report. The written count is checked against the
// report, so a delegate whose Size and Encode disagree is caught here
// rather than corrupting a stream.
func Marshal[C, T any](d Component[C, T], value T, ctx *C) ([]byte, error) {
	s, err := d.Size(value, ctx)
	if err != nil {
		return nil, err
	}
	bw := NewBytesWriter(make([]byte, s.Bytes()))
	w, err := NewWriter(bw)
	if err != nil {
		return nil, err
	}
	if err := d.Encode(value, ctx, w); err != nil {
		return nil, err
	}
	n, err := w.Result()
	if err != nil {
		return nil, err
	}
	if n != int64(s.Bytes()) {
		return nil, fmt.Errorf("%w: reported %d, wrote %d", ErrSizeMismatch, s.Bytes(), n)
	}
	return bw.Bytes(), nil
}

// Unmarshal decodes one value from data.
func Unmarshal[C, T any](d Component[C, T], data []byte, ctx *C) (T, error) {
	r, err := NewReader(NewBytesReader(data))
	if err != nil {
		var zero T
		return zero, err
	}
	return d.Decode(ctx, r)
}

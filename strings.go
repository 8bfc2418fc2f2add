package drax

import "unicode/utf8"

// StringDefaultCap bounds the byte length of a String payload when no
// caller limit is given.
const StringDefaultCap = 32767 * 4

// String encodes text as a variable-length byte count followed by that
// many bytes of UTF-8. Both directions reject a length over
// StringDefaultCap before the payload buffer is touched.
type String[C any] struct{}

var _ Component[struct{}, string] = String[struct{}]{}

func (String[C]) Decode(ctx *C, r *Reader) (string, error) {
	return decodeString(r, StringDefaultCap)
}

func (String[C]) Encode(value string, ctx *C, w *Writer) error {
	return encodeString(w, value, StringDefaultCap)
}

func (String[C]) Size(value string, ctx *C) (Size, error) {
	return Dynamic(len(value) + SizeVarInt32(int32(len(value)))), nil
}

// LimitedString constricts a String's byte length to the given limit.
type LimitedString[C any] struct {
	Limit int32
}

var _ Component[struct{}, string] = LimitedString[struct{}]{}

func (d LimitedString[C]) Decode(ctx *C, r *Reader) (string, error) {
	return decodeString(r, d.Limit)
}

func (d LimitedString[C]) Encode(value string, ctx *C, w *Writer) error {
	return encodeString(w, value, d.Limit)
}

func (d LimitedString[C]) Size(value string, ctx *C) (Size, error) {
	return String[C]{}.Size(value, ctx)
}

func decodeString(r *Reader, limit int32) (string, error) {
	var count int32
	r.ReadVarInt32(&count)
	if err := r.Err(); err != nil {
		return "", err
	}
	if count > limit {
		return "", limitExceeded(limit, count, "decoding string")
	}
	if count < 0 {
		return "", ErrNegativeLength
	}
	buf := r.ReadBytes(int(count))
	if err := r.Err(); err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}
	return string(buf), nil
}

func encodeString(w *Writer, value string, limit int32) error {
	count := int32(len(value))
	if count > limit {
		return limitExceeded(limit, count, "encoding string")
	}
	w.WriteVarInt32(count)
	w.WriteString(value)
	return w.Err()
}

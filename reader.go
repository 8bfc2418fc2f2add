package drax

import (
	"encoding/binary"
	"io"
	"math"
)

// Reader wraps a readable byte source and simplifies decoding binary data.
// It tracks the first error encountered; subsequent reads become no-ops.
//
// Reader adds no buffering of its own and never reads past the bytes a
// decode asks for. When the source only delivers a byte at a time (a slow
// network peer), every read operation simply blocks until that byte
// arrives; partial multi-byte values are never observed by delegates.
type Reader struct {
	r       io.Reader
	br      io.ByteReader // non-nil when the source supports byte reads
	count   int64         // total bytes read
	err     error         // first error encountered
	scratch [8]byte
}

// NewReader wraps r. The source is used as-is: pass a buffered reader if
// the underlying transport benefits from one.
func NewReader(r io.Reader) (*Reader, error) {
	if r == nil {
		return nil, ErrNilIO
	}
	rd := &Reader{r: r}
	if br, ok := r.(io.ByteReader); ok {
		rd.br = br
	}
	return rd, nil
}

// Read implements the io.Reader interface.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err := r.r.Read(p)
	r.count += int64(n)
	r.setError(err)
	return n, r.err
}

func (r *Reader) Count() int64 { return r.count }
func (r *Reader) Err() error   { return r.err }
func (r *Reader) IsEOF() bool  { return r.err == io.EOF }

// setError records the first non-nil error.
func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// Result returns the total bytes read and the final error state.
func (r *Reader) Result() (int64, error) {
	return r.count, r.err
}

// readFull reads exactly len(buf) bytes. A clean end-of-stream inside a
// multi-byte value is reported as io.ErrUnexpectedEOF; a partial read is
// different from never having started the value.
func (r *Reader) readFull(buf []byte) bool {
	if r.err != nil {
		return false
	}
	if _, err := io.ReadFull(r.r, buf); err != nil {
		if err == io.EOF {
			r.err = io.ErrUnexpectedEOF
		} else {
			r.err = err
		}
		return false
	}
	r.count += int64(len(buf))
	return true
}

// ReadBytes reads n bytes and returns a new byte slice.
func (r *Reader) ReadBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n)
	if !r.readFull(buf) {
		return nil
	}
	return buf
}

// ReadAll consumes every remaining byte in the stream.
func (r *Reader) ReadAll() []byte {
	if r.err != nil {
		return nil
	}
	buf, err := io.ReadAll(r.r)
	r.count += int64(len(buf))
	r.setError(err)
	if r.err != nil {
		return nil
	}
	return buf
}

// ReadByte implements the io.ByteReader interface.
func (r *Reader) ReadByte() (byte, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.br != nil {
		b, err := r.br.ReadByte()
		if err != nil {
			r.setError(err)
			return 0, r.err
		}
		r.count++
		return b, nil
	}
	buf := r.scratch[:1]
	if _, err := io.ReadFull(r.r, buf); err != nil {
		r.setError(err)
		return 0, r.err
	}
	r.count++
	return buf[0], nil
}

// readByteInValue reads one byte that can only legally appear inside a
// value whose first bytes were already consumed, so a clean end of stream
// here is a truncation, not an end of input.
func (r *Reader) readByteInValue() (byte, error) {
	b, err := r.ReadByte()
	if err == io.EOF {
		r.err = io.ErrUnexpectedEOF
		return 0, r.err
	}
	return b, err
}

// --- Primitive Read Operations (big-endian) ---

func (r *Reader) ReadBool(dest *bool) {
	b, err := r.ReadByte()
	if err == nil {
		*dest = b != 0
	}
}

func (r *Reader) ReadUint8(dest *uint8) {
	b, err := r.ReadByte()
	if err == nil {
		*dest = b
	}
}

func (r *Reader) ReadUint16(dest *uint16) {
	buf := r.scratch[:2]
	if r.readFull(buf) {
		*dest = binary.BigEndian.Uint16(buf)
	}
}

func (r *Reader) ReadUint32(dest *uint32) {
	buf := r.scratch[:4]
	if r.readFull(buf) {
		*dest = binary.BigEndian.Uint32(buf)
	}
}

func (r *Reader) ReadUint64(dest *uint64) {
	buf := r.scratch[:8]
	if r.readFull(buf) {
		*dest = binary.BigEndian.Uint64(buf)
	}
}

func (r *Reader) ReadInt8(dest *int8) {
	b, err := r.ReadByte()
	if err == nil {
		*dest = int8(b)
	}
}

func (r *Reader) ReadInt16(dest *int16) {
	buf := r.scratch[:2]
	if r.readFull(buf) {
		*dest = int16(binary.BigEndian.Uint16(buf))
	}
}

func (r *Reader) ReadInt32(dest *int32) {
	buf := r.scratch[:4]
	if r.readFull(buf) {
		*dest = int32(binary.BigEndian.Uint32(buf))
	}
}

func (r *Reader) ReadInt64(dest *int64) {
	buf := r.scratch[:8]
	if r.readFull(buf) {
		*dest = int64(binary.BigEndian.Uint64(buf))
	}
}

func (r *Reader) ReadFloat32(dest *float32) {
	buf := r.scratch[:4]
	if r.readFull(buf) {
		*dest = math.Float32frombits(binary.BigEndian.Uint32(buf))
	}
}

func (r *Reader) ReadFloat64(dest *float64) {
	buf := r.scratch[:8]
	if r.readFull(buf) {
		*dest = math.Float64frombits(binary.BigEndian.Uint64(buf))
	}
}

// ReadVarInt32 reads a variable-length 32-bit integer one byte at a time.
func (r *Reader) ReadVarInt32(dest *int32) {
	if r.err != nil {
		return
	}
	var d VarIntDecoder
	for {
		b, err := r.ReadByte()
		if err != nil {
			if r.err == io.EOF && d.started() {
				// The stream ended mid-number.
				r.err = io.ErrUnexpectedEOF
			}
			return
		}
		v, done, err := d.Feed(b)
		if err != nil {
			r.setError(err)
			return
		}
		if done {
			*dest = v
			return
		}
	}
}

// ReadVarInt64 reads a variable-length 64-bit integer one byte at a time.
func (r *Reader) ReadVarInt64(dest *int64) {
	if r.err != nil {
		return
	}
	var d VarLongDecoder
	for {
		b, err := r.ReadByte()
		if err != nil {
			if r.err == io.EOF && d.started() {
				r.err = io.ErrUnexpectedEOF
			}
			return
		}
		v, done, err := d.Feed(b)
		if err != nil {
			r.setError(err)
			return
		}
		if done {
			*dest = v
			return
		}
	}
}

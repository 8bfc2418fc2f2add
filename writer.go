package drax

import (
	"encoding/binary"
	"io"
	"math"
)

// Writer wraps a writable byte sink and simplifies encoding binary data.
// It tracks the first error that occurs; after an error, all subsequent
// write operations become no-ops.
//
// Writer adds no buffering of its own: bytes reach the sink in wire order,
// so a delegate never writes past its declared size except as a side effect
// of an I/O failure mid-write.
type Writer struct {
	w       io.Writer
	bw      io.ByteWriter // non-nil when the sink supports byte writes
	count   int64         // total bytes written
	err     error         // first error encountered
	scratch [8]byte
}

// NewWriter wraps w. The sink is used as-is: pass a buffered writer if the
// underlying transport benefits from one, and flush it yourself.
func NewWriter(w io.Writer) (*Writer, error) {
	if w == nil {
		return nil, ErrNilIO
	}
	wr := &Writer{w: w}
	if bw, ok := w.(io.ByteWriter); ok {
		wr.bw = bw
	}
	return wr, nil
}

// Write implements the io.Writer interface.
func (w *Writer) Write(buf []byte) (int, error) {
	if len(buf) == 0 || w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(buf)
	w.count += int64(n)
	w.setError(err)
	return n, w.err
}

func (w *Writer) Count() int64 { return w.count }
func (w *Writer) Err() error   { return w.err }

// setError records the first non-nil error. This preserves the root cause
// of a failure chain instead of a later, less relevant error.
func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Result returns the final count and error state.
func (w *Writer) Result() (int64, error) {
	return w.count, w.err
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(buf []byte) {
	_, _ = w.Write(buf)
}

// WriteByte implements the io.ByteWriter interface.
func (w *Writer) WriteByte(v byte) error {
	if w.err != nil {
		return w.err
	}
	if w.bw != nil {
		if err := w.bw.WriteByte(v); err != nil {
			w.err = err
			return err
		}
		w.count++
		return nil
	}
	w.scratch[0] = v
	if _, err := w.w.Write(w.scratch[:1]); err != nil {
		w.err = err
		return err
	}
	w.count++
	return nil
}

// WriteString writes the raw bytes of a string.
func (w *Writer) WriteString(s string) {
	if s == "" || w.err != nil {
		return
	}
	n, err := io.WriteString(w.w, s)
	w.count += int64(n)
	w.setError(err)
}

// --- Primitive Write Operations (big-endian) ---

func (w *Writer) WriteBool(v bool) {
	if v {
		_ = w.WriteByte(1)
	} else {
		_ = w.WriteByte(0)
	}
}

func (w *Writer) WriteUint8(v uint8) {
	_ = w.WriteByte(v)
}

func (w *Writer) WriteUint16(v uint16) {
	if w.err != nil {
		return
	}
	binary.BigEndian.PutUint16(w.scratch[:2], v)
	_, _ = w.Write(w.scratch[:2])
}

func (w *Writer) WriteUint32(v uint32) {
	if w.err != nil {
		return
	}
	binary.BigEndian.PutUint32(w.scratch[:4], v)
	_, _ = w.Write(w.scratch[:4])
}

func (w *Writer) WriteUint64(v uint64) {
	if w.err != nil {
		return
	}
	binary.BigEndian.PutUint64(w.scratch[:8], v)
	_, _ = w.Write(w.scratch[:8])
}

func (w *Writer) WriteInt8(v int8)   { _ = w.WriteByte(uint8(v)) }
func (w *Writer) WriteInt16(v int16) { w.WriteUint16(uint16(v)) }
func (w *Writer) WriteInt32(v int32) { w.WriteUint32(uint32(v)) }
func (w *Writer) WriteInt64(v int64) { w.WriteUint64(uint64(v)) }

func (w *Writer) WriteFloat32(v float32) { w.WriteUint32(math.Float32bits(v)) }
func (w *Writer) WriteFloat64(v float64) { w.WriteUint64(math.Float64bits(v)) }

// WriteVarInt32 writes a variable-length 32-bit integer, one byte per step.
func (w *Writer) WriteVarInt32(v int32) {
	u := uint32(v)
	for {
		if u&^uint32(0x7F) == 0 {
			_ = w.WriteByte(byte(u))
			return
		}
		if w.WriteByte(byte(u&0x7F|0x80)) != nil {
			return
		}
		u >>= 7
	}
}

// WriteVarInt64 writes a variable-length 64-bit integer, one byte per step.
func (w *Writer) WriteVarInt64(v int64) {
	u := uint64(v)
	for {
		if u&^uint64(0x7F) == 0 {
			_ = w.WriteByte(byte(u))
			return
		}
		if w.WriteByte(byte(u&0x7F|0x80)) != nil {
			return
		}
		u >>= 7
	}
}

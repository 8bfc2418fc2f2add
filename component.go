package drax

// Component is the contract every encodable type's delegate implements.
//
// C is the caller-chosen context type: a mutable value owned by the caller
// of a top-level encode or decode, borrowed by pointer for the duration of
// that call and threaded through every nested component. The framework
// never retains it. T is the value type the delegate produces and consumes.
//
// The three operations agree with each other: for every value v and context
// c, Decode(c, bytes of Encode(v, c)) reproduces v, and Size(v, c) equals
// the number of bytes Encode writes.
type Component[C, T any] interface {
	// Decode consumes exactly the bytes representing one value from r.
	// It fails with io.EOF or io.ErrUnexpectedEOF when the stream ends
	// before a value is fully read, and never over-reads.
	Decode(ctx *C, r *Reader) (T, error)

	// Encode writes exactly the bytes representing value to w.
	Encode(value T, ctx *C, w *Writer) error

	// Size computes the byte count Encode will produce, without writing.
	// It performs no I/O.
	Size(value T, ctx *C) (Size, error)
}

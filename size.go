package drax

// Size declares the byte count of a component's encoding. A constant size is
// identical for every value of the type and may be cached by callers; a
// dynamic size must be recomputed per value.
type Size struct {
	n       int
	dynamic bool
}

// Constant reports a size shared by every value of the component's type.
func Constant(n int) Size { return Size{n: n} }

// Dynamic reports a size that must be recalculated for each value.
func Dynamic(n int) Size { return Size{n: n, dynamic: true} }

// Bytes returns the byte count regardless of tag.
func (s Size) Bytes() int { return s.n }

// IsConstant reports whether the size is cacheable across values.
func (s Size) IsConstant() bool { return !s.dynamic }

// Add combines two sizes. The sum is constant only when both operands are.
func (s Size) Add(o Size) Size {
	if s.dynamic || o.dynamic {
		return Dynamic(s.n + o.n)
	}
	return Constant(s.n + o.n)
}

// AddBytes adds a raw byte count. The result is always dynamic.
func (s Size) AddBytes(n int) Size { return Dynamic(s.n + n) }

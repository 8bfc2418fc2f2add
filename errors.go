package drax

import (
	"errors"
	"fmt"
)

var (
	// ErrNilIO indicates that NewReader/NewWriter was called with a nil interface.
	ErrNilIO = errors.New("drax: NewReader/NewWriter called with a nil io.Reader/io.Writer")

	// ErrVarNumTooLarge indicates a variable-length number did not terminate
	// within its width's byte ceiling.
	ErrVarNumTooLarge = errors.New("drax: variable-length number too large")

	// ErrNegativeLength indicates a decoded length prefix was negative.
	ErrNegativeLength = errors.New("drax: negative length prefix")

	// ErrInvalidUTF8 indicates a decoded string payload was not valid UTF-8.
	ErrInvalidUTF8 = errors.New("drax: invalid utf-8 in string payload")

	// ErrInvalidModifiedUTF8 indicates a tag string payload was not valid
	// modified UTF-8.
	ErrInvalidModifiedUTF8 = errors.New("drax: invalid modified utf-8 in tag string")

	// ErrTagTooComplex indicates the tag recursion depth guard tripped.
	ErrTagTooComplex = errors.New("drax: tag too complex, depth surpassed 512")

	// ErrAccountantOverflow indicates the tag byte accountant's running total
	// overflowed while decoding.
	ErrAccountantOverflow = errors.New("drax: tag accountant overflowed")

	// ErrNotFixedSize indicates a Struct delegate was instantiated with a
	// payload type containing variable-size fields.
	ErrNotFixedSize = errors.New("drax: struct delegate requires a fixed-size payload")

	// ErrLengthMismatch indicates a value's element count does not match a
	// fixed array delegate's declared count.
	ErrLengthMismatch = errors.New("drax: value length does not match declared array length")

	// ErrNilValue indicates a nil pointer was passed to an encode that
	// requires a value.
	ErrNilValue = errors.New("drax: nil value passed to encode")

	// ErrSizeMismatch indicates the byte count reported by Size disagrees
	// with the byte count Encode actually produced.
	ErrSizeMismatch = errors.New("drax: reported size disagrees with encoded length")
)

// LimitError is returned when a declared or actual length exceeds a
// configured ceiling. It is raised before the corresponding allocation or
// write happens.
type LimitError struct {
	Limit  int32
	Actual int32
	Op     string
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("drax: limit exceeded while %s: expected %d but received %d", e.Op, e.Limit, e.Actual)
}

func limitExceeded(limit, actual int32, op string) error {
	return &LimitError{Limit: limit, Actual: actual, Op: op}
}

// InvalidTagKindError is returned when an unrecognized tag kind discriminant
// is encountered while decoding a tag tree.
type InvalidTagKindError struct {
	Kind byte
}

func (e *InvalidTagKindError) Error() string {
	return fmt.Sprintf("drax: invalid tag kind %d, could not load tag", e.Kind)
}

// BudgetError is returned when the cumulative byte budget of a tag decode
// exceeds the accountant's configured limit.
type BudgetError struct {
	Limit  uint64
	Needed uint64
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("drax: tag too big, expected %d but received %d", e.Limit, e.Needed)
}

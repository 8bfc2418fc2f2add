package drax

// The tag tree is a recursive, tagged-union binary format with thirteen
// node kinds. The kind discriminant of a node is written by its container,
// not by the node itself; only the synthetic document root carries its own
// kind byte (see CompoundDocument).

// TagKind is the wire discriminant of a tag node.
type TagKind uint8

const (
	KindEnd TagKind = iota
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindByteArray
	KindString
	KindList
	KindCompound
	KindIntArray
	KindLongArray
)

// maxTagDepth bounds the nesting of lists and compounds while decoding.
// The guard trips before any bytes of the offending child are consumed.
const maxTagDepth = 512

// Tag is one node of the tree. Tags are immutable values: constructed
// during decode or by the caller, never shared.
type Tag interface {
	Kind() TagKind
}

type (
	// TagEnd carries no payload. It only appears as the compound
	// terminator sentinel, never as a standalone value.
	TagEnd struct{}
	// TagByte is a single unsigned byte.
	TagByte uint8
	// TagShort is a big-endian unsigned 16-bit integer.
	TagShort uint16
	// TagInt is a big-endian signed 32-bit integer.
	TagInt int32
	// TagLong is a big-endian signed 64-bit integer.
	TagLong int64
	// TagFloat is a big-endian 32-bit float.
	TagFloat float32
	// TagDouble is a big-endian 64-bit float.
	TagDouble float64
	// TagByteArray is a 4-byte signed length followed by raw bytes.
	TagByteArray []byte
	// TagString is a 2-byte unsigned length followed by modified UTF-8.
	TagString string
	// TagList is homogeneous: one element-kind byte, a 4-byte signed
	// count, then that many same-kind payloads with no per-element kind.
	TagList struct {
		ElemKind TagKind
		Items    []Tag
	}
	// TagCompound is a sequence of named children terminated by a single
	// End kind byte. It is a sequence, not a mapping: insertion order is
	// preserved and duplicate names are representable.
	TagCompound []CompoundEntry
	// TagIntArray is a 4-byte signed count of 4-byte signed integers.
	TagIntArray []int32
	// TagLongArray is a 4-byte signed count of 8-byte signed integers.
	TagLongArray []int64
)

// CompoundEntry is one named child of a compound.
type CompoundEntry struct {
	Name  string
	Value Tag
}

func (TagEnd) Kind() TagKind       { return KindEnd }
func (TagByte) Kind() TagKind      { return KindByte }
func (TagShort) Kind() TagKind     { return KindShort }
func (TagInt) Kind() TagKind       { return KindInt }
func (TagLong) Kind() TagKind      { return KindLong }
func (TagFloat) Kind() TagKind     { return KindFloat }
func (TagDouble) Kind() TagKind    { return KindDouble }
func (TagByteArray) Kind() TagKind { return KindByteArray }
func (TagString) Kind() TagKind    { return KindString }
func (TagList) Kind() TagKind      { return KindList }
func (TagCompound) Kind() TagKind  { return KindCompound }
func (TagIntArray) Kind() TagKind  { return KindIntArray }
func (TagLongArray) Kind() TagKind { return KindLongArray }

// Accountant tracks the cumulative byte budget of a single top-level tag
// decode. The per-node weights model in-memory representation cost, not
// wire cost, so a small wire payload that hydrates into a huge tree is
// still caught. A limit of 0 disables the guard.
type Accountant struct {
	limit   uint64
	current uint64
}

// NewAccountant creates an accountant with the given budget. One
// accountant serves exactly one top-level decode.
func NewAccountant(limit uint64) *Accountant {
	return &Accountant{limit: limit}
}

// Account debits n from the budget. Exceeding the limit or overflowing the
// running total is a hard failure.
func (a *Accountant) Account(n uint64) error {
	if a.limit == 0 {
		return nil
	}
	next := a.current + n
	if next < a.current {
		return ErrAccountantOverflow
	}
	if next > a.limit {
		return &BudgetError{Limit: a.limit, Needed: next}
	}
	a.current = next
	return nil
}

// LoadTag decodes one tag of the given kind from r. The kind byte itself
// has already been consumed by the caller, per the container convention.
func LoadTag(r *Reader, kind TagKind, acc *Accountant) (Tag, error) {
	return loadTag(r, kind, 0, acc)
}

func loadTag(r *Reader, kind TagKind, depth int, acc *Accountant) (Tag, error) {
	switch kind {
	case KindEnd:
		if err := acc.Account(8); err != nil {
			return nil, err
		}
		return TagEnd{}, nil

	case KindByte:
		if err := acc.Account(9); err != nil {
			return nil, err
		}
		b, err := r.readByteInValue()
		if err != nil {
			return nil, err
		}
		return TagByte(b), nil

	case KindShort:
		if err := acc.Account(10); err != nil {
			return nil, err
		}
		var v uint16
		r.ReadUint16(&v)
		return TagShort(v), r.Err()

	case KindInt:
		if err := acc.Account(12); err != nil {
			return nil, err
		}
		var v int32
		r.ReadInt32(&v)
		return TagInt(v), r.Err()

	case KindLong:
		if err := acc.Account(16); err != nil {
			return nil, err
		}
		var v int64
		r.ReadInt64(&v)
		return TagLong(v), r.Err()

	case KindFloat:
		if err := acc.Account(12); err != nil {
			return nil, err
		}
		var v float32
		r.ReadFloat32(&v)
		return TagFloat(v), r.Err()

	case KindDouble:
		if err := acc.Account(16); err != nil {
			return nil, err
		}
		var v float64
		r.ReadFloat64(&v)
		return TagDouble(v), r.Err()

	case KindByteArray:
		if err := acc.Account(24); err != nil {
			return nil, err
		}
		count, err := readTagCount(r)
		if err != nil {
			return nil, err
		}
		if err := acc.Account(uint64(count)); err != nil {
			return nil, err
		}
		buf := r.ReadBytes(int(count))
		if err := r.Err(); err != nil {
			return nil, err
		}
		if buf == nil {
			buf = []byte{}
		}
		return TagByteArray(buf), nil

	case KindString:
		if err := acc.Account(36); err != nil {
			return nil, err
		}
		s, err := readTagString(r, acc)
		if err != nil {
			return nil, err
		}
		return TagString(s), nil

	case KindList:
		if err := acc.Account(37); err != nil {
			return nil, err
		}
		if depth >= maxTagDepth {
			return nil, ErrTagTooComplex
		}
		elemKind, err := r.readByteInValue()
		if err != nil {
			return nil, err
		}
		count, err := readTagCount(r)
		if err != nil {
			return nil, err
		}
		if err := acc.Account(4 * uint64(count)); err != nil {
			return nil, err
		}
		items := make([]Tag, 0, count)
		for i := int32(0); i < count; i++ {
			item, err := loadTag(r, TagKind(elemKind), depth+1, acc)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return TagList{ElemKind: TagKind(elemKind), Items: items}, nil

	case KindCompound:
		if err := acc.Account(48); err != nil {
			return nil, err
		}
		if depth >= maxTagDepth {
			return nil, ErrTagTooComplex
		}
		var compound TagCompound
		for {
			b, err := r.readByteInValue()
			if err != nil {
				return nil, err
			}
			if b == 0 {
				break
			}
			if err := acc.Account(28); err != nil {
				return nil, err
			}
			name, err := readTagString(r, acc)
			if err != nil {
				return nil, err
			}
			child, err := loadTag(r, TagKind(b), depth+1, acc)
			if err != nil {
				return nil, err
			}
			compound = append(compound, CompoundEntry{Name: name, Value: child})
			if err := acc.Account(36); err != nil {
				return nil, err
			}
		}
		return compound, nil

	case KindIntArray:
		if err := acc.Account(24); err != nil {
			return nil, err
		}
		count, err := readTagCount(r)
		if err != nil {
			return nil, err
		}
		if err := acc.Account(4 * uint64(count)); err != nil {
			return nil, err
		}
		arr := make([]int32, count)
		for i := range arr {
			r.ReadInt32(&arr[i])
		}
		if err := r.Err(); err != nil {
			return nil, err
		}
		return TagIntArray(arr), nil

	case KindLongArray:
		if err := acc.Account(24); err != nil {
			return nil, err
		}
		count, err := readTagCount(r)
		if err != nil {
			return nil, err
		}
		if err := acc.Account(8 * uint64(count)); err != nil {
			return nil, err
		}
		arr := make([]int64, count)
		for i := range arr {
			r.ReadInt64(&arr[i])
		}
		if err := r.Err(); err != nil {
			return nil, err
		}
		return TagLongArray(arr), nil

	default:
		return nil, &InvalidTagKindError{Kind: byte(kind)}
	}
}

// WriteTag encodes one tag payload to w. The kind byte is the container's
// responsibility and is not written here.
func WriteTag(w *Writer, t Tag) error {
	switch v := t.(type) {
	case TagEnd:
		return nil
	case TagByte:
		w.WriteUint8(uint8(v))
	case TagShort:
		w.WriteUint16(uint16(v))
	case TagInt:
		w.WriteInt32(int32(v))
	case TagLong:
		w.WriteInt64(int64(v))
	case TagFloat:
		w.WriteFloat32(float32(v))
	case TagDouble:
		w.WriteFloat64(float64(v))
	case TagByteArray:
		w.WriteInt32(int32(len(v)))
		w.WriteBytes(v)
	case TagString:
		return writeTagString(w, string(v))
	case TagList:
		w.WriteUint8(uint8(v.ElemKind))
		w.WriteInt32(int32(len(v.Items)))
		for _, item := range v.Items {
			if err := WriteTag(w, item); err != nil {
				return err
			}
		}
	case TagCompound:
		for _, entry := range v {
			w.WriteUint8(uint8(entry.Value.Kind()))
			if err := writeTagString(w, entry.Name); err != nil {
				return err
			}
			if err := WriteTag(w, entry.Value); err != nil {
				return err
			}
		}
		w.WriteUint8(0)
	case TagIntArray:
		w.WriteInt32(int32(len(v)))
		for _, item := range v {
			w.WriteInt32(item)
		}
	case TagLongArray:
		w.WriteInt32(int32(len(v)))
		for _, item := range v {
			w.WriteInt64(item)
		}
	default:
		return &InvalidTagKindError{Kind: byte(t.Kind())}
	}
	return w.Err()
}

// SizeTag returns the exact wire size of a tag payload, excluding the kind
// byte its container writes.
func SizeTag(t Tag) int {
	switch v := t.(type) {
	case TagEnd:
		return 0
	case TagByte:
		return 1
	case TagShort:
		return 2
	case TagInt, TagFloat:
		return 4
	case TagLong, TagDouble:
		return 8
	case TagByteArray:
		return 4 + len(v)
	case TagString:
		return sizeTagString(string(v))
	case TagList:
		size := 5
		for _, item := range v.Items {
			size += SizeTag(item)
		}
		return size
	case TagCompound:
		// Entries plus the one-byte terminator.
		size := 1
		for _, entry := range v {
			size += sizeTagString(entry.Name) + 1
			size += SizeTag(entry.Value)
		}
		return size
	case TagIntArray:
		return 4 + 4*len(v)
	case TagLongArray:
		return 4 + 8*len(v)
	default:
		return 0
	}
}

// readTagCount reads a 4-byte signed element count and rejects negatives
// before they can turn into an enormous unsigned budget debit.
func readTagCount(r *Reader) (int32, error) {
	var count int32
	r.ReadInt32(&count)
	if err := r.Err(); err != nil {
		return 0, err
	}
	if count < 0 {
		return 0, ErrNegativeLength
	}
	return count, nil
}

func readTagString(r *Reader, acc *Accountant) (string, error) {
	var count uint16
	r.ReadUint16(&count)
	buf := r.ReadBytes(int(count))
	if err := r.Err(); err != nil {
		return "", err
	}
	s, err := decodeMUTF8(buf)
	if err != nil {
		return "", err
	}
	if err := acc.Account(uint64(len(s))); err != nil {
		return "", err
	}
	return s, nil
}

func writeTagString(w *Writer, s string) error {
	enc := appendMUTF8(nil, s)
	w.WriteUint16(uint16(len(enc)))
	w.WriteBytes(enc)
	return w.Err()
}

func sizeTagString(s string) int {
	return 2 + mutf8Len(s)
}

// CompoundDocument frames an optional top-level compound: one kind byte
// (0 absent, 10 present), then an always-empty root name and the compound
// payload when present. A nil Tag is the absent document.
//
// Limit is the accountant budget wired to each decode; 0 disables it for
// trusted or local input.
type CompoundDocument[C any] struct {
	Limit uint64
}

var _ Component[struct{}, Tag] = CompoundDocument[struct{}]{}

func (d CompoundDocument[C]) Decode(ctx *C, r *Reader) (Tag, error) {
	b, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, nil
	}
	if TagKind(b) != KindCompound {
		return nil, &InvalidTagKindError{Kind: b}
	}
	acc := NewAccountant(d.Limit)
	if _, err := readTagString(r, acc); err != nil {
		return nil, err
	}
	return loadTag(r, KindCompound, 0, acc)
}

func (d CompoundDocument[C]) Encode(value Tag, ctx *C, w *Writer) error {
	if value == nil {
		return w.WriteByte(0)
	}
	w.WriteUint8(uint8(KindCompound))
	if err := writeTagString(w, ""); err != nil {
		return err
	}
	return WriteTag(w, value)
}

func (d CompoundDocument[C]) Size(value Tag, ctx *C) (Size, error) {
	if value == nil {
		return Constant(1), nil
	}
	// Kind byte plus the zero-length root name's length prefix.
	return Dynamic(3 + SizeTag(value)), nil
}

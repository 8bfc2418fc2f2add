package drax

import "strings"

// Tag strings travel as modified UTF-8, the CESU-8 dialect used by the JVM
// serialization stack: U+0000 becomes the two-byte sequence C0 80, and
// supplementary-plane characters become a surrogate pair with each half
// encoded as a three-byte sequence. Four-byte sequences never appear.

func mutf8Len(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case r == 0:
			n += 2
		case r < 0x80:
			n++
		case r < 0x800:
			n += 2
		case r < 0x10000:
			n += 3
		default:
			n += 6
		}
	}
	return n
}

func appendMUTF8(dst []byte, s string) []byte {
	for _, r := range s {
		switch {
		case r == 0:
			dst = append(dst, 0xC0, 0x80)
		case r < 0x80:
			dst = append(dst, byte(r))
		case r < 0x800:
			dst = append(dst, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
		case r < 0x10000:
			dst = appendMUTF8Triple(dst, uint16(r))
		default:
			r -= 0x10000
			dst = appendMUTF8Triple(dst, uint16(0xD800|r>>10))
			dst = appendMUTF8Triple(dst, uint16(0xDC00|r&0x3FF))
		}
	}
	return dst
}

func appendMUTF8Triple(dst []byte, u uint16) []byte {
	return append(dst, 0xE0|byte(u>>12), 0x80|byte(u>>6&0x3F), 0x80|byte(u&0x3F))
}

func decodeMUTF8(b []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c&0x80 == 0:
			sb.WriteByte(c)
			i++
		case c&0xE0 == 0xC0:
			if i+1 >= len(b) || b[i+1]&0xC0 != 0x80 {
				return "", ErrInvalidModifiedUTF8
			}
			sb.WriteRune(rune(c&0x1F)<<6 | rune(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0:
			u, ok := mutf8Triple(b[i:])
			if !ok {
				return "", ErrInvalidModifiedUTF8
			}
			i += 3
			switch {
			case u >= 0xD800 && u <= 0xDBFF:
				// High surrogate: the low half must follow immediately.
				lo, ok := mutf8Triple(b[i:])
				if !ok || lo < 0xDC00 || lo > 0xDFFF {
					return "", ErrInvalidModifiedUTF8
				}
				i += 3
				sb.WriteRune(0x10000 + (rune(u-0xD800)<<10 | rune(lo-0xDC00)))
			case u >= 0xDC00 && u <= 0xDFFF:
				// Unpaired low surrogate.
				return "", ErrInvalidModifiedUTF8
			default:
				sb.WriteRune(rune(u))
			}
		default:
			return "", ErrInvalidModifiedUTF8
		}
	}
	return sb.String(), nil
}

func mutf8Triple(b []byte) (uint16, bool) {
	if len(b) < 3 || b[0]&0xF0 != 0xE0 || b[1]&0xC0 != 0x80 || b[2]&0xC0 != 0x80 {
		return 0, false
	}
	return uint16(b[0]&0x0F)<<12 | uint16(b[1]&0x3F)<<6 | uint16(b[2]&0x3F), true
}

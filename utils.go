package rapidutf

import (
	"bytes"
)

const replacementChar = 0xFFFD

// TrimPartialUTF8 returns the length of src without an incomplete sequence
// at its end, so that text split at an arbitrary byte can be processed in
// pieces.
func TrimPartialUTF8(src []byte) int {
	n := len(src)
	// walk back over at most three continuation bytes to the lead byte
	for back := 1; back <= 4 && back <= n; back++ {
		b := src[n-back]
		if b&0xC0 == 0x80 {
			continue
		}
		if need := utf8SeqLen(b); need > back {
			return n - back
		}
		return n
	}
	return n
}

func utf8SeqLen(lead byte) int {
	switch {
	case lead < 0xC0:
		return 1
	case lead < 0xE0:
		return 2
	case lead < 0xF0:
		return 3
	default:
		return 4
	}
}

func trimPartialUTF16(src []byte, bigEndian bool) int {
	n := len(src) / 2
	if n > 0 {
		if w := load16(src[2*n-2:], bigEndian); w >= surrogateMin && w < lowSurrogate {
			n--
		}
	}
	return n
}

// TrimPartialUTF16LE returns the number of units of src left after dropping
// an odd trailing byte and a trailing high surrogate.
func TrimPartialUTF16LE(src []byte) int {
	return trimPartialUTF16(src, false)
}

// TrimPartialUTF16BE is TrimPartialUTF16LE for big-endian text.
func TrimPartialUTF16BE(src []byte) int {
	return trimPartialUTF16(src, true)
}

func toWellFormedUTF16(dst, src []byte, bigEndian bool) int {
	n := min(len(src), len(dst)) / 2
	for i := 0; i < n; i++ {
		w := load16(src[2*i:], bigEndian)
		switch {
		case w < surrogateMin || w > surrogateMax:
		case w < lowSurrogate && i+1 < n:
			if w2 := load16(src[2*i+2:], bigEndian); w2 >= lowSurrogate && w2 <= surrogateMax {
				store16(dst[2*i:], w, bigEndian)
				i++
				store16(dst[2*i:], w2, bigEndian)
				continue
			}
			w = replacementChar
		default:
			w = replacementChar
		}
		store16(dst[2*i:], w, bigEndian)
	}
	return n
}

// ToWellFormedUTF16LE copies src to dst replacing every unpaired surrogate
// with U+FFFD. dst may be src. It returns the number of units written.
func ToWellFormedUTF16LE(dst, src []byte) int {
	return toWellFormedUTF16(dst, src, false)
}

// ToWellFormedUTF16BE is ToWellFormedUTF16LE for big-endian text.
func ToWellFormedUTF16BE(dst, src []byte) int {
	return toWellFormedUTF16(dst, src, true)
}

// Find returns the index of the first c in src, or -1.
func Find(src []byte, c byte) int {
	return bytes.IndexByte(src, c)
}

func findUTF16(src []byte, c uint16, bigEndian bool) int {
	for i := 0; i+1 < len(src); i += 2 {
		if load16(src[i:], bigEndian) == c {
			return i / 2
		}
	}
	return -1
}

// FindUTF16LE returns the unit index of the first c in src, or -1.
func FindUTF16LE(src []byte, c uint16) int {
	return findUTF16(src, c, false)
}

// FindUTF16BE returns the unit index of the first c in src, or -1.
func FindUTF16BE(src []byte, c uint16) int {
	return findUTF16(src, c, true)
}

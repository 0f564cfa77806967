package rapidutf

import (
	"encoding/binary"
)

const (
	maxRune       = 0x10FFFF
	surrogateMin  = 0xD800
	lowSurrogate  = 0xDC00
	surrogateMax  = 0xDFFF
	surrogateSpan = 0x800
	surrSelf      = 0x10000
)

// scalarWindow is how many units the scalar code handles after a chunk was
// rejected by a kernel, before the kernel is tried again.
const scalarWindow = 64

func isSurrogate(r rune) bool {
	return r >= surrogateMin && r <= surrogateMax
}

func load16(b []byte, bigEndian bool) uint16 {
	if bigEndian {
		return binary.BigEndian.Uint16(b)
	}
	return binary.LittleEndian.Uint16(b)
}

func store16(b []byte, v uint16, bigEndian bool) {
	if bigEndian {
		binary.BigEndian.PutUint16(b, v)
		return
	}
	binary.LittleEndian.PutUint16(b, v)
}

// decodeUTF8 decodes the sequence starting at src[0], which must exist. On
// failure size is 0 and code classifies the lead byte's sequence.
func decodeUTF8(src []byte) (r rune, size int, code ErrorCode) {
	b0 := src[0]
	switch {
	case b0 < 0x80:
		return rune(b0), 1, Success
	case b0&0xE0 == 0xC0:
		if len(src) < 2 || src[1]&0xC0 != 0x80 {
			return 0, 0, TooShort
		}
		r = rune(b0&0x1F)<<6 | rune(src[1]&0x3F)
		if r < 0x80 {
			return 0, 0, Overlong
		}
		return r, 2, Success
	case b0&0xF0 == 0xE0:
		if len(src) < 3 || src[1]&0xC0 != 0x80 || src[2]&0xC0 != 0x80 {
			return 0, 0, TooShort
		}
		r = rune(b0&0x0F)<<12 | rune(src[1]&0x3F)<<6 | rune(src[2]&0x3F)
		if r < 0x800 {
			return 0, 0, Overlong
		}
		if isSurrogate(r) {
			return 0, 0, Surrogate
		}
		return r, 3, Success
	case b0&0xF8 == 0xF0:
		if len(src) < 4 || src[1]&0xC0 != 0x80 || src[2]&0xC0 != 0x80 || src[3]&0xC0 != 0x80 {
			return 0, 0, TooShort
		}
		r = rune(b0&0x07)<<18 | rune(src[1]&0x3F)<<12 | rune(src[2]&0x3F)<<6 | rune(src[3]&0x3F)
		if r < surrSelf {
			return 0, 0, Overlong
		}
		if r > maxRune {
			return 0, 0, TooLarge
		}
		return r, 4, Success
	case b0&0xC0 == 0x80:
		return 0, 0, TooLong
	default:
		return 0, 0, HeaderBits
	}
}

// decodeUTF8Valid trusts the lead byte. It returns size 0 when the sequence
// runs past the end of src.
func decodeUTF8Valid(src []byte) (rune, int) {
	b0 := src[0]
	switch {
	case b0 < 0x80:
		return rune(b0), 1
	case b0 < 0xE0:
		if len(src) < 2 {
			return 0, 0
		}
		return rune(b0&0x1F)<<6 | rune(src[1]&0x3F), 2
	case b0 < 0xF0:
		if len(src) < 3 {
			return 0, 0
		}
		return rune(b0&0x0F)<<12 | rune(src[1]&0x3F)<<6 | rune(src[2]&0x3F), 3
	default:
		if len(src) < 4 {
			return 0, 0
		}
		return rune(b0&0x07)<<18 | rune(src[1]&0x3F)<<12 | rune(src[2]&0x3F)<<6 | rune(src[3]&0x3F), 4
	}
}

// decodeUTF16 decodes one code point from the units at the start of src.
// Size is in bytes.
func decodeUTF16(src []byte, bigEndian bool) (rune, int, ErrorCode) {
	if len(src) < 2 {
		return 0, 0, TooShort
	}
	w := rune(load16(src, bigEndian))
	if !isSurrogate(w) {
		return w, 2, Success
	}
	if w >= lowSurrogate || len(src) < 4 {
		return 0, 0, Surrogate
	}
	w2 := rune(load16(src[2:], bigEndian))
	if w2 < lowSurrogate || w2 > surrogateMax {
		return 0, 0, Surrogate
	}
	return (w-surrogateMin)<<10 + (w2 - lowSurrogate) + surrSelf, 4, Success
}

func decodeUTF16Valid(src []byte, bigEndian bool) (rune, int) {
	if len(src) < 2 {
		return 0, 0
	}
	w := rune(load16(src, bigEndian))
	if !isSurrogate(w) {
		return w, 2
	}
	if len(src) < 4 {
		return 0, 0
	}
	w2 := rune(load16(src[2:], bigEndian))
	return (w-surrogateMin)<<10 + (w2 - lowSurrogate) + surrSelf, 4
}

func decodeUTF32(src []byte) (rune, int, ErrorCode) {
	if len(src) < 4 {
		return 0, 0, TooShort
	}
	w := binary.LittleEndian.Uint32(src)
	if w > maxRune {
		return 0, 0, TooLarge
	}
	if isSurrogate(rune(w)) {
		return 0, 0, Surrogate
	}
	return rune(w), 4, Success
}

func decodeUTF32Valid(src []byte) (rune, int) {
	if len(src) < 4 {
		return 0, 0
	}
	return rune(binary.LittleEndian.Uint32(src)), 4
}

// utf8Len is the number of bytes needed for r.
func utf8Len(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < surrSelf:
		return 3
	default:
		return 4
	}
}

func encodeUTF8(dst []byte, r rune) (int, ErrorCode) {
	n := utf8Len(r)
	if len(dst) < n {
		return 0, OutputBufferTooSmall
	}
	switch n {
	case 1:
		dst[0] = byte(r)
	case 2:
		dst[0] = 0xC0 | byte(r>>6)
		dst[1] = 0x80 | byte(r)&0x3F
	case 3:
		dst[0] = 0xE0 | byte(r>>12)
		dst[1] = 0x80 | byte(r>>6)&0x3F
		dst[2] = 0x80 | byte(r)&0x3F
	default:
		dst[0] = 0xF0 | byte(r>>18)
		dst[1] = 0x80 | byte(r>>12)&0x3F
		dst[2] = 0x80 | byte(r>>6)&0x3F
		dst[3] = 0x80 | byte(r)&0x3F
	}
	return n, Success
}

func encodeUTF16(dst []byte, r rune, bigEndian bool) (int, ErrorCode) {
	if r < surrSelf {
		if len(dst) < 2 {
			return 0, OutputBufferTooSmall
		}
		store16(dst, uint16(r), bigEndian)
		return 2, Success
	}
	if len(dst) < 4 {
		return 0, OutputBufferTooSmall
	}
	r -= surrSelf
	store16(dst, uint16(surrogateMin+(r>>10)), bigEndian)
	store16(dst[2:], uint16(lowSurrogate+(r&0x3FF)), bigEndian)
	return 4, Success
}

func encodeUTF32(dst []byte, r rune) (int, ErrorCode) {
	if len(dst) < 4 {
		return 0, OutputBufferTooSmall
	}
	binary.LittleEndian.PutUint32(dst, uint32(r))
	return 4, Success
}

func encodeLatin1(dst []byte, r rune) (int, ErrorCode) {
	if r > 0xFF {
		return 0, TooLarge
	}
	if len(dst) < 1 {
		return 0, OutputBufferTooSmall
	}
	dst[0] = byte(r)
	return 1, Success
}

// codec binds the scalar routines and the bulk predicate of one encoding.
type codec struct {
	enc       Encoding
	unit      int
	bigEndian bool

	decode      func(src []byte) (rune, int, ErrorCode)
	decodeValid func(src []byte) (rune, int)
	encode      func(dst []byte, r rune) (int, ErrorCode)
	// ascii returns how many leading bytes of src hold ASCII units only.
	ascii func(k kernels, src []byte) int
}

var (
	utf8Codec = &codec{
		enc:         UTF8,
		unit:        1,
		decode:      decodeUTF8,
		decodeValid: decodeUTF8Valid,
		encode:      encodeUTF8,
		ascii:       func(k kernels, src []byte) int { return k.asciiPrefix(src) },
	}
	utf16LECodec = &codec{
		enc:         UTF16LE,
		unit:        2,
		decode:      func(src []byte) (rune, int, ErrorCode) { return decodeUTF16(src, false) },
		decodeValid: func(src []byte) (rune, int) { return decodeUTF16Valid(src, false) },
		encode:      func(dst []byte, r rune) (int, ErrorCode) { return encodeUTF16(dst, r, false) },
		ascii:       func(k kernels, src []byte) int { return k.asciiPrefix16(src, false) },
	}
	utf16BECodec = &codec{
		enc:         UTF16BE,
		unit:        2,
		bigEndian:   true,
		decode:      func(src []byte) (rune, int, ErrorCode) { return decodeUTF16(src, true) },
		decodeValid: func(src []byte) (rune, int) { return decodeUTF16Valid(src, true) },
		encode:      func(dst []byte, r rune) (int, ErrorCode) { return encodeUTF16(dst, r, true) },
		ascii:       func(k kernels, src []byte) int { return k.asciiPrefix16(src, true) },
	}
	utf32Codec = &codec{
		enc:         UTF32LE,
		unit:        4,
		decode:      decodeUTF32,
		decodeValid: decodeUTF32Valid,
		encode:      encodeUTF32,
		ascii:       func(k kernels, src []byte) int { return k.asciiPrefix32(src) },
	}
	latin1Codec = &codec{
		enc:         Latin1,
		unit:        1,
		decode:      func(src []byte) (rune, int, ErrorCode) { return rune(src[0]), 1, Success },
		decodeValid: func(src []byte) (rune, int) { return rune(src[0]), 1 },
		encode:      encodeLatin1,
		ascii:       func(k kernels, src []byte) int { return k.asciiPrefix(src) },
	}
)

func codecFor(e Encoding) *codec {
	switch e {
	case UTF8:
		return utf8Codec
	case UTF16LE:
		return utf16LECodec
	case UTF16BE:
		return utf16BECodec
	case UTF32LE:
		return utf32Codec
	case Latin1:
		return latin1Codec
	}
	return nil
}

// lowByte is the offset of the low-order byte inside a unit of c.
func (c *codec) lowByte() int {
	if c.bigEndian {
		return c.unit - 1
	}
	return 0
}

// copyASCII writes n ASCII units of src, laid out as from, into dst laid
// out as to. dst must have room for n units.
func copyASCII(dst []byte, to *codec, src []byte, from *codec, n int) {
	if to.unit == 1 && from.unit == 1 {
		copy(dst, src[:n])
		return
	}
	si, di := from.lowByte(), to.lowByte()
	if to.unit == 1 {
		for u := 0; u < n; u++ {
			dst[u] = src[u*from.unit+si]
		}
		return
	}
	clear(dst[:n*to.unit])
	for u := 0; u < n; u++ {
		dst[u*to.unit+di] = src[u*from.unit+si]
	}
}

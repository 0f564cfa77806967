package rapidutf

// Length functions assume valid input and return exact unit counts unless
// documented otherwise. ASCII chunks are counted in bulk.

// countUTF8 returns the number of code points in src, and separately the
// number of 4-byte sequences.
func countUTF8(src []byte) (points, quads int) {
	k := activeKernels()
	i := 0
	for i < len(src) {
		if n := k.asciiPrefix(src[i:]); n > 0 {
			points += n
			i += n
			continue
		}
		for end := min(i+scalarWindow, len(src)); i < end; i++ {
			b := src[i]
			if b&0xC0 != 0x80 {
				points++
			}
			if b >= 0xF0 {
				quads++
			}
		}
	}
	return points, quads
}

// CountUTF8 returns the number of code points in the UTF-8 text src.
func CountUTF8(src []byte) int {
	n, _ := countUTF8(src)
	return n
}

func countUTF16(src []byte, bigEndian bool) int {
	n := 0
	for i := 0; i+1 < len(src); i += 2 {
		if w := load16(src[i:], bigEndian); w < lowSurrogate || w > surrogateMax {
			n++
		}
	}
	return n
}

// CountUTF16LE returns the number of code points in little-endian UTF-16
// text; every unit except a low surrogate starts one.
func CountUTF16LE(src []byte) int {
	return countUTF16(src, false)
}

// CountUTF16BE is CountUTF16LE for big-endian text.
func CountUTF16BE(src []byte) int {
	return countUTF16(src, true)
}

// UTF16LengthFromUTF8 returns the number of 16-bit units needed for src.
func UTF16LengthFromUTF8(src []byte) int {
	n, quads := countUTF8(src)
	return n + quads
}

// UTF32LengthFromUTF8 returns the number of 32-bit units needed for src.
func UTF32LengthFromUTF8(src []byte) int {
	return CountUTF8(src)
}

// Latin1LengthFromUTF8 returns the number of bytes needed for src.
func Latin1LengthFromUTF8(src []byte) int {
	return CountUTF8(src)
}

func utf8LengthFromUTF16(src []byte, bigEndian bool) int {
	k := activeKernels()
	n := 0
	i := 0
	for i+1 < len(src) {
		if a := k.asciiPrefix16(src[i:], bigEndian); a > 0 {
			n += a / 2
			i += a
			continue
		}
		for end := min(i+2*scalarWindow, len(src)); i+1 < end; i += 2 {
			switch w := load16(src[i:], bigEndian); {
			case w < 0x80:
				n++
			case w < 0x800, w >= surrogateMin && w <= surrogateMax:
				n += 2 // a pair takes four bytes
			default:
				n += 3
			}
		}
	}
	return n
}

// UTF8LengthFromUTF16LE returns the number of bytes needed for the
// little-endian UTF-16 text src.
func UTF8LengthFromUTF16LE(src []byte) int {
	return utf8LengthFromUTF16(src, false)
}

// UTF8LengthFromUTF16BE returns the number of bytes needed for the
// big-endian UTF-16 text src.
func UTF8LengthFromUTF16BE(src []byte) int {
	return utf8LengthFromUTF16(src, true)
}

// UTF32LengthFromUTF16LE equals CountUTF16LE.
func UTF32LengthFromUTF16LE(src []byte) int {
	return countUTF16(src, false)
}

// UTF32LengthFromUTF16BE equals CountUTF16BE.
func UTF32LengthFromUTF16BE(src []byte) int {
	return countUTF16(src, true)
}

// Latin1LengthFromUTF16 returns the number of units in src.
func Latin1LengthFromUTF16(src []byte) int {
	return len(src) / 2
}

// UTF8LengthFromUTF32 returns the number of bytes needed for src.
func UTF8LengthFromUTF32(src []byte) int {
	n := 0
	for i := 0; i+3 < len(src); i += 4 {
		n += utf8Len(rune(uint32(src[i]) | uint32(src[i+1])<<8 | uint32(src[i+2])<<16 | uint32(src[i+3])<<24))
	}
	return n
}

// UTF16LengthFromUTF32 returns the number of 16-bit units needed for src.
func UTF16LengthFromUTF32(src []byte) int {
	n := 0
	for i := 0; i+3 < len(src); i += 4 {
		n++
		if src[i+2] != 0 || src[i+3] != 0 {
			n++
		}
	}
	return n
}

// Latin1LengthFromUTF32 returns the number of units in src.
func Latin1LengthFromUTF32(src []byte) int {
	return len(src) / 4
}

// UTF8LengthFromLatin1 returns the number of bytes needed for src.
func UTF8LengthFromLatin1(src []byte) int {
	k := activeKernels()
	n := len(src)
	i := 0
	for i < len(src) {
		if a := k.asciiPrefix(src[i:]); a > 0 {
			i += a
			continue
		}
		for end := min(i+scalarWindow, len(src)); i < end; i++ {
			if src[i] >= 0x80 {
				n++
			}
		}
	}
	return n
}

// UTF16LengthFromLatin1 returns len(src).
func UTF16LengthFromLatin1(src []byte) int {
	return len(src)
}

// UTF32LengthFromLatin1 returns len(src).
func UTF32LengthFromLatin1(src []byte) int {
	return len(src)
}

// MaxOutputLength returns a number of target units sufficient for any valid
// input of n source units. It returns 0 for unsupported encodings.
func MaxOutputLength(from, to Encoding, n int) int {
	if codecFor(from) == nil || codecFor(to) == nil {
		return 0
	}
	switch to {
	case UTF8:
		switch from {
		case UTF16LE, UTF16BE:
			return 3 * n // a pair of units takes only four bytes
		case UTF32LE:
			return 4 * n
		case Latin1:
			return 2 * n
		}
	case UTF16LE, UTF16BE:
		if from == UTF32LE {
			return 2 * n
		}
	}
	return n
}

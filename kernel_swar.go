package rapidutf

import (
	"encoding/binary"
)

const (
	ascii8Mask    = 0x8080808080808080
	ascii16LEMask = 0xFF80FF80FF80FF80
	ascii16BEMask = 0x80FF80FF80FF80FF
	ascii32Mask   = 0xFFFFFF80FFFFFF80

	lanes16Low  = 0x0001000100010001
	lanes16High = 0x8000800080008000
)

// swarKernel checks lanes 64-bit words per chunk with plain integer
// arithmetic. It is the portable form of a vector kernel: the predicate is
// evaluated for a whole chunk at once and a failing chunk is left to the
// scalar code.
type swarKernel struct {
	name        string
	description string
	lanes       int
	supported   func() bool
}

func (k *swarKernel) Name() string        { return k.name }
func (k *swarKernel) Description() string { return k.description }
func (k *swarKernel) Supported() bool     { return k.supported() }

func (k *swarKernel) chunk() int {
	return 8 * k.lanes
}

// maskedPrefix accepts chunks in which no word has a bit of mask set.
func (k *swarKernel) maskedPrefix(src []byte, mask uint64) int {
	chunk := k.chunk()
	n := 0
	for n+chunk <= len(src) {
		var acc uint64
		for l := n; l < n+chunk; l += 8 {
			acc |= binary.LittleEndian.Uint64(src[l:])
		}
		if acc&mask != 0 {
			break
		}
		n += chunk
	}
	return n
}

func (k *swarKernel) asciiPrefix(src []byte) int {
	return k.maskedPrefix(src, ascii8Mask)
}

func (k *swarKernel) asciiPrefix16(src []byte, bigEndian bool) int {
	if bigEndian {
		return k.maskedPrefix(src, ascii16BEMask)
	}
	return k.maskedPrefix(src, ascii16LEMask)
}

func (k *swarKernel) asciiPrefix32(src []byte) int {
	return k.maskedPrefix(src, ascii32Mask)
}

func (k *swarKernel) bmpPrefix16(src []byte, bigEndian bool) int {
	// A unit is a surrogate when its top five bits are 11011. Words are
	// loaded little-endian, so big-endian units have their bytes swapped.
	mask, pattern := uint64(0xF800F800F800F800), uint64(0xD800D800D800D800)
	if bigEndian {
		mask, pattern = 0x00F800F800F800F8, 0x00D800D800D800D8
	}

	chunk := k.chunk()
	n := 0
	for n+chunk <= len(src) {
		var acc uint64
		for l := n; l < n+chunk; l += 8 {
			x := (binary.LittleEndian.Uint64(src[l:]) & mask) ^ pattern
			acc |= (x - lanes16Low) &^ x & lanes16High // a zero lane is a surrogate
		}
		if acc != 0 {
			break
		}
		n += chunk
	}
	return n
}

func (k *swarKernel) validPrefix32(src []byte) int {
	chunk := k.chunk()
	n := 0
	for n+chunk <= len(src) {
		bad := false
		for l := n; l < n+chunk; l += 8 {
			w := binary.LittleEndian.Uint64(src[l:])
			lo, hi := uint32(w), uint32(w>>32)
			bad = bad || lo > maxRune || lo-surrogateMin < surrogateSpan ||
				hi > maxRune || hi-surrogateMin < surrogateSpan
		}
		if bad {
			break
		}
		n += chunk
	}
	return n
}

func (k *swarKernel) base64Decode(dst, src []byte, table *[256]byte) (nDst, nSrc int) {
	block := k.chunk() // characters per block
	out := block / 4 * 3
	for nSrc+block <= len(src) && nDst+out <= len(dst) {
		var acc byte
		for _, c := range src[nSrc : nSrc+block] {
			acc |= table[c]
		}
		if acc&0xC0 != 0 {
			// whitespace, padding or garbage somewhere in the block
			break
		}
		for q := nSrc; q < nSrc+block; q += 4 {
			v := uint32(table[src[q]])<<18 | uint32(table[src[q+1]])<<12 |
				uint32(table[src[q+2]])<<6 | uint32(table[src[q+3]])
			dst[nDst] = byte(v >> 16)
			dst[nDst+1] = byte(v >> 8)
			dst[nDst+2] = byte(v)
			nDst += 3
		}
		nSrc += block
	}
	return nDst, nSrc
}

func (k *swarKernel) base64Encode(dst, src []byte, alphabet *[64]byte) (nDst, nSrc int) {
	// Six input bytes become eight characters; each group is read as one
	// big-endian word, so two bytes of slack must follow the block.
	group := 6 * k.lanes
	chars := 8 * k.lanes
	for nSrc+group+2 <= len(src) && nDst+chars <= len(dst) {
		for g := nSrc; g < nSrc+group; g += 6 {
			w := binary.BigEndian.Uint64(src[g:])
			for s := 58; s >= 16; s -= 6 {
				dst[nDst] = alphabet[(w>>s)&0x3F]
				nDst++
			}
		}
		nSrc += group
	}
	return nDst, nSrc
}

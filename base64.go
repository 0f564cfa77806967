package rapidutf

import (
	"fmt"
)

const (
	base64Standard = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	base64URLSafe  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	// DefaultLineLength is the line length used by MIME.
	DefaultLineLength = 76
)

// Decode table markers. Every marker has one of the two top bits set, which
// is what the block kernels test for.
const (
	b64Invalid = 0xFF
	b64Space   = 0xFE
	b64Pad     = 0xFD
)

var (
	stdAlphabet [64]byte
	urlAlphabet [64]byte

	stdDecodeLUT  [256]byte
	urlDecodeLUT  [256]byte
	bothDecodeLUT [256]byte
)

func isBase64Space(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r'
}

func init() {
	copy(stdAlphabet[:], base64Standard)
	copy(urlAlphabet[:], base64URLSafe)

	for n := 0; n < 256; n++ {
		c := byte(n)
		var v byte = b64Invalid
		switch {
		case isBase64Space(c):
			v = b64Space
		case c == '=':
			v = b64Pad
		}
		stdDecodeLUT[n], urlDecodeLUT[n], bothDecodeLUT[n] = v, v, v
	}
	for i := 0; i < 64; i++ {
		stdDecodeLUT[base64Standard[i]] = byte(i)
		urlDecodeLUT[base64URLSafe[i]] = byte(i)
		bothDecodeLUT[base64Standard[i]] = byte(i)
		bothDecodeLUT[base64URLSafe[i]] = byte(i)
	}
}

func decodeTable(opts Base64Options) *[256]byte {
	switch {
	case opts.defaultOrURL():
		return &bothDecodeLUT
	case opts.url():
		return &urlDecodeLUT
	default:
		return &stdDecodeLUT
	}
}

func encodeAlphabet(opts Base64Options) *[64]byte {
	if opts.url() {
		return &urlAlphabet
	}
	return &stdAlphabet
}

// MaximalBinaryLengthFromBase64 returns a number of bytes sufficient to
// decode src. It is exact for input without whitespace or garbage.
func MaximalBinaryLengthFromBase64(src []byte) int {
	n := len(src)
	if n > 0 && src[n-1] == '=' {
		n--
		if n > 0 && src[n-1] == '=' {
			n--
		}
	}
	if n%4 <= 1 {
		return n / 4 * 3
	}
	return n/4*3 + n%4 - 1
}

// Base64LengthFromBinary returns the number of characters BinaryToBase64
// writes for n input bytes.
func Base64LengthFromBinary(n int, opts Base64Options) int {
	if opts.padded() {
		return (n + 2) / 3 * 4
	}
	chars := n / 3 * 4
	if rem := n % 3; rem > 0 {
		chars += rem + 1
	}
	return chars
}

// Base64LengthFromBinaryWithLines is Base64LengthFromBinary plus one '\n'
// between consecutive lines of lineLength characters.
func Base64LengthFromBinaryWithLines(n int, opts Base64Options, lineLength int) int {
	chars := Base64LengthFromBinary(n, opts)
	if chars == 0 {
		return 0
	}
	lineLength = normalizeLineLength(lineLength)
	return chars + (chars-1)/lineLength
}

func normalizeLineLength(lineLength int) int {
	return max(lineLength, 4)
}

// BinaryToBase64 encodes src into dst, which must hold
// Base64LengthFromBinary(len(src), opts) bytes, and returns the number of
// characters written. It writes nothing and returns 0 when dst is too small.
func BinaryToBase64(dst, src []byte, opts Base64Options) int {
	if len(dst) < Base64LengthFromBinary(len(src), opts) {
		return 0
	}
	col := 0
	n := encodeBase64(activeKernels(), dst, src, encodeAlphabet(opts), 0, &col)
	return n + encodeBase64Tail(dst[n:], src[len(src)/3*3:], encodeAlphabet(opts), opts.padded(), 0, &col)
}

// BinaryToBase64WithLines is BinaryToBase64 with a '\n' inserted every
// lineLength characters. A lineLength below 4 is treated as 4.
func BinaryToBase64WithLines(dst, src []byte, lineLength int, opts Base64Options) int {
	if len(dst) < Base64LengthFromBinaryWithLines(len(src), opts, lineLength) {
		return 0
	}
	lineLength = normalizeLineLength(lineLength)
	col := 0
	alphabet := encodeAlphabet(opts)
	n := encodeBase64(activeKernels(), dst, src, alphabet, lineLength, &col)
	return n + encodeBase64Tail(dst[n:], src[len(src)/3*3:], alphabet, opts.padded(), lineLength, &col)
}

// EncodeBase64 returns the encoding of src.
func EncodeBase64(src []byte, opts Base64Options) []byte {
	dst := make([]byte, Base64LengthFromBinary(len(src), opts))
	return dst[:BinaryToBase64(dst, src, opts)]
}

// Base64ToBinary decodes src into dst. dst should hold
// MaximalBinaryLengthFromBase64(src) bytes; a shorter dst is reported as
// OutputBufferTooSmall. InputCount is the number of characters consumed, or
// the position of the offending character on failure. OutputCount is the
// number of bytes written, which on failure is the valid prefix.
func Base64ToBinary(dst, src []byte, opts Base64Options, last LastChunkHandling) FullResult {
	return decodeBase64(activeKernels(), dst, src, opts, last)
}

// Base64ToBinarySafe decodes into a dst of any size. When dst fills up it
// returns OutputBufferTooSmall with InputCount at the first chunk not
// decoded, so the call can be resumed from src[InputCount:] with more room.
func Base64ToBinarySafe(dst, src []byte, opts Base64Options, last LastChunkHandling) FullResult {
	return decodeBase64(activeKernels(), dst, src, opts, last)
}

// DecodeBase64 decodes src into a new slice.
func DecodeBase64(src []byte, opts Base64Options, last LastChunkHandling) ([]byte, error) {
	dst := make([]byte, MaximalBinaryLengthFromBase64(src))
	r := Base64ToBinary(dst, src, opts, last)
	if err := r.Err(); err != nil {
		return dst[:r.OutputCount], fmt.Errorf("decode base64: %w", err)
	}
	return dst[:r.OutputCount], nil
}

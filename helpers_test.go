package rapidutf

import (
	"bytes"
	"encoding/binary"
	randv2 "math/rand/v2"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"
)

func newRand() *randv2.Rand {
	return randv2.New(randv2.NewChaCha8([32]byte(bytes.Repeat([]byte{0xBA, 0xAD, 0xF0, 0x0D}, 8))))
}

// randomRunes returns n scalar values; asciiBias raises the share of ASCII.
func randomRunes(r *randv2.Rand, n, asciiBias int) []rune {
	out := make([]rune, n)
	for i := range out {
		switch r.IntN(asciiBias + 5) {
		case 0:
			out[i] = rune(0x80 + r.IntN(0x80))
		case 1:
			out[i] = rune(0x100 + r.IntN(0x800-0x100))
		case 2:
			out[i] = rune(0x800 + r.IntN(surrogateMin-0x800))
		case 3:
			out[i] = rune(0xE000 + r.IntN(0x10000-0xE000))
		case 4:
			out[i] = rune(surrSelf + r.IntN(maxRune+1-surrSelf))
		default:
			out[i] = rune(r.IntN(0x80))
		}
	}
	return out
}

func utf16Bytes(rs []rune, bigEndian bool) []byte {
	return units16(bigEndian, utf16.Encode(rs)...)
}

func utf32Bytes(rs []rune) []byte {
	ws := make([]uint32, len(rs))
	for i, r := range rs {
		ws[i] = uint32(r)
	}
	return units32(ws...)
}

func units16(bigEndian bool, us ...uint16) []byte {
	b := make([]byte, 2*len(us))
	for i, u := range us {
		store16(b[2*i:], u, bigEndian)
	}
	return b
}

func units32(ws ...uint32) []byte {
	b := make([]byte, 4*len(ws))
	for i, w := range ws {
		binary.LittleEndian.PutUint32(b[4*i:], w)
	}
	return b
}

func latin1Bytes(rs []rune) []byte {
	b := make([]byte, len(rs))
	for i, r := range rs {
		b[i] = byte(r)
	}
	return b
}

// forEachImplementation runs fn once per backend, whether or not the CPU
// reports support for it; every backend is portable Go.
func forEachImplementation(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	prev := active.Load()
	t.Cleanup(func() { active.Store(prev) })

	for _, impl := range AvailableImplementations() {
		t.Run(impl.Name(), func(t *testing.T) {
			active.Store(&activeImplementation{impl})
			fn(t)
		})
	}
}

func requireSameBytes(t *testing.T, expected, actual []byte) {
	t.Helper()
	require.True(t, bytes.Equal(expected, actual), "expected % x\nactual   % x", head(expected), head(actual))
}

func head(b []byte) []byte {
	return b[:min(len(b), 64)]
}

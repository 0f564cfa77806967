package rapidutf

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

var unicodeEncodings = []Encoding{UTF8, UTF16LE, UTF16BE, UTF32LE}

func encodeRunes(enc Encoding, rs []rune) []byte {
	switch enc {
	case UTF8:
		return []byte(string(rs))
	case UTF16LE:
		return utf16Bytes(rs, false)
	case UTF16BE:
		return utf16Bytes(rs, true)
	case UTF32LE:
		return utf32Bytes(rs)
	case Latin1:
		return latin1Bytes(rs)
	}
	panic("unexpected encoding " + enc.String())
}

func TestConvertRoundTrip(t *testing.T) {
	r := newRand()

	forEachImplementation(t, func(t *testing.T) {
		for range 50 {
			rs := randomRunes(r, r.IntN(300), r.IntN(100))
			for _, from := range unicodeEncodings {
				for _, to := range unicodeEncodings {
					if from == to {
						continue
					}
					src, expected := encodeRunes(from, rs), encodeRunes(to, rs)

					dst := make([]byte, MaxOutputLength(from, to, len(src)/from.UnitSize())*to.UnitSize())
					n, err := Convert(dst, src, from, to)
					require.NoError(t, err, "%s to %s", from, to)
					requireSameBytes(t, expected, dst[:n*to.UnitSize()])
				}
			}
		}
	})
}

func TestConvertLatin1RoundTrip(t *testing.T) {
	r := newRand()
	forEachImplementation(t, func(t *testing.T) {
		for range 50 {
			src := make([]byte, r.IntN(300))
			for i := range src {
				if r.IntN(3) == 0 {
					src[i] = byte(0x80 + r.IntN(0x80))
				} else {
					src[i] = byte(r.IntN(0x80))
				}
			}
			rs := latin1ToRunes(src)

			for _, to := range unicodeEncodings {
				expected := encodeRunes(to, rs)
				dst := make([]byte, MaxOutputLength(Latin1, to, len(src))*to.UnitSize())
				n, err := Convert(dst, src, Latin1, to)
				require.NoError(t, err)
				requireSameBytes(t, expected, dst[:n*to.UnitSize()])

				back := make([]byte, len(src))
				m, err := Convert(back, expected, to, Latin1)
				require.NoError(t, err)
				requireSameBytes(t, src, back[:m])
			}
		}
	})
}

func latin1ToRunes(b []byte) []rune {
	rs := make([]rune, len(b))
	for i, c := range b {
		rs[i] = rune(c)
	}
	return rs
}

func TestConvertAgainstXText(t *testing.T) {
	r := newRand()
	oracles := []struct {
		name    string
		enc     encoding.Encoding
		convert func(dst, src []byte) int
		unit    int
	}{
		{"UTF-16LE", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), ConvertUTF8ToUTF16LE, 2},
		{"UTF-16BE", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), ConvertUTF8ToUTF16BE, 2},
		{"UTF-32LE", utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), ConvertUTF8ToUTF32, 4},
	}

	forEachImplementation(t, func(t *testing.T) {
		for _, o := range oracles {
			t.Run(o.name, func(t *testing.T) {
				for range 30 {
					src := []byte(string(randomRunes(r, r.IntN(500), r.IntN(50))))
					expected, err := o.enc.NewEncoder().Bytes(src)
					require.NoError(t, err)

					dst := make([]byte, len(src)*4)
					n := o.convert(dst, src)
					requireSameBytes(t, expected, dst[:n*o.unit])

					decoded, err := o.enc.NewDecoder().Bytes(expected)
					require.NoError(t, err)
					requireSameBytes(t, src, decoded)
				}
			})
		}

		t.Run("ISO-8859-1", func(t *testing.T) {
			src := []byte("Grüße, São Paulo! ÿ")
			expected, err := charmap.ISO8859_1.NewEncoder().Bytes(src)
			require.NoError(t, err)

			dst := make([]byte, Latin1LengthFromUTF8(src))
			n := ConvertUTF8ToLatin1(dst, src)
			requireSameBytes(t, expected, dst[:n])

			back := make([]byte, UTF8LengthFromLatin1(expected))
			m := ConvertLatin1ToUTF8(back, expected)
			requireSameBytes(t, src, back[:m])
		})
	})
}

func TestConvertWithErrors(t *testing.T) {
	forEachImplementation(t, func(t *testing.T) {
		dst := make([]byte, 4096)

		t.Run("overlong", func(t *testing.T) {
			r := ConvertUTF8ToUTF16LEWithErrors(dst, []byte("ab\xC0\x80cd"))
			require.Equal(t, FullResult{Error: Overlong, InputCount: 2, OutputCount: 2}, r)
			require.Equal(t, Result{Overlong, 2}, r.Result())
			requireSameBytes(t, []byte{'a', 0, 'b', 0}, dst[:4])
			require.Zero(t, ConvertUTF8ToUTF16LE(dst, []byte("ab\xC0\x80cd")))
		})

		t.Run("surrogate in utf16", func(t *testing.T) {
			src := units16(false, 0x41, 0x42, 0xDC00, 0x43)
			require.Equal(t, FullResult{Error: Surrogate, InputCount: 2, OutputCount: 2}, ConvertUTF16LEToUTF8WithErrors(dst, src))
			require.Equal(t, FullResult{Error: Surrogate, InputCount: 2, OutputCount: 2}, ConvertUTF16LEToUTF32WithErrors(dst, src))
		})

		t.Run("high surrogate at end", func(t *testing.T) {
			src := units16(true, 0x41, 0xD83D)
			require.Equal(t, FullResult{Error: Surrogate, InputCount: 1, OutputCount: 1}, ConvertUTF16BEToUTF8WithErrors(dst, src))
		})

		t.Run("utf32 too large", func(t *testing.T) {
			src := units32(0x1F600, 0x110000)
			require.Equal(t, FullResult{Error: TooLarge, InputCount: 1, OutputCount: 2}, ConvertUTF32ToUTF16LEWithErrors(dst, src))
		})

		t.Run("not latin1", func(t *testing.T) {
			r := ConvertUTF8ToLatin1WithErrors(dst, []byte("aé€"))
			require.Equal(t, FullResult{Error: TooLarge, InputCount: 3, OutputCount: 2}, r)
			requireSameBytes(t, []byte{'a', 0xE9}, dst[:2])
		})

		t.Run("output too small", func(t *testing.T) {
			small := make([]byte, 4)
			require.Equal(t, FullResult{Error: OutputBufferTooSmall, InputCount: 2, OutputCount: 2}, ConvertUTF8ToUTF16LEWithErrors(small, []byte("abc")))

			ascii := []byte(strings.Repeat("a", 100))
			require.Equal(t, FullResult{Error: OutputBufferTooSmall, InputCount: 50, OutputCount: 50}, ConvertUTF8ToUTF16LEWithErrors(make([]byte, 100), ascii))

			require.Equal(t, FullResult{Error: OutputBufferTooSmall, InputCount: 1, OutputCount: 1}, ConvertUTF8ToUTF16LEWithErrors(make([]byte, 4), []byte("a𝄞")))
		})

		t.Run("success counts", func(t *testing.T) {
			src := []byte("h€llo 𝄞")
			r := ConvertUTF8ToUTF32WithErrors(dst, src)
			require.Equal(t, FullResult{Error: Success, InputCount: len(src), OutputCount: 7}, r)
			require.Equal(t, Result{Success, 7}, r.Result())
		})
	})
}

func TestConvertValid(t *testing.T) {
	forEachImplementation(t, func(t *testing.T) {
		dst := make([]byte, 64)
		require.Equal(t, 2, ConvertValidUTF8ToUTF16LE(dst, []byte("ab\xE2\x82")))
		require.Equal(t, 1, ConvertValidUTF16LEToUTF8(dst, units16(false, 0x41, 0xD83D)))
		require.Equal(t, 1, ConvertValidUTF32ToUTF8(dst, []byte{0x41, 0, 0, 0, 0x42}))
		require.Equal(t, 3, ConvertValidUTF8ToUTF32(dst[:12], []byte("abcdef")))
		require.Equal(t, 3, ConvertValidLatin1ToUTF16BE(dst, []byte{0xE9, 'x', 0xFF}))
		requireSameBytes(t, []byte{0, 0xE9, 0, 'x', 0, 0xFF}, dst[:6])

		// garbage must not panic
		r := newRand()
		garbage := make([]byte, 301)
		for range 20 {
			for i := range garbage {
				garbage[i] = byte(r.UintN(256))
			}
			for _, d := range [][]byte{nil, make([]byte, 3), make([]byte, 2000)} {
				ConvertValidUTF8ToUTF16LE(d, garbage)
				ConvertValidUTF8ToUTF32(d, garbage)
				ConvertValidUTF16BEToUTF8(d, garbage)
				ConvertValidUTF32ToUTF16LE(d, garbage)
				ConvertValidUTF16LEToLatin1(d, garbage)
			}
		}
	})
}

func TestChangeEndianness(t *testing.T) {
	src := units16(false, 0x0041, 0xD83D, 0xDE00)
	dst := make([]byte, len(src))
	require.Equal(t, 3, ChangeEndiannessUTF16(dst, src))
	requireSameBytes(t, units16(true, 0x0041, 0xD83D, 0xDE00), dst)

	n, err := Convert(dst, src, UTF16LE, UTF16BE)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = Convert(dst[:2], src, UTF16LE, UTF16BE)
	require.ErrorIs(t, err, ErrOutputBufferTooSmall)
}

func TestConvertDispatchErrors(t *testing.T) {
	dst := make([]byte, 16)

	_, err := Convert(dst, []byte("a"), UTF8, UTF8)
	require.ErrorIs(t, err, ErrUnsupportedEncoding)

	_, err = Convert(dst, []byte("a"), UTF8, UTF32BE)
	require.ErrorIs(t, err, ErrUnsupportedEncoding)

	n, err := Convert(dst, []byte("ab\xED\xA0\x80"), UTF8, UTF16LE)
	require.ErrorIs(t, err, ErrSurrogate)
	require.Equal(t, 2, n)

	var e *Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, 2, e.Position)
	require.Contains(t, err.Error(), "convert UTF-8 to UTF-16LE")
}

func TestLengths(t *testing.T) {
	r := newRand()

	forEachImplementation(t, func(t *testing.T) {
		for range 100 {
			rs := randomRunes(r, r.IntN(400), r.IntN(100))
			u8 := encodeRunes(UTF8, rs)
			u16le := encodeRunes(UTF16LE, rs)
			u16be := encodeRunes(UTF16BE, rs)
			u32 := encodeRunes(UTF32LE, rs)

			require.Equal(t, len(rs), CountUTF8(u8))
			require.Equal(t, len(rs), CountUTF16LE(u16le))
			require.Equal(t, len(rs), CountUTF16BE(u16be))

			require.Equal(t, len(u16le)/2, UTF16LengthFromUTF8(u8))
			require.Equal(t, len(rs), UTF32LengthFromUTF8(u8))
			require.Equal(t, len(u8), UTF8LengthFromUTF16LE(u16le))
			require.Equal(t, len(u8), UTF8LengthFromUTF16BE(u16be))
			require.Equal(t, len(rs), UTF32LengthFromUTF16LE(u16le))
			require.Equal(t, len(rs), UTF32LengthFromUTF16BE(u16be))
			require.Equal(t, len(u8), UTF8LengthFromUTF32(u32))
			require.Equal(t, len(u16le)/2, UTF16LengthFromUTF32(u32))

			forms := map[Encoding][]byte{UTF8: u8, UTF16LE: u16le, UTF16BE: u16be, UTF32LE: u32}
			for from, src := range forms {
				for to, out := range forms {
					n := len(src) / from.UnitSize()
					require.GreaterOrEqual(t, MaxOutputLength(from, to, n), len(out)/to.UnitSize(), "%s to %s", from, to)
				}
			}
		}

		latin := []byte{'a', 0xE9, 0xFF, 'z'}
		require.Equal(t, 6, UTF8LengthFromLatin1(latin))
		require.Equal(t, 4, UTF16LengthFromLatin1(latin))
		require.Equal(t, 4, UTF32LengthFromLatin1(latin))
		require.Equal(t, 2, Latin1LengthFromUTF8([]byte("aé")))
		require.Equal(t, 2, Latin1LengthFromUTF16(units16(false, 'a', 0xE9)))
		require.Equal(t, 2, Latin1LengthFromUTF32(units32('a', 0xE9)))
		require.Equal(t, 2*len(latin), MaxOutputLength(Latin1, UTF8, len(latin)))
		require.Zero(t, MaxOutputLength(UTF32BE, UTF8, 10))

		long := append(bytes.Repeat([]byte{0xE9}, 100), strings.Repeat("x", 100)...)
		require.Equal(t, 300, UTF8LengthFromLatin1(long))
	})
}

func BenchmarkConvertUTF8ToUTF16LE(b *testing.B) {
	src := []byte(string(randomRunes(newRand(), 1<<16, 20)))
	dst := make([]byte, 2*UTF16LengthFromUTF8(src))
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for b.Loop() {
		ConvertUTF8ToUTF16LE(dst, src)
	}
}

package rapidutf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

func resetActive(t *testing.T) {
	t.Helper()
	prev := active.Load()
	active.Store(nil)
	t.Cleanup(func() { active.Store(prev) })
}

func TestAvailableImplementations(t *testing.T) {
	impls := AvailableImplementations()
	require.Len(t, impls, 3)
	require.Equal(t, "wide", impls[0].Name())
	require.Equal(t, "swar", impls[1].Name())
	require.Equal(t, "fallback", impls[2].Name())
	for _, impl := range impls {
		require.NotEmpty(t, impl.Description())
	}
	require.True(t, impls[1].Supported())
	require.True(t, impls[2].Supported())

	// the returned slice is a copy
	impls[0] = nil
	require.NotNil(t, AvailableImplementations()[0])
}

func TestGetImplementation(t *testing.T) {
	impl, err := GetImplementation("SWAR")
	require.NoError(t, err)
	require.Equal(t, "swar", impl.Name())

	_, err = GetImplementation("avx512")
	require.ErrorIs(t, err, ErrUnknownImplementation)
}

func TestActiveImplementation(t *testing.T) {
	resetActive(t)
	t.Setenv(ForceImplementationEnv, "")

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	impl := ActiveImplementation()
	require.True(t, impl.Supported())
	require.NotEqual(t, "fallback", impl.Name())
	require.Equal(t, impl.Name(), Kernel())
	require.Equal(t, 1, logs.FilterMessage("selected implementation").Len())

	// the choice is cached
	ActiveImplementation()
	require.Equal(t, 1, logs.FilterMessage("selected implementation").Len())
}

func TestActiveImplementationConcurrent(t *testing.T) {
	resetActive(t)

	names := make([]string, 64)
	var g errgroup.Group
	for i := range names {
		g.Go(func() error {
			names[i] = ActiveImplementation().Name()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, name := range names {
		require.Equal(t, names[0], name)
	}
}

func TestForceImplementation(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	t.Run("known", func(t *testing.T) {
		resetActive(t)
		t.Setenv(ForceImplementationEnv, "fallback")
		require.Equal(t, "fallback", Kernel())
	})

	t.Run("unknown", func(t *testing.T) {
		resetActive(t)
		t.Setenv(ForceImplementationEnv, "nope")
		require.NotEqual(t, "nope", Kernel())
		require.Equal(t, 1, logs.FilterMessage("ignoring forced implementation").Len())
	})
}

func TestSetActiveImplementation(t *testing.T) {
	resetActive(t)

	fallback, err := GetImplementation("fallback")
	require.NoError(t, err)
	require.NoError(t, SetActiveImplementation(fallback))
	require.Equal(t, "fallback", Kernel())

	require.ErrorIs(t, SetActiveImplementation(nil), ErrUnknownImplementation)

	wide, err := GetImplementation("wide")
	require.NoError(t, err)
	if !wide.Supported() {
		require.Error(t, SetActiveImplementation(wide))
		require.Equal(t, "fallback", Kernel())
	}
}

// TestKernelPrefixes checks that every bulk kernel only accepts what the
// scalar code would.
func TestKernelPrefixes(t *testing.T) {
	r := newRand()
	for _, impl := range AvailableImplementations() {
		t.Run(impl.Name(), func(t *testing.T) {
			for range 200 {
				src := []byte(string(randomRunes(r, r.IntN(300), 50+r.IntN(1000))))

				n := impl.asciiPrefix(src)
				require.True(t, ValidateASCII(src[:n]))

				u16 := utf16Bytes(randomRunes(r, r.IntN(200), r.IntN(30)), r.IntN(2) == 0)
				for _, be := range []bool{false, true} {
					n = impl.bmpPrefix16(u16, be)
					require.Zero(t, n%2)
					c := utf16LECodec
					if be {
						c = utf16BECodec
					}
					for i := 0; i < n; i += 2 {
						_, size, code := c.decode(u16[i : i+2])
						require.Equal(t, Success, code)
						require.Equal(t, 2, size)
					}
					n = impl.asciiPrefix16(u16, be)
					for i := 0; i < n; i += 2 {
						require.Less(t, load16(u16[i:], be), uint16(0x80))
					}
				}

				u32 := utf32Bytes(randomRunes(r, r.IntN(100), r.IntN(30)))
				if len(u32) > 0 && r.IntN(2) == 0 {
					u32[r.IntN(len(u32))] = byte(r.UintN(256))
				}
				n = impl.validPrefix32(u32)
				require.True(t, ValidateUTF32(u32[:n]))
				n = impl.asciiPrefix32(u32)
				require.True(t, ValidateUTF32(u32[:n]))
			}
		})
	}
}

// TestImplementationsAgree compares every backend with fallback on inputs
// with errors at every offset around the chunk sizes.
func TestImplementationsAgree(t *testing.T) {
	fallback, err := GetImplementation("fallback")
	require.NoError(t, err)

	run := func(impl Implementation, fn func() any) any {
		prev := active.Load()
		defer active.Store(prev)
		active.Store(&activeImplementation{impl})
		return fn()
	}

	inputs := [][]byte{}
	for n := 0; n < 140; n++ {
		base := strings.Repeat("a", n)
		inputs = append(inputs,
			[]byte(base),
			[]byte(base+"\xC0\x80"),
			[]byte(base+"é€𝄞"+base),
			[]byte(base+"\xED\xA0\x80"),
			[]byte(base+"\xF0\x9F"),
		)
	}
	r := newRand()
	for range 100 {
		b := []byte(string(randomRunes(r, r.IntN(500), r.IntN(300))))
		if len(b) > 0 {
			b[r.IntN(len(b))] ^= byte(1 << r.IntN(8))
		}
		inputs = append(inputs, b)
	}

	calls := map[string]func(src []byte) any{
		"ValidateUTF8":    func(src []byte) any { return ValidateUTF8WithErrors(src) },
		"ValidateASCII":   func(src []byte) any { return ValidateASCIIWithErrors(src) },
		"ValidateUTF16LE": func(src []byte) any { return ValidateUTF16LEWithErrors(src) },
		"ValidateUTF16BE": func(src []byte) any { return ValidateUTF16BEWithErrors(src) },
		"ValidateUTF32":   func(src []byte) any { return ValidateUTF32WithErrors(src) },
		"UTF8ToUTF16LE": func(src []byte) any {
			dst := make([]byte, 2*len(src))
			return []any{ConvertUTF8ToUTF16LEWithErrors(dst, src), string(dst)}
		},
		"UTF8ToUTF32": func(src []byte) any {
			dst := make([]byte, 4*len(src))
			return []any{ConvertUTF8ToUTF32WithErrors(dst, src), string(dst)}
		},
		"UTF16LEToUTF8": func(src []byte) any {
			dst := make([]byte, 3*len(src))
			return []any{ConvertUTF16LEToUTF8WithErrors(dst, src), string(dst)}
		},
		"UTF32ToUTF16BE": func(src []byte) any {
			dst := make([]byte, 2*len(src))
			return []any{ConvertUTF32ToUTF16BEWithErrors(dst, src), string(dst)}
		},
		"UTF8ToLatin1": func(src []byte) any {
			dst := make([]byte, len(src))
			return []any{ConvertUTF8ToLatin1WithErrors(dst, src), string(dst)}
		},
		"Lengths": func(src []byte) any {
			return []int{CountUTF8(src), UTF16LengthFromUTF8(src), UTF8LengthFromLatin1(src), UTF8LengthFromUTF16LE(src)}
		},
		"Base64": func(src []byte) any {
			enc := EncodeBase64(src, Base64Default)
			dst := make([]byte, MaximalBinaryLengthFromBase64(src))
			return []any{string(enc), Base64ToBinary(dst, src, Base64DefaultAcceptGarbage, LastChunkLoose), string(dst)}
		},
	}

	for _, impl := range AvailableImplementations() {
		t.Run(impl.Name(), func(t *testing.T) {
			for name, call := range calls {
				for i, src := range inputs {
					expected := run(fallback, func() any { return call(src) })
					actual := run(impl, func() any { return call(src) })
					require.Equal(t, expected, actual, "%s input %d", name, i)
				}
			}
		})
	}
}

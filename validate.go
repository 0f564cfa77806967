package rapidutf

import "fmt"

// validate runs c's reference decoder over src, letting bulk skip whatever
// the active kernel proves valid. It returns the result in units of c.
func validate(src []byte, c *codec, bulk func(src []byte) int) Result {
	i := 0
	for i < len(src) {
		if n := bulk(src[i:]); n > 0 {
			i += n
			continue
		}
		// A sequence straddling the window end is finished by the scalar
		// loop, so the kernel always resumes on a unit boundary.
		end := min(i+scalarWindow*c.unit, len(src))
		for i < end {
			_, size, code := c.decode(src[i:])
			if code != Success {
				return Result{Error: code, Count: i / c.unit}
			}
			i += size
		}
	}
	return Result{Error: Success, Count: len(src) / c.unit}
}

// ValidateUTF8 reports whether src is well-formed UTF-8.
func ValidateUTF8(src []byte) bool {
	return ValidateUTF8WithErrors(src).Ok()
}

// ValidateUTF8WithErrors validates src as UTF-8. On failure Count is the
// index of the lead byte of the first invalid sequence.
func ValidateUTF8WithErrors(src []byte) Result {
	k := activeKernels()
	return validate(src, utf8Codec, k.asciiPrefix)
}

// ValidateASCII reports whether every byte of src is below 0x80.
func ValidateASCII(src []byte) bool {
	return ValidateASCIIWithErrors(src).Ok()
}

// ValidateASCIIWithErrors reports the first byte of src at or above 0x80 as
// TooLarge.
func ValidateASCIIWithErrors(src []byte) Result {
	k := activeKernels()
	i := 0
	for i < len(src) {
		if n := k.asciiPrefix(src[i:]); n > 0 {
			i += n
			continue
		}
		end := min(i+scalarWindow, len(src))
		for ; i < end; i++ {
			if src[i] >= 0x80 {
				return Result{Error: TooLarge, Count: i}
			}
		}
	}
	return Result{Error: Success, Count: len(src)}
}

// ValidateUTF16LE reports whether src is well-formed little-endian UTF-16.
func ValidateUTF16LE(src []byte) bool {
	return ValidateUTF16LEWithErrors(src).Ok()
}

// ValidateUTF16LEWithErrors validates src as little-endian UTF-16. Count is
// in 16-bit units.
func ValidateUTF16LEWithErrors(src []byte) Result {
	k := activeKernels()
	return validate(src, utf16LECodec, func(b []byte) int { return k.bmpPrefix16(b, false) })
}

// ValidateUTF16BE reports whether src is well-formed big-endian UTF-16.
func ValidateUTF16BE(src []byte) bool {
	return ValidateUTF16BEWithErrors(src).Ok()
}

// ValidateUTF16BEWithErrors validates src as big-endian UTF-16. Count is in
// 16-bit units.
func ValidateUTF16BEWithErrors(src []byte) Result {
	k := activeKernels()
	return validate(src, utf16BECodec, func(b []byte) int { return k.bmpPrefix16(b, true) })
}

// ValidateUTF32 reports whether src is well-formed little-endian UTF-32.
func ValidateUTF32(src []byte) bool {
	return ValidateUTF32WithErrors(src).Ok()
}

// ValidateUTF32WithErrors validates src as little-endian UTF-32. Count is in
// 32-bit units.
func ValidateUTF32WithErrors(src []byte) Result {
	k := activeKernels()
	return validate(src, utf32Codec, k.validPrefix32)
}

// Validate reports whether src is well-formed in enc. Latin-1 input is
// always valid; unsupported encodings are never valid.
func Validate(enc Encoding, src []byte) bool {
	r, err := ValidateWithErrors(enc, src)
	return err == nil && r.Ok()
}

// ValidateWithErrors dispatches to the validator for enc. The error is
// non-nil only when enc is not a single supported encoding.
func ValidateWithErrors(enc Encoding, src []byte) (Result, error) {
	switch enc {
	case UTF8:
		return ValidateUTF8WithErrors(src), nil
	case UTF16LE:
		return ValidateUTF16LEWithErrors(src), nil
	case UTF16BE:
		return ValidateUTF16BEWithErrors(src), nil
	case UTF32LE:
		return ValidateUTF32WithErrors(src), nil
	case Latin1:
		return Result{Error: Success, Count: len(src)}, nil
	}
	return Result{}, fmt.Errorf("validate %s: %w", enc, ErrUnsupportedEncoding)
}

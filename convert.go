package rapidutf

import (
	"fmt"
)

// Every converter comes in three forms. ConvertXToY returns the number of
// units written, or 0 when src is invalid or dst too small.
// ConvertXToYWithErrors stops at the first invalid unit and reports both
// the input position and the number of units already written.
// ConvertValidXToY skips validation; the result is unspecified for invalid
// input but never reads or writes out of bounds.
//
// Size dst with the matching length function or MaxOutputLength.

// ConvertUTF8ToUTF16LE converts UTF-8 to little-endian UTF-16.
func ConvertUTF8ToUTF16LE(dst, src []byte) int {
	return convert(dst, src, utf8Codec, utf16LECodec)
}

// ConvertUTF8ToUTF16LEWithErrors is ConvertUTF8ToUTF16LE reporting where the first invalid unit is.
func ConvertUTF8ToUTF16LEWithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, utf8Codec, utf16LECodec)
}

// ConvertValidUTF8ToUTF16LE is ConvertUTF8ToUTF16LE for input known to be valid.
func ConvertValidUTF8ToUTF16LE(dst, src []byte) int {
	return convertValid(dst, src, utf8Codec, utf16LECodec)
}

// ConvertUTF8ToUTF16BE converts UTF-8 to big-endian UTF-16.
func ConvertUTF8ToUTF16BE(dst, src []byte) int {
	return convert(dst, src, utf8Codec, utf16BECodec)
}

// ConvertUTF8ToUTF16BEWithErrors is ConvertUTF8ToUTF16BE reporting where the first invalid unit is.
func ConvertUTF8ToUTF16BEWithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, utf8Codec, utf16BECodec)
}

// ConvertValidUTF8ToUTF16BE is ConvertUTF8ToUTF16BE for input known to be valid.
func ConvertValidUTF8ToUTF16BE(dst, src []byte) int {
	return convertValid(dst, src, utf8Codec, utf16BECodec)
}

// ConvertUTF8ToUTF32 converts UTF-8 to UTF-32.
func ConvertUTF8ToUTF32(dst, src []byte) int {
	return convert(dst, src, utf8Codec, utf32Codec)
}

// ConvertUTF8ToUTF32WithErrors is ConvertUTF8ToUTF32 reporting where the first invalid unit is.
func ConvertUTF8ToUTF32WithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, utf8Codec, utf32Codec)
}

// ConvertValidUTF8ToUTF32 is ConvertUTF8ToUTF32 for input known to be valid.
func ConvertValidUTF8ToUTF32(dst, src []byte) int {
	return convertValid(dst, src, utf8Codec, utf32Codec)
}

// ConvertUTF8ToLatin1 converts UTF-8 to Latin-1.
func ConvertUTF8ToLatin1(dst, src []byte) int {
	return convert(dst, src, utf8Codec, latin1Codec)
}

// ConvertUTF8ToLatin1WithErrors is ConvertUTF8ToLatin1 reporting where the first invalid unit is.
func ConvertUTF8ToLatin1WithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, utf8Codec, latin1Codec)
}

// ConvertValidUTF8ToLatin1 is ConvertUTF8ToLatin1 for input known to be valid.
func ConvertValidUTF8ToLatin1(dst, src []byte) int {
	return convertValid(dst, src, utf8Codec, latin1Codec)
}

// ConvertUTF16LEToUTF8 converts little-endian UTF-16 to UTF-8.
func ConvertUTF16LEToUTF8(dst, src []byte) int {
	return convert(dst, src, utf16LECodec, utf8Codec)
}

// ConvertUTF16LEToUTF8WithErrors is ConvertUTF16LEToUTF8 reporting where the first invalid unit is.
func ConvertUTF16LEToUTF8WithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, utf16LECodec, utf8Codec)
}

// ConvertValidUTF16LEToUTF8 is ConvertUTF16LEToUTF8 for input known to be valid.
func ConvertValidUTF16LEToUTF8(dst, src []byte) int {
	return convertValid(dst, src, utf16LECodec, utf8Codec)
}

// ConvertUTF16LEToUTF32 converts little-endian UTF-16 to UTF-32.
func ConvertUTF16LEToUTF32(dst, src []byte) int {
	return convert(dst, src, utf16LECodec, utf32Codec)
}

// ConvertUTF16LEToUTF32WithErrors is ConvertUTF16LEToUTF32 reporting where the first invalid unit is.
func ConvertUTF16LEToUTF32WithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, utf16LECodec, utf32Codec)
}

// ConvertValidUTF16LEToUTF32 is ConvertUTF16LEToUTF32 for input known to be valid.
func ConvertValidUTF16LEToUTF32(dst, src []byte) int {
	return convertValid(dst, src, utf16LECodec, utf32Codec)
}

// ConvertUTF16LEToLatin1 converts little-endian UTF-16 to Latin-1.
func ConvertUTF16LEToLatin1(dst, src []byte) int {
	return convert(dst, src, utf16LECodec, latin1Codec)
}

// ConvertUTF16LEToLatin1WithErrors is ConvertUTF16LEToLatin1 reporting where the first invalid unit is.
func ConvertUTF16LEToLatin1WithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, utf16LECodec, latin1Codec)
}

// ConvertValidUTF16LEToLatin1 is ConvertUTF16LEToLatin1 for input known to be valid.
func ConvertValidUTF16LEToLatin1(dst, src []byte) int {
	return convertValid(dst, src, utf16LECodec, latin1Codec)
}

// ConvertUTF16BEToUTF8 converts big-endian UTF-16 to UTF-8.
func ConvertUTF16BEToUTF8(dst, src []byte) int {
	return convert(dst, src, utf16BECodec, utf8Codec)
}

// ConvertUTF16BEToUTF8WithErrors is ConvertUTF16BEToUTF8 reporting where the first invalid unit is.
func ConvertUTF16BEToUTF8WithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, utf16BECodec, utf8Codec)
}

// ConvertValidUTF16BEToUTF8 is ConvertUTF16BEToUTF8 for input known to be valid.
func ConvertValidUTF16BEToUTF8(dst, src []byte) int {
	return convertValid(dst, src, utf16BECodec, utf8Codec)
}

// ConvertUTF16BEToUTF32 converts big-endian UTF-16 to UTF-32.
func ConvertUTF16BEToUTF32(dst, src []byte) int {
	return convert(dst, src, utf16BECodec, utf32Codec)
}

// ConvertUTF16BEToUTF32WithErrors is ConvertUTF16BEToUTF32 reporting where the first invalid unit is.
func ConvertUTF16BEToUTF32WithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, utf16BECodec, utf32Codec)
}

// ConvertValidUTF16BEToUTF32 is ConvertUTF16BEToUTF32 for input known to be valid.
func ConvertValidUTF16BEToUTF32(dst, src []byte) int {
	return convertValid(dst, src, utf16BECodec, utf32Codec)
}

// ConvertUTF16BEToLatin1 converts big-endian UTF-16 to Latin-1.
func ConvertUTF16BEToLatin1(dst, src []byte) int {
	return convert(dst, src, utf16BECodec, latin1Codec)
}

// ConvertUTF16BEToLatin1WithErrors is ConvertUTF16BEToLatin1 reporting where the first invalid unit is.
func ConvertUTF16BEToLatin1WithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, utf16BECodec, latin1Codec)
}

// ConvertValidUTF16BEToLatin1 is ConvertUTF16BEToLatin1 for input known to be valid.
func ConvertValidUTF16BEToLatin1(dst, src []byte) int {
	return convertValid(dst, src, utf16BECodec, latin1Codec)
}

// ConvertUTF32ToUTF8 converts UTF-32 to UTF-8.
func ConvertUTF32ToUTF8(dst, src []byte) int {
	return convert(dst, src, utf32Codec, utf8Codec)
}

// ConvertUTF32ToUTF8WithErrors is ConvertUTF32ToUTF8 reporting where the first invalid unit is.
func ConvertUTF32ToUTF8WithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, utf32Codec, utf8Codec)
}

// ConvertValidUTF32ToUTF8 is ConvertUTF32ToUTF8 for input known to be valid.
func ConvertValidUTF32ToUTF8(dst, src []byte) int {
	return convertValid(dst, src, utf32Codec, utf8Codec)
}

// ConvertUTF32ToUTF16LE converts UTF-32 to little-endian UTF-16.
func ConvertUTF32ToUTF16LE(dst, src []byte) int {
	return convert(dst, src, utf32Codec, utf16LECodec)
}

// ConvertUTF32ToUTF16LEWithErrors is ConvertUTF32ToUTF16LE reporting where the first invalid unit is.
func ConvertUTF32ToUTF16LEWithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, utf32Codec, utf16LECodec)
}

// ConvertValidUTF32ToUTF16LE is ConvertUTF32ToUTF16LE for input known to be valid.
func ConvertValidUTF32ToUTF16LE(dst, src []byte) int {
	return convertValid(dst, src, utf32Codec, utf16LECodec)
}

// ConvertUTF32ToUTF16BE converts UTF-32 to big-endian UTF-16.
func ConvertUTF32ToUTF16BE(dst, src []byte) int {
	return convert(dst, src, utf32Codec, utf16BECodec)
}

// ConvertUTF32ToUTF16BEWithErrors is ConvertUTF32ToUTF16BE reporting where the first invalid unit is.
func ConvertUTF32ToUTF16BEWithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, utf32Codec, utf16BECodec)
}

// ConvertValidUTF32ToUTF16BE is ConvertUTF32ToUTF16BE for input known to be valid.
func ConvertValidUTF32ToUTF16BE(dst, src []byte) int {
	return convertValid(dst, src, utf32Codec, utf16BECodec)
}

// ConvertUTF32ToLatin1 converts UTF-32 to Latin-1.
func ConvertUTF32ToLatin1(dst, src []byte) int {
	return convert(dst, src, utf32Codec, latin1Codec)
}

// ConvertUTF32ToLatin1WithErrors is ConvertUTF32ToLatin1 reporting where the first invalid unit is.
func ConvertUTF32ToLatin1WithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, utf32Codec, latin1Codec)
}

// ConvertValidUTF32ToLatin1 is ConvertUTF32ToLatin1 for input known to be valid.
func ConvertValidUTF32ToLatin1(dst, src []byte) int {
	return convertValid(dst, src, utf32Codec, latin1Codec)
}

// ConvertLatin1ToUTF8 converts Latin-1 to UTF-8.
func ConvertLatin1ToUTF8(dst, src []byte) int {
	return convert(dst, src, latin1Codec, utf8Codec)
}

// ConvertLatin1ToUTF8WithErrors is ConvertLatin1ToUTF8 reporting where the first invalid unit is.
func ConvertLatin1ToUTF8WithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, latin1Codec, utf8Codec)
}

// ConvertValidLatin1ToUTF8 is ConvertLatin1ToUTF8 for input known to be valid.
func ConvertValidLatin1ToUTF8(dst, src []byte) int {
	return convertValid(dst, src, latin1Codec, utf8Codec)
}

// ConvertLatin1ToUTF16LE converts Latin-1 to little-endian UTF-16.
func ConvertLatin1ToUTF16LE(dst, src []byte) int {
	return convert(dst, src, latin1Codec, utf16LECodec)
}

// ConvertLatin1ToUTF16LEWithErrors is ConvertLatin1ToUTF16LE reporting where the first invalid unit is.
func ConvertLatin1ToUTF16LEWithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, latin1Codec, utf16LECodec)
}

// ConvertValidLatin1ToUTF16LE is ConvertLatin1ToUTF16LE for input known to be valid.
func ConvertValidLatin1ToUTF16LE(dst, src []byte) int {
	return convertValid(dst, src, latin1Codec, utf16LECodec)
}

// ConvertLatin1ToUTF16BE converts Latin-1 to big-endian UTF-16.
func ConvertLatin1ToUTF16BE(dst, src []byte) int {
	return convert(dst, src, latin1Codec, utf16BECodec)
}

// ConvertLatin1ToUTF16BEWithErrors is ConvertLatin1ToUTF16BE reporting where the first invalid unit is.
func ConvertLatin1ToUTF16BEWithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, latin1Codec, utf16BECodec)
}

// ConvertValidLatin1ToUTF16BE is ConvertLatin1ToUTF16BE for input known to be valid.
func ConvertValidLatin1ToUTF16BE(dst, src []byte) int {
	return convertValid(dst, src, latin1Codec, utf16BECodec)
}

// ConvertLatin1ToUTF32 converts Latin-1 to UTF-32.
func ConvertLatin1ToUTF32(dst, src []byte) int {
	return convert(dst, src, latin1Codec, utf32Codec)
}

// ConvertLatin1ToUTF32WithErrors is ConvertLatin1ToUTF32 reporting where the first invalid unit is.
func ConvertLatin1ToUTF32WithErrors(dst, src []byte) FullResult {
	return convertWithErrors(dst, src, latin1Codec, utf32Codec)
}

// ConvertValidLatin1ToUTF32 is ConvertLatin1ToUTF32 for input known to be valid.
func ConvertValidLatin1ToUTF32(dst, src []byte) int {
	return convertValid(dst, src, latin1Codec, utf32Codec)
}

// ChangeEndiannessUTF16 swaps the bytes of every 16-bit unit of src into
// dst and returns the number of units written. It converts between UTF-16LE
// and UTF-16BE in either direction.
func ChangeEndiannessUTF16(dst, src []byte) int {
	n := min(len(src), len(dst)) / 2
	for u := 0; u < n; u++ {
		dst[2*u], dst[2*u+1] = src[2*u+1], src[2*u]
	}
	return n
}

// Convert converts src from one encoding to another and returns the number
// of units written to dst. Converting between UTF-16 byte orders swaps
// bytes without validating.
func Convert(dst, src []byte, from, to Encoding) (int, error) {
	if from == to {
		return 0, fmt.Errorf("convert %s to itself: %w", from, ErrUnsupportedEncoding)
	}
	if (from == UTF16LE && to == UTF16BE) || (from == UTF16BE && to == UTF16LE) {
		if len(dst) < len(src)/2*2 {
			return 0, fmt.Errorf("convert %s to %s: %w", from, to, ErrOutputBufferTooSmall)
		}
		return ChangeEndiannessUTF16(dst, src), nil
	}

	fc, tc := codecFor(from), codecFor(to)
	if fc == nil || tc == nil {
		return 0, fmt.Errorf("convert %s to %s: %w", from, to, ErrUnsupportedEncoding)
	}
	r := convertWithErrors(dst, src, fc, tc)
	if err := r.Err(); err != nil {
		return r.OutputCount, fmt.Errorf("convert %s to %s: %w", from, to, err)
	}
	return r.OutputCount, nil
}

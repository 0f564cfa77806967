package rapidutf

import "bytes"

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
)

// CheckBOM returns the encoding announced by a byte order mark at the start
// of src and the length of the mark in bytes, or Unspecified and 0.
func CheckBOM(src []byte) (Encoding, int) {
	// the UTF-32LE mark starts with the UTF-16LE one
	for _, m := range []struct {
		enc Encoding
		bom []byte
	}{
		{UTF8, bomUTF8},
		{UTF32LE, bomUTF32LE},
		{UTF16LE, bomUTF16LE},
		{UTF16BE, bomUTF16BE},
		{UTF32BE, bomUTF32BE},
	} {
		if bytes.HasPrefix(src, m.bom) {
			return m.enc, len(m.bom)
		}
	}
	return Unspecified, 0
}

// BOMBytes returns a copy of the byte order mark of enc, or nil when enc
// has none.
func BOMBytes(enc Encoding) []byte {
	var bom []byte
	switch enc {
	case UTF8:
		bom = bomUTF8
	case UTF16LE:
		bom = bomUTF16LE
	case UTF16BE:
		bom = bomUTF16BE
	case UTF32LE:
		bom = bomUTF32LE
	case UTF32BE:
		bom = bomUTF32BE
	default:
		return nil
	}
	return bytes.Clone(bom)
}

// DetectEncodings returns every encoding src could be in. A byte order mark
// decides alone; otherwise the result is the set of UTF-8, UTF-16LE and
// UTF-32LE under which src validates.
func DetectEncodings(src []byte) Encoding {
	if enc, _ := CheckBOM(src); enc != Unspecified {
		return enc
	}
	var set Encoding
	if ValidateUTF8(src) {
		set |= UTF8
	}
	if len(src)%2 == 0 && ValidateUTF16LE(src) {
		set |= UTF16LE
	}
	if len(src)%4 == 0 && ValidateUTF32(src) {
		set |= UTF32LE
	}
	return set
}

// AutodetectEncoding returns the most likely single encoding of src, ranking
// UTF-8 over UTF-16LE over UTF-32LE, or Unspecified.
func AutodetectEncoding(src []byte) Encoding {
	set := DetectEncodings(src)
	for _, enc := range []Encoding{UTF8, UTF16LE, UTF32LE, UTF16BE, UTF32BE} {
		if set&enc != 0 {
			return enc
		}
	}
	return Unspecified
}

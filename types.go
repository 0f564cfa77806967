package rapidutf

// Encoding identifies a text encoding. The values are bit flags so that
// DetectEncodings can report several candidates at once; they are part of
// the stable interface and must not change.
type Encoding int

const (
	Unspecified Encoding = 0
	UTF8        Encoding = 1
	UTF16LE     Encoding = 2
	UTF16BE     Encoding = 4
	UTF32LE     Encoding = 8
	UTF32BE     Encoding = 16 // recognised by BOM only, never converted
	Latin1      Encoding = 32
)

// UTF32 is the only supported UTF-32 layout.
const UTF32 = UTF32LE

func (e Encoding) String() string {
	switch e {
	case Unspecified:
		return "unspecified"
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case UTF32LE:
		return "UTF-32LE"
	case UTF32BE:
		return "UTF-32BE"
	case Latin1:
		return "Latin-1"
	}
	return "multiple"
}

// UnitSize is the number of bytes in one code unit of e, or 0 when e is not
// a single supported encoding.
func (e Encoding) UnitSize() int {
	switch e {
	case UTF8, Latin1:
		return 1
	case UTF16LE, UTF16BE:
		return 2
	case UTF32LE, UTF32BE:
		return 4
	}
	return 0
}

// ErrorCode classifies the outcome of a call. The numeric values are stable.
type ErrorCode int

const (
	Success                ErrorCode = 0
	HeaderBits             ErrorCode = 1  // lead byte 0xF8..0xFF
	TooShort               ErrorCode = 2  // missing or invalid continuation byte, truncated unit
	TooLong                ErrorCode = 3  // continuation byte where a lead byte was expected
	Overlong               ErrorCode = 4  // code point encoded with more bytes than needed
	TooLarge               ErrorCode = 5  // above 0x10FFFF, or not representable in the target
	Surrogate              ErrorCode = 6  // unpaired or encoded surrogate
	InvalidBase64Character ErrorCode = 7  // byte outside the alphabet, or misplaced padding
	Base64InputRemainder   ErrorCode = 8  // single leftover six-bit group or missing padding
	Base64ExtraBits        ErrorCode = 9  // non-zero discarded bits in the last group
	OutputBufferTooSmall   ErrorCode = 10 // dst filled before src was consumed
	Other                  ErrorCode = 11 // fast path signal, never returned to callers
)

// Result reports the outcome of validation. On success Count is the number
// of units validated or written, on failure the index of the first offending
// input unit.
type Result struct {
	Error ErrorCode
	Count int
}

// Ok reports whether r is a success.
func (r Result) Ok() bool {
	return r.Error == Success
}

// FullResult is returned by the defensive converters and the Base64
// decoders, where a failing call may still have written a valid prefix.
// InputCount is the number of input units consumed, which on failure is the
// index of the offending unit. OutputCount is the number of units written.
type FullResult struct {
	Error       ErrorCode
	InputCount  int
	OutputCount int
}

// Ok reports whether r is a success.
func (r FullResult) Ok() bool {
	return r.Error == Success
}

// Result projects r onto the single-count form: the output count on
// success, the input position on failure.
func (r FullResult) Result() Result {
	if r.Error == Success {
		return Result{Error: Success, Count: r.OutputCount}
	}
	return Result{Error: r.Error, Count: r.InputCount}
}

// Base64Options selects the alphabet, the padding policy and the garbage
// tolerance. The numeric values are stable.
type Base64Options int

const (
	Base64Default                   Base64Options = 0  // standard alphabet, padded output
	Base64URL                       Base64Options = 1  // URL alphabet, unpadded output
	Base64ReversePadding            Base64Options = 2  // flips the default padding policy
	Base64DefaultNoPadding          Base64Options = Base64Default | Base64ReversePadding
	Base64URLWithPadding            Base64Options = Base64URL | Base64ReversePadding
	Base64DefaultAcceptGarbage      Base64Options = 4
	Base64URLAcceptGarbage          Base64Options = Base64URL | Base64DefaultAcceptGarbage
	Base64DefaultOrURL              Base64Options = 8 // decode either alphabet
	Base64DefaultOrURLAcceptGarbage Base64Options = Base64DefaultOrURL | Base64DefaultAcceptGarbage
)

func (o Base64Options) url() bool {
	return o&Base64URL != 0
}

func (o Base64Options) acceptGarbage() bool {
	return o&Base64DefaultAcceptGarbage != 0
}

func (o Base64Options) defaultOrURL() bool {
	return o&Base64DefaultOrURL != 0
}

// padded reports whether encoded output carries '=' padding.
func (o Base64Options) padded() bool {
	return o.url() == (o&Base64ReversePadding != 0)
}

// LastChunkHandling governs a final chunk of fewer than four characters.
// The numeric values are stable.
type LastChunkHandling int

const (
	LastChunkLoose             LastChunkHandling = 0 // decode 2 or 3 leftover characters
	LastChunkStrict            LastChunkHandling = 1 // require padding and zero extra bits
	LastChunkStopBeforePartial LastChunkHandling = 2 // stop before an unpadded partial chunk
	LastChunkOnlyFullChunks    LastChunkHandling = 3 // reject any unpadded partial chunk
)

// Base64State is the carry-over of a streaming Base64 decode: up to three
// six-bit values of an incomplete chunk. Count is the number of valid
// entries in Partial.
type Base64State struct {
	Partial [3]byte
	Count   int
	pads    int // '=' seen since the last alphabet character
}

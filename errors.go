package rapidutf

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrHeaderBits             = errors.New("invalid UTF-8 lead byte")
	ErrTooShort               = errors.New("truncated sequence")
	ErrTooLong                = errors.New("unexpected continuation byte")
	ErrOverlong               = errors.New("overlong UTF-8 sequence")
	ErrTooLarge               = errors.New("code point out of range")
	ErrSurrogate              = errors.New("invalid surrogate")
	ErrInvalidBase64Character = errors.New("invalid base64 character")
	ErrBase64InputRemainder   = errors.New("incomplete base64 chunk")
	ErrBase64ExtraBits        = errors.New("non-zero trailing base64 bits")
	ErrOutputBufferTooSmall   = errors.New("output buffer too small")

	ErrUnsupportedEncoding   = errors.New("unsupported encoding")
	ErrUnknownImplementation = errors.New("unknown implementation")
)

var codeErrors = [...]error{
	HeaderBits:             ErrHeaderBits,
	TooShort:               ErrTooShort,
	TooLong:                ErrTooLong,
	Overlong:               ErrOverlong,
	TooLarge:               ErrTooLarge,
	Surrogate:              ErrSurrogate,
	InvalidBase64Character: ErrInvalidBase64Character,
	Base64InputRemainder:   ErrBase64InputRemainder,
	Base64ExtraBits:        ErrBase64ExtraBits,
	OutputBufferTooSmall:   ErrOutputBufferTooSmall,
}

var codeNames = [...]string{
	Success:                "SUCCESS",
	HeaderBits:             "HEADER_BITS",
	TooShort:               "TOO_SHORT",
	TooLong:                "TOO_LONG",
	Overlong:               "OVERLONG",
	TooLarge:               "TOO_LARGE",
	Surrogate:              "SURROGATE",
	InvalidBase64Character: "INVALID_BASE64_CHARACTER",
	Base64InputRemainder:   "BASE64_INPUT_REMAINDER",
	Base64ExtraBits:        "BASE64_EXTRA_BITS",
	OutputBufferTooSmall:   "OUTPUT_BUFFER_TOO_SMALL",
	Other:                  "OTHER",
}

func (c ErrorCode) String() string {
	if c >= 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}

// Err returns the sentinel error for c, or nil for Success.
func (c ErrorCode) Err() error {
	if c == Success {
		return nil
	}
	if c > 0 && int(c) < len(codeErrors) && codeErrors[c] != nil {
		return codeErrors[c]
	}
	return fmt.Errorf("rapidutf: unexpected error code %d", int(c))
}

// Error is a failure at a known input position. It matches the sentinel of
// its code with errors.Is.
type Error struct {
	Code     ErrorCode
	Position int
}

func (e *Error) Error() string {
	return "rapidutf: " + e.Code.Err().Error() + " at position " + strconv.Itoa(e.Position)
}

func (e *Error) Unwrap() error {
	return e.Code.Err()
}

// Err returns nil on success, otherwise an *Error carrying the position.
func (r Result) Err() error {
	if r.Error == Success {
		return nil
	}
	return &Error{Code: r.Error, Position: r.Count}
}

// Err returns nil on success, otherwise an *Error at InputCount.
func (r FullResult) Err() error {
	if r.Error == Success {
		return nil
	}
	return &Error{Code: r.Error, Position: r.InputCount}
}

package rapidutf

import (
	"errors"
	"io"
	"sync"
)

// Base64Encoder is an [io.WriteCloser] that writes the Base64 form of what is
// written to it.
type Base64Encoder struct {
	w          io.Writer
	alphabet   *[64]byte
	padded     bool
	lineLength int
	column     int

	rem  [3]byte
	nrem int
	buf  []byte

	writeMu sync.Mutex
}

// NewBase64Encoder returns a new [Base64Encoder] writing to w. A lineLength
// of 0 disables line wrapping; other values below 4 are treated as 4.
//
// It is the caller's responsibility to call Close on the [Base64Encoder]
// when done, which flushes a final partial group.
func NewBase64Encoder(w io.Writer, opts Base64Options, lineLength int) *Base64Encoder {
	e := &Base64Encoder{
		alphabet: encodeAlphabet(opts),
		padded:   opts.padded(),
	}
	if lineLength > 0 {
		e.lineLength = normalizeLineLength(lineLength)
	}
	e.Reset(w)
	return e
}

// Reset discards the [Base64Encoder] e's state and makes it equivalent to the
// result of its original state from [NewBase64Encoder], but writing to w
// instead.
func (e *Base64Encoder) Reset(w io.Writer) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	e.w = w
	e.column = 0
	e.nrem = 0
}

var errWriterNil = errors.New("writer is nil")

// Write writes the Base64 form of p to the underlying [io.Writer]. Up to two
// bytes are held back until the next Write or Close.
func (e *Base64Encoder) Write(p []byte) (n int, err error) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.w == nil {
		return 0, errWriterNil
	}

	n = len(p)

	if e.nrem > 0 {
		k := copy(e.rem[e.nrem:], p)
		e.nrem += k
		p = p[k:]
		if e.nrem < 3 {
			return n, nil
		}
		if err := e.encode(e.rem[:]); err != nil {
			return 0, err
		}
		e.nrem = 0
	}

	full := len(p) / 3 * 3
	if full > 0 {
		if err := e.encode(p[:full]); err != nil {
			return 0, err
		}
	}
	e.nrem = copy(e.rem[:], p[full:])
	return n, nil
}

func (e *Base64Encoder) grow(chars int) []byte {
	size := chars
	if e.lineLength > 0 {
		size += chars/e.lineLength + 1
	}
	if grow := size - len(e.buf); grow > 0 {
		e.buf = append(e.buf, make([]byte, grow)...)
	}
	return e.buf
}

func (e *Base64Encoder) encode(p []byte) error {
	buf := e.grow(len(p) / 3 * 4)
	k := encodeBase64(activeKernels(), buf, p, e.alphabet, e.lineLength, &e.column)
	_, err := e.w.Write(buf[:k])
	return err
}

// Close flushes the final partial group. It is an error to call Write after
// calling Close.
func (e *Base64Encoder) Close() error {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.w == nil {
		return errWriterNil
	}
	defer func() { e.w = nil }()

	if e.nrem == 0 {
		return nil
	}
	buf := e.grow(4)
	k := encodeBase64Tail(buf, e.rem[:e.nrem], e.alphabet, e.padded, e.lineLength, &e.column)
	e.nrem = 0
	_, err := e.w.Write(buf[:k])
	return err
}

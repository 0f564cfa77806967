package rapidutf

// Base64StreamDecoder decodes Base64 text that arrives in pieces, such as
// lines of a MIME body. An incomplete chunk is carried from one call to the
// next, so the input may be split anywhere.
//
// Positions in results are offsets into the concatenated input since the
// last Reset.
type Base64StreamDecoder struct {
	d      base64Decoder
	opts   Base64Options
	last   LastChunkHandling
	failed FullResult
}

// NewBase64StreamDecoder returns a decoder applying opts to every piece and
// last to the end of the stream.
func NewBase64StreamDecoder(opts Base64Options, last LastChunkHandling) *Base64StreamDecoder {
	s := &Base64StreamDecoder{opts: opts, last: last}
	s.Reset()
	return s
}

// Reset discards the decoder's state so it can decode a new stream.
func (s *Base64StreamDecoder) Reset() {
	s.d = newBase64Decoder(activeKernels(), s.opts, s.last)
	s.failed = FullResult{}
}

// State returns the carried partial chunk.
func (s *Base64StreamDecoder) State() Base64State {
	return s.d.Base64State
}

// DecodedLen returns the room Decode needs for a piece of n characters.
func (s *Base64StreamDecoder) DecodedLen(n int) int {
	return (s.d.Count + n) / 4 * 3
}

// Decode decodes src into dst. dst must hold DecodedLen(len(src)) bytes,
// otherwise nothing is consumed and OutputBufferTooSmall is returned. After
// a decoding error every further call returns the same error until Reset.
func (s *Base64StreamDecoder) Decode(dst, src []byte) FullResult {
	if s.failed.Error != Success {
		return FullResult{Error: s.failed.Error, InputCount: s.failed.InputCount}
	}
	if len(dst) < s.DecodedLen(len(src)) {
		return FullResult{Error: OutputBufferTooSmall, InputCount: s.d.offset}
	}
	n, code, pos := s.d.run(dst, src)
	if code != Success {
		s.failed = FullResult{Error: code, InputCount: pos, OutputCount: n}
		return s.failed
	}
	return FullResult{Error: Success, InputCount: s.d.offset, OutputCount: n}
}

// Finish ends the stream, writing the bytes of a final partial chunk into
// dst, which needs room for two bytes. The decoder is Reset afterwards.
func (s *Base64StreamDecoder) Finish(dst []byte) FullResult {
	if s.failed.Error != Success {
		r := FullResult{Error: s.failed.Error, InputCount: s.failed.InputCount}
		s.Reset()
		return r
	}
	n, code, pos := s.d.finish(dst, s.last)
	s.Reset()
	return FullResult{Error: code, InputCount: pos, OutputCount: n}
}

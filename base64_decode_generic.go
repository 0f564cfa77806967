package rapidutf

// base64Decoder is the scalar Base64 decoder shared by the one-shot and the
// streaming entry points. Positions it reports are offsets into the whole
// input seen so far, so a chunk may start in an earlier call.
type base64Decoder struct {
	k       kernels
	table   *[256]byte
	garbage bool
	strict  bool
	padded  bool

	Base64State
	offset     int // position of src[0] in the current call
	chunkStart int // position of Partial[0]
	lastData   int // position of the most recent alphabet character
	padPos     int // position of the first pending '='
}

func newBase64Decoder(k kernels, opts Base64Options, last LastChunkHandling) base64Decoder {
	return base64Decoder{
		k:       k,
		table:   decodeTable(opts),
		garbage: opts.acceptGarbage(),
		strict:  last == LastChunkStrict,
		padded:  opts.padded(),
	}
}

// group packs the pending values into the top of a 24-bit group.
func (s *Base64State) group() uint32 {
	var g uint32
	for i := 0; i < 3; i++ {
		g <<= 6
		if i < s.Count {
			g |= uint32(s.Partial[i])
		}
	}
	return g << 6
}

// extraBits reports whether the bits dropped when closing a partial chunk
// are non-zero.
func (s *Base64State) extraBits() bool {
	switch s.Count {
	case 2:
		return s.Partial[1]&0x0F != 0
	case 3:
		return s.Partial[2]&0x03 != 0
	}
	return false
}

// flushPartial writes the one or two bytes of a chunk of two or three values
// closed by padding or by the end of input.
func (d *base64Decoder) flushPartial(dst []byte) (int, ErrorCode, int) {
	n := d.Count - 1
	if d.strict && d.extraBits() {
		return 0, Base64ExtraBits, d.lastData
	}
	if len(dst) < n {
		return 0, OutputBufferTooSmall, d.chunkStart
	}
	g := d.group()
	dst[0] = byte(g >> 16)
	if n == 2 {
		dst[1] = byte(g >> 8)
	}
	d.Count = 0
	return n, Success, 0
}

// run decodes src into dst, carrying an incomplete chunk in the state. It
// returns the number of bytes written and, on failure, the error with its
// input position.
//
// An '=' is only padding when nothing but whitespace follows it, so it is
// held as pending until the next alphabet character or the end of input.
// Under accept-garbage pending '=' followed by data are skipped.
func (d *base64Decoder) run(dst, src []byte) (int, ErrorCode, int) {
	i, j := 0, 0
	for i < len(src) {
		if d.Count == 0 && d.pads == 0 {
			if nDst, nSrc := d.k.base64Decode(dst[j:], src[i:], d.table); nSrc > 0 {
				i += nSrc
				j += nDst
				continue
			}
		}

		end := min(i+scalarWindow, len(src))
		for ; i < end; i++ {
			pos := d.offset + i
			v := d.table[src[i]]
			switch {
			case v < 64:
				if d.pads > 0 {
					if !d.garbage {
						return j, InvalidBase64Character, d.padPos
					}
					d.pads = 0
				}
				if d.Count == 0 {
					d.chunkStart = pos
				}
				d.lastData = pos
				if d.Count < 3 {
					d.Partial[d.Count] = v
					d.Count++
					continue
				}
				if len(dst)-j < 3 {
					return j, OutputBufferTooSmall, d.chunkStart
				}
				g := d.group() | uint32(v)
				dst[j] = byte(g >> 16)
				dst[j+1] = byte(g >> 8)
				dst[j+2] = byte(g)
				j += 3
				d.Count = 0

			case v == b64Space:

			case v == b64Pad:
				if d.pads == 0 {
					d.padPos = pos
				}
				d.pads++

			case d.garbage:

			case d.pads > 0:
				// the pending '=' are not trailing, the first is the culprit
				return j, InvalidBase64Character, d.padPos

			default:
				return j, InvalidBase64Character, pos
			}
		}
	}
	d.offset += len(src)
	return j, Success, 0
}

// finish closes the input. On success the position is the number of
// characters consumed.
func (d *base64Decoder) finish(dst []byte, last LastChunkHandling) (int, ErrorCode, int) {
	switch {
	case d.pads > 0:
		return d.finishPadded(dst, last)
	case d.Count == 0:
		return 0, Success, d.offset
	case last == LastChunkStopBeforePartial:
		return 0, Success, d.chunkStart
	case last == LastChunkOnlyFullChunks, d.Count == 1, d.strict && d.padded:
		return 0, Base64InputRemainder, d.chunkStart
	}
	return d.flushAt(dst, d.offset)
}

// finishPadded closes input ending in '='. Without accept-garbage the
// number of '=' must complete the final chunk; a mismatch is reported at
// the first '='.
func (d *base64Decoder) finishPadded(dst []byte, last LastChunkHandling) (int, ErrorCode, int) {
	if d.garbage {
		switch d.Count {
		case 0:
			return 0, Success, d.offset
		case 1:
			return 0, Base64InputRemainder, d.chunkStart
		}
		return d.flushAt(dst, d.offset)
	}

	switch {
	case d.pads <= 2 && d.Count >= 2 && d.Count+d.pads == 4:
		return d.flushAt(dst, d.offset)
	case last == LastChunkStopBeforePartial && d.Count == 2 && d.pads == 1:
		return 0, Success, d.chunkStart
	}
	return 0, InvalidBase64Character, d.padPos
}

func (d *base64Decoder) flushAt(dst []byte, pos int) (int, ErrorCode, int) {
	n, code, p := d.flushPartial(dst)
	if code != Success {
		return 0, code, p
	}
	return n, Success, pos
}

func decodeBase64(k kernels, dst, src []byte, opts Base64Options, last LastChunkHandling) FullResult {
	d := newBase64Decoder(k, opts, last)
	n, code, pos := d.run(dst, src)
	if code != Success {
		return FullResult{Error: code, InputCount: pos, OutputCount: n}
	}
	m, code, pos := d.finish(dst[n:], last)
	return FullResult{Error: code, InputCount: pos, OutputCount: n + m}
}

package rapidutf

// transcode converts src from one encoding to another, stopping at the
// first invalid source unit or when dst cannot take the next code point.
// ASCII chunks accepted by the kernel are widened or narrowed directly;
// everything else goes through the reference decoder and encoder.
func transcode(k kernels, dst, src []byte, from, to *codec) FullResult {
	i, j := 0, 0 // byte offsets into src and dst
	for i < len(src) {
		if n := from.ascii(k, src[i:]); n > 0 {
			units := min(n/from.unit, (len(dst)-j)/to.unit)
			if units > 0 {
				copyASCII(dst[j:], to, src[i:], from, units)
				i += units * from.unit
				j += units * to.unit
				continue
			}
			// dst is full; the scalar step below reports it
		}

		end := min(i+scalarWindow*from.unit, len(src))
		for i < end {
			r, size, code := from.decode(src[i:])
			if code != Success {
				return FullResult{Error: code, InputCount: i / from.unit, OutputCount: j / to.unit}
			}
			w, code := to.encode(dst[j:], r)
			if code != Success {
				return FullResult{Error: code, InputCount: i / from.unit, OutputCount: j / to.unit}
			}
			i += size
			j += w
		}
	}
	return FullResult{Error: Success, InputCount: len(src) / from.unit, OutputCount: j / to.unit}
}

// transcodeValid is transcode without validation. It stops quietly at a
// truncated final sequence or when dst is full, and returns the number of
// units written.
func transcodeValid(k kernels, dst, src []byte, from, to *codec) int {
	i, j := 0, 0
	for i < len(src) {
		if n := from.ascii(k, src[i:]); n > 0 {
			units := min(n/from.unit, (len(dst)-j)/to.unit)
			if units == 0 {
				break
			}
			copyASCII(dst[j:], to, src[i:], from, units)
			i += units * from.unit
			j += units * to.unit
			continue
		}

		end := min(i+scalarWindow*from.unit, len(src))
		for i < end {
			r, size := from.decodeValid(src[i:])
			if size == 0 {
				return j / to.unit
			}
			w, code := to.encode(dst[j:], r)
			if code != Success {
				return j / to.unit
			}
			i += size
			j += w
		}
	}
	return j / to.unit
}

func convert(dst, src []byte, from, to *codec) int {
	r := transcode(activeKernels(), dst, src, from, to)
	if r.Error != Success {
		return 0
	}
	return r.OutputCount
}

func convertWithErrors(dst, src []byte, from, to *codec) FullResult {
	return transcode(activeKernels(), dst, src, from, to)
}

func convertValid(dst, src []byte, from, to *codec) int {
	return transcodeValid(activeKernels(), dst, src, from, to)
}

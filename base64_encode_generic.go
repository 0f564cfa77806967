package rapidutf

// putBase64 writes c at dst[j], breaking the line first when col has reached
// lineLength. A lineLength of 0 disables wrapping.
func putBase64(dst []byte, j int, c byte, lineLength int, col *int) int {
	if lineLength > 0 && *col == lineLength {
		dst[j] = '\n'
		j++
		*col = 0
	}
	dst[j] = c
	*col++
	return j + 1
}

// encodeBase64 encodes the complete three-byte groups of src into dst and
// returns the number of bytes written. col is the column of the next
// character, carried across calls.
func encodeBase64(k kernels, dst, src []byte, alphabet *[64]byte, lineLength int, col *int) int {
	full := len(src) / 3 * 3
	i, j := 0, 0
	for i < full {
		if lineLength > 0 && *col == lineLength {
			dst[j] = '\n'
			j++
			*col = 0
		}

		// the kernel never crosses a line break, and gets the bytes after
		// its last group as read slack
		room := full - i
		if lineLength > 0 {
			room = min(room, (lineLength-*col)/4*3)
		}
		if room > 0 {
			nDst, nSrc := k.base64Encode(dst[j:j+room/3*4], src[i:min(len(src), i+room+2)], alphabet)
			if nSrc > 0 {
				i += nSrc
				j += nDst
				*col += nDst
				continue
			}
		}

		end := min(i+3*scalarWindow, full)
		for ; i < end; i += 3 {
			g := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])
			j = putBase64(dst, j, alphabet[g>>18&0x3F], lineLength, col)
			j = putBase64(dst, j, alphabet[g>>12&0x3F], lineLength, col)
			j = putBase64(dst, j, alphabet[g>>6&0x3F], lineLength, col)
			j = putBase64(dst, j, alphabet[g&0x3F], lineLength, col)
			if lineLength > 0 && *col == lineLength {
				i += 3
				break
			}
		}
	}
	return j
}

// encodeBase64Tail encodes a final group of one or two bytes, padding it to
// four characters when padded is set.
func encodeBase64Tail(dst, rem []byte, alphabet *[64]byte, padded bool, lineLength int, col *int) int {
	var g uint32
	chars := 0
	switch len(rem) {
	case 1:
		g = uint32(rem[0]) << 16
		chars = 2
	case 2:
		g = uint32(rem[0])<<16 | uint32(rem[1])<<8
		chars = 3
	default:
		return 0
	}

	j := 0
	for c, s := 0, 18; c < chars; c, s = c+1, s-6 {
		j = putBase64(dst, j, alphabet[g>>s&0x3F], lineLength, col)
	}
	if padded {
		for c := chars; c < 4; c++ {
			j = putBase64(dst, j, '=', lineLength, col)
		}
	}
	return j
}

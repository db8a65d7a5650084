package block

// appendVarint encodes v (which must fit in 32 bits, exactly covering the
// uint32 coordinates the queue stores) as a little-endian PrefixVarint:
// the number of trailing zero bits in the first byte gives the count of
// additional bytes that follow (spec.md §4.3). This lets the decoder learn
// the encoded length from one byte instead of a continuation-bit scan.
func appendVarint(buf []byte, v uint64) []byte {
	switch {
	case v < 1<<7:
		return append(buf, byte(v<<1)|0b1)
	case v < 1<<14:
		return append(buf, byte(v<<2)|0b10, byte(v>>6))
	case v < 1<<21:
		return append(buf, byte(v<<3)|0b100, byte(v>>5), byte(v>>13))
	case v < 1<<28:
		return append(buf, byte(v<<4)|0b1000, byte(v>>4), byte(v>>12), byte(v>>20))
	default:
		// 5-byte form: the marker byte carries no value bits at all, so it
		// alone can signal "4 full bytes follow", covering up to 32 bits.
		return append(buf, 0b10000, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
}

// readVarint decodes a PrefixVarint from the front of buf, returning the
// value and the number of bytes consumed.
func readVarint(buf []byte) (v uint64, n int) {
	b0 := buf[0]
	switch {
	case b0&0b1 != 0:
		return uint64(b0) >> 1, 1
	case b0&0b10 != 0:
		return uint64(b0)>>2 | uint64(buf[1])<<6, 2
	case b0&0b100 != 0:
		return uint64(b0)>>3 | uint64(buf[1])<<5 | uint64(buf[2])<<13, 3
	case b0&0b1000 != 0:
		return uint64(b0)>>4 | uint64(buf[1])<<4 | uint64(buf[2])<<12 | uint64(buf[3])<<20, 4
	default:
		return uint64(buf[1]) | uint64(buf[2])<<8 | uint64(buf[3])<<16 | uint64(buf[4])<<24, 5
	}
}

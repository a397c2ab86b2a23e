package huffman

import (
	mathbits "math/bits"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// payloadLen returns the number of bytes needed to hold bitCount bits.
func payloadLen(bitCount uint64) uint64 {
	n := bitCount / 8
	if bitCount%8 != 0 {
		n++
	}
	return n
}

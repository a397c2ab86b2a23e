package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Frequencies holds the number of occurrences of each Symbol, indexed by
// Symbol.
type Frequencies [NumSymbols]uint64

// CountFrequencies tallies the occurrences of each byte value in data.
func CountFrequencies(data []byte) Frequencies {
	var freqs Frequencies
	freqs.Add(data)
	return freqs
}

// Add tallies the bytes in data on top of the existing counts.
func (freqs *Frequencies) Add(data []byte) {
	for _, b := range data {
		freqs[b]++
	}
}

// Total returns the sum of all counts, i.e. the length of the input.
func (freqs *Frequencies) Total() uint64 {
	var sum uint64
	for _, freq := range freqs {
		sum += freq
	}
	return sum
}

// NumPresent returns the number of Symbols with a non-zero count.
func (freqs *Frequencies) NumPresent() int {
	var n int
	for _, freq := range freqs {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Dump writes a programmer-readable debugging dump of the non-zero counts to
// the given writer.
func (freqs *Frequencies) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Frequencies{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", freqs.Total())
	for symbol, freq := range freqs {
		if freq != 0 {
			fmt.Fprintf(&buf, "\tCount(%d) = %d\n", symbol, freq)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

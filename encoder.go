package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Encoder implements an encoder for Huffman codes built from byte
// frequencies.
type Encoder struct {
	tree  *Tree
	table CodeTable
}

// Init initializes this Encoder.  The argument lists the frequency (i.e.
// number of occurrences) of each Symbol.  Symbols with a frequency of 0 get
// no Code.  If every frequency is 0, Init returns ErrEmptyInput.
func (e *Encoder) Init(freqs Frequencies) error {
	tree, err := BuildTree(freqs)
	if err != nil {
		return err
	}

	*e = Encoder{
		tree:  tree,
		table: AssignCodes(tree),
	}
	return nil
}

// Encode returns the Code for a Symbol.  The second return value is false
// if the Symbol did not occur in the frequencies given to Init.
func (e *Encoder) Encode(symbol Symbol) (Code, bool) {
	return e.table.Lookup(symbol)
}

// EncodeBytes maps every byte of data through the code table and packs the
// resulting bits.  It returns the packed bytes and the number of bits in
// them, not counting padding.
func (e *Encoder) EncodeBytes(data []byte) ([]byte, uint64, error) {
	p := NewBitPacker()
	for offset, b := range data {
		hc, found := e.table.Lookup(Symbol(b))
		if !found {
			return nil, 0, fmt.Errorf("byte %d at offset %d: %w", b, offset, ErrSymbolNotInTable)
		}
		if err := p.WriteCode(hc); err != nil {
			return nil, 0, err
		}
	}
	payload, err := p.Bytes()
	if err != nil {
		return nil, 0, err
	}
	return payload, p.Len(), nil
}

// Table returns a copy of the code table.
func (e *Encoder) Table() CodeTable {
	return e.table
}

// Tree returns the Huffman tree the codes were derived from.
func (e *Encoder) Tree() *Tree {
	return e.tree
}

// MinSize is the bit length of the shortest legal code.
func (e *Encoder) MinSize() byte {
	return e.table.MinSize()
}

// MaxSize is the bit length of the longest legal code.
func (e *Encoder) MaxSize() byte {
	return e.table.MaxSize()
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.MaxSize())
	for _, symbol := range e.table.Symbols() {
		hc, _ := e.table.Lookup(symbol)
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Compress encodes data into a Container.  It fails with ErrEmptyInput if
// data is empty.
func Compress(data []byte) (*Container, error) {
	var e Encoder
	if err := e.Init(CountFrequencies(data)); err != nil {
		return nil, err
	}

	payload, bitCount, err := e.EncodeBytes(data)
	if err != nil {
		return nil, err
	}

	return &Container{
		Table:    e.Table(),
		BitCount: bitCount,
		Payload:  payload,
	}, nil
}

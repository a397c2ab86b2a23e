package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its Code, if it has one.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	count   int
}

// AssignCodes walks the tree and records the root-to-leaf path of every
// leaf, '0' for each left edge and '1' for each right edge.
//
// A tree consisting of a single leaf has no edges at all, so that leaf is
// given the one-bit code "0" instead of the empty code.
//
func AssignCodes(t *Tree) CodeTable {
	var table CodeTable

	root := t.nodes[t.root]
	if root.isLeaf() {
		table.Set(root.symbol, MakeCode(1, 0))
		return table
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		index int32
		code  Code
		x     byte
	}

	stack := make([]stackItem, 0, log2uint32(uint32(len(t.nodes))))

	processChild := func(child int32, hc Code) {
		nd := t.nodes[child]
		if nd.isLeaf() {
			table.Set(nd.symbol, hc)
			return
		}
		stack = append(stack, stackItem{index: child, code: hc})
	}

	stack = append(stack, stackItem{index: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++

		nd := t.nodes[top.index]
		hc := top.code
		switch x {
		case 0:
			assert.Assertf(hc.Size < MaxCodeSize, "code for node %d exceeds %d bits", top.index, MaxCodeSize)
			processChild(nd.left, hc.Append(false))
		case 1:
			processChild(nd.right, hc.Append(true))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}

	return table
}

// Set assigns a Code to a Symbol, replacing any previous Code.
func (table *CodeTable) Set(symbol Symbol, hc Code) {
	if !table.present[symbol] {
		table.count++
	}
	table.codes[symbol] = hc
	table.present[symbol] = true
}

// Delete removes the Code for a Symbol, if any.
func (table *CodeTable) Delete(symbol Symbol) {
	if table.present[symbol] {
		table.count--
	}
	table.codes[symbol] = Code{}
	table.present[symbol] = false
}

// Lookup returns the Code for a Symbol.  The second return value is false
// if the Symbol has no Code.
func (table *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	return table.codes[symbol], table.present[symbol]
}

// Len returns the number of Symbols with a Code.
func (table *CodeTable) Len() int {
	return table.count
}

// Symbols returns the Symbols with a Code, in ascending order.
func (table *CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, table.count)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if table.present[symbol] {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// MinSize is the bit length of the shortest Code, or 0 for an empty table.
func (table *CodeTable) MinSize() byte {
	minSize, _ := table.sizeRange()
	return minSize
}

// MaxSize is the bit length of the longest Code, or 0 for an empty table.
func (table *CodeTable) MaxSize() byte {
	_, maxSize := table.sizeRange()
	return maxSize
}

func (table *CodeTable) sizeRange() (minSize byte, maxSize byte) {
	var hasMinMax bool
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if !table.present[symbol] {
			continue
		}
		size := table.codes[symbol].Size
		if !hasMinMax {
			hasMinMax = true
			minSize, maxSize = size, size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}
	return
}

// Validate checks that every Code is between 1 and MaxCodeSize bits long and
// that no Code is a prefix of another.
func (table *CodeTable) Validate() error {
	symbols := table.Symbols()
	for _, symbol := range symbols {
		hc := table.codes[symbol]
		if hc.Size == 0 {
			return fmt.Errorf("symbol %d has an empty code", symbol)
		}
		if hc.Size > MaxCodeSize {
			return fmt.Errorf("symbol %d has a %d-bit code, max %d", symbol, hc.Size, MaxCodeSize)
		}
		if hc.Size < MaxCodeSize && hc.Bits>>hc.Size != 0 {
			return fmt.Errorf("symbol %d has stray bits beyond its %d-bit code", symbol, hc.Size)
		}
	}
	for i, a := range symbols {
		for _, b := range symbols[i+1:] {
			ac, bc := table.codes[a], table.codes[b]
			if ac.HasPrefix(bc) || bc.HasPrefix(ac) {
				return fmt.Errorf("codes for symbols %d (%s) and %d (%s) are not prefix-free", a, ac, b, bc)
			}
		}
	}
	return nil
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (table *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", table.MaxSize())
	for _, symbol := range table.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", symbol, table.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of the table.
func (table *CodeTable) String() string {
	minSize, maxSize := table.sizeRange()
	return fmt.Sprintf("(Huffman code table with %d symbols, with coded lengths of %d .. %d bits)", table.count, minSize, maxSize)
}

var _ fmt.Stringer = (*CodeTable)(nil)

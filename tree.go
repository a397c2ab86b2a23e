package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

const noChild = int32(-1)

// node is one entry of a Tree's arena.  Leaves have no children; internal
// nodes have both, and are the only owner of each.
type node struct {
	weight uint64
	left   int32
	right  int32
	symbol Symbol
}

func (n node) isLeaf() bool {
	return n.left == noChild
}

// Tree is a Huffman tree.  Its nodes are stored in an arena and refer to
// their children by index.
type Tree struct {
	nodes []node
	root  int32
}

// BuildTree constructs the Huffman tree for the given frequencies.  Every
// Symbol with a non-zero count becomes one leaf.  If no Symbol has a non-zero
// count, ErrEmptyInput is returned.
//
// The two lightest pending trees are merged repeatedly: the lightest becomes
// the left child and the next lightest the right child.
//
func BuildTree(freqs Frequencies) (*Tree, error) {
	nodes := make([]node, 0, 2*NumSymbols-1)

	var q treeQueue
	for symbol := 0; symbol < NumSymbols; symbol++ {
		freq := freqs[symbol]
		if freq == 0 {
			continue
		}
		index := int32(len(nodes))
		nodes = append(nodes, node{weight: freq, left: noChild, right: noChild, symbol: Symbol(symbol)})
		q.add(index, freq)
	}

	if q.Len() == 0 {
		return nil, ErrEmptyInput
	}

	for q.Len() > 1 {
		a, _ := q.remove()
		b, _ := q.remove()

		sum := a.weight + b.weight
		assert.Assertf(sum >= a.weight, "weight overflow: %d + %d", a.weight, b.weight)

		index := int32(len(nodes))
		nodes = append(nodes, node{weight: sum, left: a.index, right: b.index})
		q.add(index, sum)
	}

	root, _ := q.remove()
	return &Tree{nodes: nodes, root: root.index}, nil
}

// Weight returns the weight of the root, which equals the input length.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].weight
}

// NumLeaves returns the number of distinct Symbols in the tree.
func (t *Tree) NumLeaves() int {
	var n int
	for _, nd := range t.nodes {
		if nd.isLeaf() {
			n++
		}
	}
	return n
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line in depth-first order.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.Weight())

	type stackItem struct {
		index int32
		depth int
	}

	stack := []stackItem{{index: t.root, depth: 1}}
	for len(stack) != 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := t.nodes[item.index]
		indent := strings.Repeat("\t", item.depth)
		if nd.isLeaf() {
			fmt.Fprintf(&buf, "%sLeaf(%d) = %d\n", indent, nd.symbol, nd.weight)
			continue
		}
		fmt.Fprintf(&buf, "%sNode = %d\n", indent, nd.weight)
		stack = append(stack, stackItem{nd.right, item.depth + 1}, stackItem{nd.left, item.depth + 1})
	}

	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

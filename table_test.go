package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeTable_SetDelete(t *testing.T) {
	var table CodeTable
	require.Equal(t, 0, table.Len())

	table.Set('x', MakeCode(1, 0))
	table.Set('y', MakeCode(1, 1))
	table.Set('y', MakeCode(2, 2))
	require.Equal(t, 2, table.Len())
	require.Equal(t, []Symbol{'x', 'y'}, table.Symbols())

	hc, found := table.Lookup('y')
	require.True(t, found)
	require.Equal(t, MakeCode(2, 2), hc)

	table.Delete('x')
	table.Delete('z')
	require.Equal(t, 1, table.Len())
	_, found = table.Lookup('x')
	require.False(t, found)
}

func TestCodeTable_Validate(t *testing.T) {
	type testRow struct {
		name  string
		codes map[Symbol]string
		ok    bool
	}

	testData := [...]testRow{
		{name: "single", codes: map[Symbol]string{'a': "0"}, ok: true},
		{name: "pair", codes: map[Symbol]string{'a': "0", 'b': "1"}, ok: true},
		{name: "incomplete", codes: map[Symbol]string{'a': "0", 'b': "10"}, ok: true},
		{name: "prefix", codes: map[Symbol]string{'a': "0", 'b': "01"}, ok: false},
		{name: "duplicate", codes: map[Symbol]string{'a': "10", 'b': "10"}, ok: false},
		{name: "empty-code", codes: map[Symbol]string{'a': ""}, ok: false},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var table CodeTable
			for symbol, str := range row.codes {
				hc, err := ParseCode(str)
				require.NoError(t, err)
				table.Set(symbol, hc)
			}
			err := table.Validate()
			if row.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}

	var table CodeTable
	table.Set('a', MakeCode(65, 0))
	require.Error(t, table.Validate())

	table.Set('a', MakeCode(2, 0x7))
	require.Error(t, table.Validate())
}

func TestAssignCodes(t *testing.T) {
	tree, err := BuildTree(makeTestFrequencies())
	require.NoError(t, err)
	table := AssignCodes(tree)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tLookup(0) = \"1100\"\n",
		"\tLookup(1) = \"1101\"\n",
		"\tLookup(2) = \"100\"\n",
		"\tLookup(3) = \"101\"\n",
		"\tLookup(4) = \"111\"\n",
		"\tLookup(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	require.Equal(t, expectDump, buf.String())
	require.Equal(t, "(Huffman code table with 6 symbols, with coded lengths of 1 .. 4 bits)", table.String())
	require.NoError(t, table.Validate())
}

func TestAssignCodes_AllSymbols(t *testing.T) {
	var freqs Frequencies
	for i := range freqs {
		freqs[i] = uint64(i%7) + 1
	}
	tree, err := BuildTree(freqs)
	require.NoError(t, err)

	table := AssignCodes(tree)
	require.Equal(t, NumSymbols, table.Len())
	require.NoError(t, table.Validate())
}

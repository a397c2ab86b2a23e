package huffman

import (
	"testing"
)

func TestParseCode(t *testing.T) {
	type testRow struct {
		input  string
		expect Code
	}

	testData := [...]testRow{
		{input: "", expect: Code{}},
		{input: "0", expect: MakeCode(1, 0x0)},
		{input: "1", expect: MakeCode(1, 0x1)},
		{input: "0110", expect: MakeCode(4, 0x6)},
		{input: "1100101", expect: MakeCode(7, 0x65)},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			actual, err := ParseCode(row.input)
			if err != nil {
				t.Fatalf("ParseCode failed: %v", err)
			}
			if actual != row.expect {
				t.Errorf("wrong code:\n\texpect: %#v\n\tactual: %#v", row.expect, actual)
			}
			if row.input != "" {
				if str := actual.String(); str != "\""+row.input+"\"" {
					t.Errorf("wrong string: expect %q, actual %s", row.input, str)
				}
			}
		})
	}

	if _, err := ParseCode("012"); err == nil {
		t.Errorf("expected error for invalid character")
	}
}

func TestCode_String(t *testing.T) {
	if str := (Code{}).String(); str != "\"\"" {
		t.Errorf("wrong empty string: %s", str)
	}
	if str := MakeCode(5, 0x3).String(); str != "\"00011\"" {
		t.Errorf("wrong string: %s", str)
	}
}

func TestCode_Bit(t *testing.T) {
	hc := MakeCode(4, 0xa) // "1010"
	expect := []bool{true, false, true, false}
	for i, bit := range expect {
		if actual := hc.Bit(byte(i)); actual != bit {
			t.Errorf("bit %d: expect %v, actual %v", i, bit, actual)
		}
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{code: "1010", prefix: "", expect: true},
		{code: "1010", prefix: "1", expect: true},
		{code: "1010", prefix: "101", expect: true},
		{code: "1010", prefix: "1010", expect: true},
		{code: "1010", prefix: "11", expect: false},
		{code: "1010", prefix: "10100", expect: false},
		{code: "0", prefix: "1", expect: false},
	}
	for _, row := range testData {
		hc, _ := ParseCode(row.code)
		prefix, _ := ParseCode(row.prefix)
		if actual := hc.HasPrefix(prefix); actual != row.expect {
			t.Errorf("%s.HasPrefix(%s): expect %v, actual %v", hc, prefix, row.expect, actual)
		}
	}
}

func TestCode_Parent(t *testing.T) {
	hc := MakeCode(3, 0x5) // "101"
	if actual := hc.Parent(); actual != MakeCode(2, 0x2) {
		t.Errorf("wrong parent: %s", actual)
	}
	if actual := (Code{}).Parent(); actual != (Code{}) {
		t.Errorf("wrong parent of empty code: %s", actual)
	}
}

package huffman_test

import (
	"fmt"

	huffman "github.com/chronos-tachyon/huffpack"
)

func ExampleCompress() {
	c, err := huffman.Compress([]byte("abracadabra"))
	if err != nil {
		panic(err)
	}
	hc, _ := c.Table.Lookup('a')
	fmt.Println(c.Table.Len(), c.BitCount, hc)

	out, err := huffman.Decompress(c)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
	// Output:
	// 5 23 "0"
	// abracadabra
}

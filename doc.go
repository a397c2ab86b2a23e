// Package huffman implements a byte-oriented Huffman compressor.  The input
// is loaded into memory, its byte frequencies are counted, and a Huffman tree
// is built from them; the tree's root-to-leaf paths become the code for each
// byte.  The encoded bits are packed most-significant-bit first and stored in
// a Container together with the code table and the exact number of bits.
//
// Container layout:
//
//     256 slots, one per byte value in ascending order:
//         size   byte      (0 = byte value absent from the input)
//         bits   [ceil(size/8)]byte, most significant bit first, zero padded
//     bitCount   uint64, big-endian
//     payload    [ceil(bitCount/8)]byte, most significant bit first, zero padded
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman

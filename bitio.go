package huffman

import (
	"bytes"
	"errors"
	"io"

	"github.com/icza/bitio"
)

// BitPacker collects bits into bytes, most significant bit first.  When the
// packed bytes are retrieved, a partial last byte is padded with zero bits in
// its low-order positions.
type BitPacker struct {
	buf    bytes.Buffer
	w      *bitio.Writer
	n      uint64
	closed bool
}

// NewBitPacker returns an empty BitPacker.
func NewBitPacker() *BitPacker {
	p := &BitPacker{}
	p.w = bitio.NewWriter(&p.buf)
	return p
}

// WriteBit appends one bit.
func (p *BitPacker) WriteBit(bit bool) error {
	if p.closed {
		return errors.New("huffman: write to finished BitPacker")
	}
	if err := p.w.WriteBool(bit); err != nil {
		return err
	}
	p.n++
	return nil
}

// WriteCode appends the bits of a Code, first bit first.
func (p *BitPacker) WriteCode(hc Code) error {
	if p.closed {
		return errors.New("huffman: write to finished BitPacker")
	}
	if hc.Size == 0 {
		return nil
	}
	if err := p.w.WriteBits(hc.Bits, hc.Size); err != nil {
		return err
	}
	p.n += uint64(hc.Size)
	return nil
}

// Len returns the number of bits written so far, not counting padding.
func (p *BitPacker) Len() uint64 {
	return p.n
}

// Bytes pads the last byte and returns the packed bytes.  No further bits
// may be written afterward.
func (p *BitPacker) Bytes() ([]byte, error) {
	if !p.closed {
		p.closed = true
		if err := p.w.Close(); err != nil {
			return nil, err
		}
	}
	return p.buf.Bytes(), nil
}

// BitUnpacker reads back exactly bitCount bits that were packed by a
// BitPacker.  Bytes are pulled from the underlying reader one at a time, as
// the bits are needed.
type BitUnpacker struct {
	r         *bitio.Reader
	remaining uint64
}

// NewBitUnpacker returns a BitUnpacker that yields bitCount bits from r.
func NewBitUnpacker(r io.Reader, bitCount uint64) *BitUnpacker {
	return &BitUnpacker{r: bitio.NewReader(r), remaining: bitCount}
}

// NextBit returns the next bit.  Once bitCount bits have been returned, it
// returns io.EOF and ignores any padding bits left in the final byte.  If the
// underlying reader runs dry first, the error is a *CorruptContainerError.
func (u *BitUnpacker) NextBit() (bool, error) {
	if u.remaining == 0 {
		return false, io.EOF
	}
	bit, err := u.r.ReadBool()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, corruptf(io.ErrUnexpectedEOF, "payload ends with %d bits still expected", u.remaining)
		}
		return false, err
	}
	u.remaining--
	return bit, nil
}

// Remaining returns the number of bits not yet returned by NextBit.
func (u *BitUnpacker) Remaining() uint64 {
	return u.remaining
}

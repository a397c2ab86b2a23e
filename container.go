package huffman

import (
	"bufio"
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/icza/bitio"
)

// Container is the serialized result of compression: the code table, the
// number of meaningful bits in the payload, and the packed payload itself.
type Container struct {
	Table    CodeTable
	BitCount uint64
	Payload  []byte
}

// MarshalBinary encodes the container in its wire layout: code table, then
// bit count, then payload.
func (c *Container) MarshalBinary() ([]byte, error) {
	if want := payloadLen(c.BitCount); uint64(len(c.Payload)) != want {
		return nil, fmt.Errorf("huffman: bit count %d needs %d payload bytes, have %d", c.BitCount, want, len(c.Payload))
	}
	if c.Table.Len() == 0 {
		return nil, errors.New("huffman: code table has no symbols")
	}
	if err := c.Table.Validate(); err != nil {
		return nil, fmt.Errorf("huffman: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(NumSymbols + 8 + len(c.Payload))
	w := bitio.NewWriter(&buf)

	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc, found := c.Table.Lookup(Symbol(symbol))
		if !found {
			if err := w.WriteByte(0); err != nil {
				return nil, err
			}
			continue
		}
		if err := w.WriteByte(hc.Size); err != nil {
			return nil, err
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, err
		}
		if _, err := w.Align(); err != nil {
			return nil, err
		}
	}
	if err := w.WriteBits(c.BitCount, 64); err != nil {
		return nil, err
	}
	if _, err := w.Write(c.Payload); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the container to w in its wire layout.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	raw, err := c.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(raw)
	return int64(n), err
}

// ReadFrom reads one container from r.  Bytes following the payload are not
// examined, although r may be read past the end of the container.
func (c *Container) ReadFrom(r io.Reader) (int64, error) {
	src, ok := r.(byteReader)
	if !ok {
		src = bufio.NewReader(r)
	}
	cr := &countingReader{r: src}

	bits := bitio.NewReader(cr)

	var table CodeTable
	for symbol := 0; symbol < NumSymbols; symbol++ {
		size, err := bits.ReadByte()
		if err != nil {
			return cr.n, wrapReadError(err, "code table ends at symbol %d", symbol)
		}
		if size == 0 {
			continue
		}
		if size > MaxCodeSize {
			return cr.n, corruptf(nil, "symbol %d has a %d-bit code, max %d", symbol, size, MaxCodeSize)
		}

		code, err := bits.ReadBits(size)
		if err != nil {
			return cr.n, wrapReadError(err, "code for symbol %d is truncated", symbol)
		}
		if pad := (8 - size%8) % 8; pad != 0 {
			padding, err := bits.ReadBits(pad)
			if err != nil {
				return cr.n, wrapReadError(err, "code for symbol %d is truncated", symbol)
			}
			if padding != 0 {
				return cr.n, corruptf(nil, "code for symbol %d has non-zero padding", symbol)
			}
		}

		table.Set(Symbol(symbol), MakeCode(size, code))
	}

	if table.Len() == 0 {
		return cr.n, corruptf(nil, "code table has no symbols")
	}
	if err := table.Validate(); err != nil {
		return cr.n, corruptf(err, "invalid code table")
	}

	bitCount, err := bits.ReadBits(64)
	if err != nil {
		return cr.n, wrapReadError(err, "bit count is truncated")
	}

	// The reader is byte-aligned here, so the payload can be copied
	// straight from cr.  CopyN grows the buffer as data arrives, so a
	// bogus bitCount cannot force a huge allocation up front.
	want := payloadLen(bitCount)
	if want > math.MaxInt64 {
		return cr.n, corruptf(nil, "bit count %d is out of range", bitCount)
	}
	var payload bytes.Buffer
	got, err := io.CopyN(&payload, cr, int64(want))
	if err != nil {
		return cr.n, wrapReadError(err, "payload holds %d of %d bytes needed for %d bits", got, want, bitCount)
	}

	*c = Container{
		Table:    table,
		BitCount: bitCount,
		Payload:  payload.Bytes(),
	}
	return cr.n, nil
}

// UnmarshalBinary decodes a container from its wire layout.  The data must
// hold exactly one container with nothing after it.
func (c *Container) UnmarshalBinary(data []byte) error {
	n, err := c.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if extra := int64(len(data)) - n; extra != 0 {
		return corruptf(nil, "%d trailing bytes after payload", extra)
	}
	return nil
}

func wrapReadError(err error, format string, args ...interface{}) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return corruptf(io.ErrUnexpectedEOF, format, args...)
	}
	return err
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

// countingReader counts the bytes consumed from the underlying reader.
type countingReader struct {
	r byteReader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

func (cr *countingReader) ReadByte() (byte, error) {
	b, err := cr.r.ReadByte()
	if err == nil {
		cr.n++
	}
	return b, err
}

var (
	_ encoding.BinaryMarshaler   = (*Container)(nil)
	_ encoding.BinaryUnmarshaler = (*Container)(nil)
	_ io.WriterTo                = (*Container)(nil)
	_ io.ReaderFrom              = (*Container)(nil)
)

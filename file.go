package huffman

import (
	"bytes"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Stats describes one CompressFile or DecompressFile call.
type Stats struct {
	// InputSize and OutputSize are the file sizes in bytes.
	InputSize  int64
	OutputSize int64

	// BitCount is the number of meaningful bits in the container payload.
	BitCount uint64

	// Digest is the xxhash of the uncompressed bytes.
	Digest uint64
}

// Ratio returns OutputSize / InputSize.
func (s Stats) Ratio() float64 {
	if s.InputSize == 0 {
		return 0
	}
	return float64(s.OutputSize) / float64(s.InputSize)
}

// CompressFile compresses the file at src into a container file at dst.  If
// anything fails, dst is removed.
func CompressFile(src, dst string) (Stats, error) {
	data, err := readFile(src)
	if err != nil {
		return Stats{}, err
	}

	c, err := Compress(data)
	if err != nil {
		return Stats{}, err
	}

	n, err := writeFile(dst, c)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		InputSize:  int64(len(data)),
		OutputSize: n,
		BitCount:   c.BitCount,
		Digest:     xxhash.Sum64(data),
	}, nil
}

// DecompressFile restores the file compressed into the container file at
// src, writing it to dst.  If anything fails, dst is removed.
func DecompressFile(src, dst string) (Stats, error) {
	c, raw, err := LoadContainer(src)
	if err != nil {
		return Stats{}, err
	}

	data, err := Decompress(c)
	if err != nil {
		return Stats{}, err
	}

	n, err := writeFile(dst, bytes.NewReader(data))
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		InputSize:  int64(len(raw)),
		OutputSize: n,
		BitCount:   c.BitCount,
		Digest:     xxhash.Sum64(data),
	}, nil
}

// LoadContainer reads and decodes the container file at path.  It also
// returns the raw file contents.
func LoadContainer(path string) (*Container, []byte, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}

	var c Container
	if err := c.UnmarshalBinary(raw); err != nil {
		return nil, nil, err
	}
	return &c, raw, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

func writeFile(path string, wt io.WriterTo) (n int64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, &IOError{Op: "create", Path: path, Err: err}
	}

	defer func() {
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	n, err = wt.WriteTo(f)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return 0, &IOError{Op: "write", Path: path, Err: err}
	}
	return n, nil
}

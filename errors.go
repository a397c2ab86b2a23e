package huffman

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrEmptyInput is returned when asked to compress zero bytes.  There is
	// no Huffman tree for an empty alphabet.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrCorruptContainer matches every *CorruptContainerError via errors.Is.
	ErrCorruptContainer = errors.New("huffman: corrupt container")

	// ErrNotFound matches an *IOError for a source file that does not exist.
	ErrNotFound = errors.New("huffman: file not found")

	// ErrSymbolNotInTable is returned by the Encoder for a byte that has no
	// code.
	ErrSymbolNotInTable = errors.New("huffman: symbol not in code table")
)

// CorruptContainerError reports a container that cannot be decoded.
type CorruptContainerError struct {
	Reason string
	Err    error
}

func corruptf(err error, format string, args ...interface{}) *CorruptContainerError {
	return &CorruptContainerError{Reason: fmt.Sprintf(format, args...), Err: err}
}

// Error fulfills the error interface.
func (e *CorruptContainerError) Error() string {
	str := "huffman: corrupt container: " + e.Reason
	if e.Err != nil {
		str += ": " + e.Err.Error()
	}
	return str
}

// Unwrap returns the underlying cause, if any.
func (e *CorruptContainerError) Unwrap() error {
	return e.Err
}

// Is returns true for ErrCorruptContainer.
func (e *CorruptContainerError) Is(target error) bool {
	return target == ErrCorruptContainer
}

// IOError reports a failure to read or write one of the files handled by
// CompressFile and DecompressFile.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error fulfills the error interface.
func (e *IOError) Error() string {
	return "huffman: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is returns true for ErrNotFound if the file being read does not exist.
func (e *IOError) Is(target error) bool {
	return target == ErrNotFound && e.Op == "read" && errors.Is(e.Err, fs.ErrNotExist)
}

var (
	_ error = (*CorruptContainerError)(nil)
	_ error = (*IOError)(nil)
)

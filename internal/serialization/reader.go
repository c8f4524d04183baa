package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
)

// Reader reads models from .mlp format.
type Reader struct {
	file       *os.File
	header     Header
	flags      uint32
	dataOffset int64 // Offset where matrix data starts
	dataSize   int64 // Size of the data section
	closed     bool
}

// NewReader opens a .mlp file.
//
// The header is parsed and validated and the data section is checked
// against the stored checksum before returning.
func NewReader(path string) (*Reader, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}

	r := &Reader{file: file}
	if err := r.open(); err != nil {
		_ = file.Close() // Best effort close on error
		return nil, err
	}
	return r, nil
}

func (r *Reader) open() error {
	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r.file, fixed); err != nil {
		return errors.Wrap(err, "failed to read fixed header")
	}
	if string(fixed[0:4]) != MagicBytes {
		return errors.WithStack(ErrInvalidMagic)
	}
	if version := binary.LittleEndian.Uint32(fixed[4:8]); version != FormatVersion {
		return errors.Wrapf(ErrUnsupportedVersion, "got %d, expected %d", version, FormatVersion)
	}
	r.flags = binary.LittleEndian.Uint32(fixed[8:12])

	headerSize := binary.LittleEndian.Uint64(fixed[12:20])
	if headerSize > MaxHeaderSize {
		return errors.WithStack(ErrHeaderTooLarge)
	}

	var stored [32]byte
	copy(stored[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r.file, headerBytes); err != nil {
		return errors.Wrap(err, "failed to read header")
	}
	if err := json.Unmarshal(headerBytes, &r.header); err != nil {
		return errors.Wrap(err, "failed to parse header JSON")
	}

	info, err := r.file.Stat()
	if err != nil {
		return errors.Wrap(err, "failed to stat file")
	}
	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize
	r.dataOffset = dataOffset(int64(headerSize))
	r.dataSize = info.Size() - r.dataOffset
	if r.dataSize < 0 {
		return errors.Wrapf(ErrOutOfBounds, "file ends before data section (size %d)", info.Size())
	}

	if err := ValidateHeader(&r.header, r.dataSize); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	section := io.NewSectionReader(r.file, r.dataOffset, r.dataSize)
	computed, err := ComputeChecksumReader(section)
	if err != nil {
		return err
	}
	return ValidateChecksum(computed, stored)
}

// Header returns the file header: topology, matrix layout and metadata.
func (r *Reader) Header() Header {
	return r.header
}

// MatrixInfo returns information about a specific matrix.
func (r *Reader) MatrixInfo(name string) (MatrixMeta, error) {
	for _, meta := range r.header.Matrices {
		if meta.Name == name {
			return meta, nil
		}
	}
	return MatrixMeta{}, errors.Wrapf(ErrMatrixNotFound, "%q", name)
}

// ReadMatrix loads a single matrix from the file.
func (r *Reader) ReadMatrix(name string) (Matrix, error) {
	if r.closed {
		return Matrix{}, errors.WithStack(ErrClosed)
	}

	meta, err := r.MatrixInfo(name)
	if err != nil {
		return Matrix{}, err
	}

	raw := make([]byte, meta.Size)
	if _, err := r.file.ReadAt(raw, r.dataOffset+meta.Offset); err != nil {
		return Matrix{}, errors.Wrapf(err, "failed to read matrix %q", name)
	}

	data := make([]float64, meta.Rows*meta.Cols)
	rd := bytes.NewReader(raw)
	buf := make([]byte, ElementSize)
	for i := range data {
		if _, err := io.ReadFull(rd, buf); err != nil {
			return Matrix{}, errors.Wrapf(err, "matrix %q truncated", name)
		}
		data[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf))
	}

	return Matrix{Name: meta.Name, Rows: meta.Rows, Cols: meta.Cols, Data: data}, nil
}

// ReadAll loads every matrix in header order.
func (r *Reader) ReadAll() ([]Matrix, error) {
	out := make([]Matrix, 0, len(r.header.Matrices))
	for _, meta := range r.header.Matrices {
		m, err := r.ReadMatrix(meta.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Close closes the underlying file. Calling Close twice is a no-op.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return errors.Wrap(r.file.Close(), "failed to close file")
}

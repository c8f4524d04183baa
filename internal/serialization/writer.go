package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
)

const producerVersion = "perceptron/0.1.0"

// Writer writes models in .mlp format.
type Writer struct {
	file   *os.File
	closed bool
}

// NewWriter creates a new .mlp file writer.
func NewWriter(path string) (*Writer, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file")
	}

	return &Writer{file: file}, nil
}

// WriteModel writes the topology and matrices to the file.
//
// Matrices are stored in the order given.
func (w *Writer) WriteModel(layers []LayerSpec, matrices []Matrix, metadata map[string]string) error {
	if w.closed {
		return errors.WithStack(ErrClosed)
	}

	header := Header{
		FormatVersion: FormatVersion,
		Producer:      producerVersion,
		CreatedAt:     time.Now().UTC(),
		Layers:        layers,
		Metadata:      metadata,
	}

	return Encode(w.file, header, matrices)
}

// Close closes the underlying file. Calling Close twice is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return errors.Wrap(w.file.Close(), "failed to close file")
}

// Encode writes header and matrices to dst in .mlp format.
//
// header.Matrices is recomputed from matrices; every other header field
// is written as given. matrices must be the inbound weights of
// header.Layers (see ValidateTopology).
func Encode(dst io.Writer, header Header, matrices []Matrix) error {
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	// Lay out and serialize the data section first: the checksum goes in
	// the fixed header.
	var data bytes.Buffer
	header.Matrices = make([]MatrixMeta, 0, len(matrices))
	var offset int64
	for _, m := range matrices {
		if err := ValidateMatrixName(m.Name); err != nil {
			return err
		}
		if len(m.Data) != m.Rows*m.Cols {
			return errors.Errorf("matrix %q has %d values, expected %dx%d", m.Name, len(m.Data), m.Rows, m.Cols)
		}

		size := int64(len(m.Data)) * ElementSize
		header.Matrices = append(header.Matrices, MatrixMeta{
			Name:   m.Name,
			Rows:   m.Rows,
			Cols:   m.Cols,
			Offset: offset,
			Size:   size,
		})
		offset += size

		buf := make([]byte, ElementSize)
		for _, v := range m.Data {
			binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
			data.Write(buf)
		}
	}

	if err := ValidateTopology(&header); err != nil {
		return err
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return errors.Wrap(err, "failed to marshal header")
	}
	if len(headerJSON) > MaxHeaderSize {
		return errors.WithStack(ErrHeaderTooLarge)
	}

	flags := uint32(0)
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}

	fixed := make([]byte, FixedHeaderSize)
	copy(fixed[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], FormatVersion)
	binary.LittleEndian.PutUint32(fixed[8:12], flags)
	binary.LittleEndian.PutUint64(fixed[12:20], uint64(len(headerJSON)))
	checksum := ComputeChecksum(data.Bytes())
	copy(fixed[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	if _, err := dst.Write(fixed); err != nil {
		return errors.Wrap(err, "failed to write fixed header")
	}
	if _, err := dst.Write(headerJSON); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	start := int64(FixedHeaderSize) + int64(len(headerJSON))
	if padding := dataOffset(int64(len(headerJSON))) - start; padding > 0 {
		if _, err := dst.Write(make([]byte, padding)); err != nil {
			return errors.Wrap(err, "failed to write padding")
		}
	}

	if _, err := dst.Write(data.Bytes()); err != nil {
		return errors.Wrap(err, "failed to write matrix data")
	}

	return nil
}

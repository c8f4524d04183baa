package serialization

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize    = 16 * 1024 * 1024 // 16MB - maximum header size
	MaxMatrixCount   = 10_000           // Maximum number of matrices in a file
	MaxMatrixNameLen = 256              // Maximum matrix name length
	MaxLayerCount    = 10_000           // Maximum number of layers in a file
)

// ValidateMatrixOffsets checks for overlapping matrix regions and
// out-of-bounds access.
func ValidateMatrixOffsets(matrices []MatrixMeta, dataSize int64) error {
	if len(matrices) > MaxMatrixCount {
		return &ValidationError{
			Type:    "too_many_matrices",
			Details: fmt.Sprintf("got %d, max %d", len(matrices), MaxMatrixCount),
		}
	}

	// Sort by offset for overlap detection.
	sorted := make([]MatrixMeta, len(matrices))
	copy(sorted, matrices)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, m := range sorted {
		if m.Offset < 0 || m.Size < 0 {
			return &ValidationError{
				Type:    "negative_offset",
				Matrix:  m.Name,
				Details: fmt.Sprintf("offset=%d, size=%d (negative values not allowed)", m.Offset, m.Size),
			}
		}

		if m.Offset+m.Size > dataSize {
			return &ValidationError{
				Type:    "out_of_bounds",
				Matrix:  m.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", m.Offset, m.Size, dataSize),
			}
		}

		if i < len(sorted)-1 {
			next := sorted[i+1]
			if m.Offset+m.Size > next.Offset {
				return &ValidationError{
					Type:    "offset_overlap",
					Matrix:  m.Name,
					Matrix2: next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						m.Offset, m.Offset+m.Size, next.Offset, next.Offset+next.Size),
				}
			}
		}
	}

	return nil
}

// ValidateMatrixName rejects empty, overlong, and path-like names.
func ValidateMatrixName(name string) error {
	if name == "" {
		return &ValidationError{Type: "invalid_name", Details: "empty matrix name"}
	}
	if len(name) > MaxMatrixNameLen {
		return &ValidationError{
			Type:    "name_too_long",
			Matrix:  name,
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxMatrixNameLen),
		}
	}
	if strings.Contains(name, "..") {
		return &ValidationError{
			Type:    "invalid_name",
			Matrix:  name,
			Details: "contains '..'",
		}
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return &ValidationError{
			Type:    "invalid_name",
			Matrix:  name,
			Details: "contains path separator or null byte",
		}
	}
	return nil
}

// ValidateMatrixMeta checks that a matrix's byte size matches its
// dimensions.
func ValidateMatrixMeta(m MatrixMeta) error {
	if m.Rows < 1 || m.Cols < 1 {
		return &ValidationError{
			Type:    "invalid_shape",
			Matrix:  m.Name,
			Details: fmt.Sprintf("dimensions %dx%d must be positive", m.Rows, m.Cols),
		}
	}
	if int64(m.Rows) > math.MaxInt64/ElementSize/int64(m.Cols) {
		return &ValidationError{
			Type:    "invalid_shape",
			Matrix:  m.Name,
			Details: fmt.Sprintf("dimensions %dx%d overflow the byte size", m.Rows, m.Cols),
		}
	}
	if want := int64(m.Rows) * int64(m.Cols) * ElementSize; m.Size != want {
		return &ValidationError{
			Type:    "invalid_shape",
			Matrix:  m.Name,
			Details: fmt.Sprintf("size %d bytes, expected %d for %dx%d", m.Size, want, m.Rows, m.Cols),
		}
	}
	return nil
}

// ValidateHeader performs full header validation against the size of
// the data section.
func ValidateHeader(h *Header, dataSize int64) error {
	if len(h.Layers) > MaxLayerCount {
		return &ValidationError{
			Type:    "too_many_layers",
			Details: fmt.Sprintf("got %d, max %d", len(h.Layers), MaxLayerCount),
		}
	}
	for i, l := range h.Layers {
		if l.Size < 1 {
			return &ValidationError{
				Type:    "invalid_layer",
				Details: fmt.Sprintf("layer %d has size %d", i, l.Size),
			}
		}
	}

	seen := make(map[string]struct{}, len(h.Matrices))
	for _, m := range h.Matrices {
		if err := ValidateMatrixName(m.Name); err != nil {
			return err
		}
		if _, dup := seen[m.Name]; dup {
			return &ValidationError{Type: "duplicate_name", Matrix: m.Name, Details: "matrix name repeated"}
		}
		seen[m.Name] = struct{}{}
		if err := ValidateMatrixMeta(m); err != nil {
			return err
		}
	}

	if err := ValidateTopology(h); err != nil {
		return err
	}

	return ValidateMatrixOffsets(h.Matrices, dataSize)
}

// ValidateTopology checks that the matrices are exactly the inbound
// weights of layers 1..n-1, each shaped [previous size × size].
func ValidateTopology(h *Header) error {
	want := max(len(h.Layers)-1, 0)
	if len(h.Matrices) != want {
		return &ValidationError{
			Type:    "topology_mismatch",
			Details: fmt.Sprintf("%d layers need %d matrices, got %d", len(h.Layers), want, len(h.Matrices)),
		}
	}

	byName := make(map[string]MatrixMeta, len(h.Matrices))
	for _, m := range h.Matrices {
		byName[m.Name] = m
	}

	for i := 1; i < len(h.Layers); i++ {
		name := WeightMatrixName(i)
		m, ok := byName[name]
		if !ok {
			return &ValidationError{Type: "topology_mismatch", Matrix: name, Details: "missing"}
		}
		if rows, cols := h.Layers[i-1].Size, h.Layers[i].Size; m.Rows != rows || m.Cols != cols {
			return &ValidationError{
				Type:    "topology_mismatch",
				Matrix:  name,
				Details: fmt.Sprintf("stored %dx%d, layers need %dx%d", m.Rows, m.Cols, rows, cols),
			}
		}
	}
	return nil
}

package serialization

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrOffsetOverlap      = errors.New("matrix offsets overlap")
	ErrOutOfBounds        = errors.New("matrix extends beyond data section")
	ErrNegativeOffset     = errors.New("negative offset or size")
	ErrTooManyMatrices    = errors.New("too many matrices in file")
	ErrInvalidMatrixName  = errors.New("invalid matrix name")
	ErrDuplicateMatrix    = errors.New("duplicate matrix name")
	ErrInvalidShape       = errors.New("invalid matrix shape")
	ErrInvalidLayer       = errors.New("invalid layer")
	ErrTooManyLayers      = errors.New("too many layers in file")
	ErrTopologyMismatch   = errors.New("matrices do not match layer topology")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrMatrixNotFound     = errors.New("matrix not found")
	ErrClosed             = errors.New("file is closed")
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Type    string // Type of error (e.g., "offset_overlap", "out_of_bounds")
	Matrix  string // Primary matrix name involved
	Matrix2 string // Secondary matrix name (for overlap errors)
	Details string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Matrix2 != "" {
		return fmt.Sprintf("%s: matrices %q and %q: %s", e.Type, e.Matrix, e.Matrix2, e.Details)
	}
	if e.Matrix != "" {
		return fmt.Sprintf("%s: matrix %q: %s", e.Type, e.Matrix, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}

// Unwrap maps the validation type to its sentinel so callers can use
// errors.Is.
func (e *ValidationError) Unwrap() error {
	switch e.Type {
	case "offset_overlap":
		return ErrOffsetOverlap
	case "out_of_bounds":
		return ErrOutOfBounds
	case "negative_offset":
		return ErrNegativeOffset
	case "too_many_matrices":
		return ErrTooManyMatrices
	case "invalid_name", "name_too_long":
		return ErrInvalidMatrixName
	case "duplicate_name":
		return ErrDuplicateMatrix
	case "invalid_shape":
		return ErrInvalidShape
	case "invalid_layer":
		return ErrInvalidLayer
	case "too_many_layers":
		return ErrTooManyLayers
	case "topology_mismatch":
		return ErrTopologyMismatch
	default:
		return nil
	}
}

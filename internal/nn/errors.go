package nn

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	// ErrConfiguration is returned when an operation runs before the
	// network topology it depends on exists, or with invalid settings.
	ErrConfiguration = errors.New("invalid network configuration")

	// ErrShapeMismatch matches every *ShapeMismatchError via errors.Is.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// ShapeMismatchError reports a vector whose length disagrees with the
// size of the layer it feeds.
type ShapeMismatchError struct {
	Operand string // What was checked (e.g., "inputs", "outputs", "weights")
	Want    int    // Expected length
	Got     int    // Actual length
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: %s length %d, expected %d", ErrShapeMismatch, e.Operand, e.Got, e.Want)
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

func configErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrConfiguration, format, args...)
}

func shapeError(operand string, want, got int) error {
	return errors.WithStack(&ShapeMismatchError{Operand: operand, Want: want, Got: got})
}

package loader

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Scaler divides each input and output column by a caller-chosen
// constant. A nil slice leaves that side unscaled.
type Scaler struct {
	inputs  []float64
	outputs []float64
}

// NewScaler validates the divisors and returns a Scaler.
func NewScaler(inputs, outputs []float64) (*Scaler, error) {
	for _, side := range [][]float64{inputs, outputs} {
		for i, d := range side {
			if d == 0 {
				return nil, errors.Errorf("divisor %d is zero", i)
			}
		}
	}
	return &Scaler{inputs: inputs, outputs: outputs}, nil
}

// ParseDivisors parses a comma-separated list such as "540,247,32.2,365".
// An empty string yields nil.
func ParseDivisors(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "divisor %d", i)
		}
		out[i] = v
	}
	return out, nil
}

// Inputs returns a scaled copy of v.
func (s *Scaler) Inputs(v []float64) ([]float64, error) {
	return divide(v, s.inputs, "inputs")
}

// Outputs returns a scaled copy of v.
func (s *Scaler) Outputs(v []float64) ([]float64, error) {
	return divide(v, s.outputs, "outputs")
}

// Unscale maps a scaled prediction back to original output units.
func (s *Scaler) Unscale(v []float64) ([]float64, error) {
	out := append([]float64(nil), v...)
	if s.outputs == nil {
		return out, nil
	}
	if len(v) != len(s.outputs) {
		return nil, errors.Errorf("outputs: %d values, have %d divisors", len(v), len(s.outputs))
	}
	floats.Mul(out, s.outputs)
	return out, nil
}

// Rows scales every row in place.
func (s *Scaler) Rows(rows []Row) error {
	for i := range rows {
		in, err := s.Inputs(rows[i].Inputs)
		if err != nil {
			return errors.Wrapf(err, "row %d", i)
		}
		out, err := s.Outputs(rows[i].Outputs)
		if err != nil {
			return errors.Wrapf(err, "row %d", i)
		}
		rows[i] = Row{Inputs: in, Outputs: out}
	}
	return nil
}

func divide(v, divisors []float64, side string) ([]float64, error) {
	out := append([]float64(nil), v...)
	if divisors == nil {
		return out, nil
	}
	if len(v) != len(divisors) {
		return nil, errors.Errorf("%s: %d values, have %d divisors", side, len(v), len(divisors))
	}
	floats.Div(out, divisors)
	return out, nil
}

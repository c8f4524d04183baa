package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSigmoid(t *testing.T) {
	s := Sigmoid{}

	assert.InDelta(t, 0.5, s.Apply(0), 1e-12)
	assert.InDelta(t, 0.7310585786, s.Apply(1), 1e-9)

	// Saturation is clamped so learning never stalls on a zero derivative.
	assert.LessOrEqual(t, s.Apply(1000), SigmoidMax)
	assert.GreaterOrEqual(t, s.Apply(-1000), SigmoidMin)
	assert.Equal(t, SigmoidMax, s.Apply(50))
	assert.Equal(t, SigmoidMin, s.Apply(-50))
	assert.Greater(t, s.Derivative(50, s.Apply(50)), 0.0)

	assert.InDelta(t, 0.25, s.Derivative(0, 0.5), 1e-12)
	assert.Equal(t, "sigmoid", s.Name())
}

func TestLinear(t *testing.T) {
	l := Linear{}

	for _, x := range []float64{-3.5, 0, 1e-9, 42} {
		assert.Equal(t, x, l.Apply(x))
		assert.Equal(t, 1.0, l.Derivative(x, x))
	}
	assert.Equal(t, 1.0, l.Derivative(math.Inf(1), math.NaN()))
}

func TestReLU(t *testing.T) {
	r := ReLU{}

	tests := []struct {
		x, apply, derivative float64
	}{
		{-3, 0, 0},
		{-1e-12, 0, 0},
		{0, 0, 1},
		{3, 3, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.apply, r.Apply(tt.x), "relu(%v)", tt.x)
		assert.Equal(t, tt.derivative, r.Derivative(tt.x, r.Apply(tt.x)), "relu'(%v)", tt.x)
	}
}

func TestTanh(t *testing.T) {
	th := Tanh{}

	assert.Equal(t, 0.0, th.Apply(0))
	assert.InDelta(t, math.Tanh(0.7), th.Apply(0.7), 1e-15)

	for _, o := range []float64{-0.9, 0, 0.5, 0.99} {
		assert.InDelta(t, 1-o*o, th.Derivative(0, o), 1e-15)
	}
}

func TestActivationFunc(t *testing.T) {
	square := ActivationFunc{
		Label:        "square",
		ApplyFn:      func(x float64) float64 { return x * x },
		DerivativeFn: func(pre, _ float64) float64 { return 2 * pre },
	}

	assert.Equal(t, "square", square.Name())
	assert.Equal(t, 9.0, square.Apply(3))
	assert.Equal(t, 6.0, square.Derivative(3, 9))
}

func TestActivationByName(t *testing.T) {
	for _, a := range Builtins() {
		got, ok := ActivationByName(a.Name())
		assert.True(t, ok, a.Name())
		assert.Equal(t, a, got)
	}

	_, ok := ActivationByName("softplus")
	assert.False(t, ok)

	custom := ActivationFunc{Label: "sigmoid", ApplyFn: math.Abs}
	got, ok := ActivationByName("sigmoid", nil, custom)
	assert.True(t, ok)
	assert.Equal(t, "sigmoid", got.Name())
	assert.Equal(t, 2.0, got.Apply(-2), "extra activations shadow builtins")
}

func TestMeanSquaredError(t *testing.T) {
	mse := MeanSquaredError{}

	assert.Equal(t, 0.5, mse.Apply(2.0, 3.0))
	assert.Equal(t, 1.0, mse.Derivative(2.0, 3.0))
	assert.Equal(t, -1.0, mse.Derivative(3.0, 2.0))
	assert.Equal(t, 0.0, mse.Apply(1.5, 1.5))
	assert.Equal(t, "mse", mse.Name())
}

func TestCostFunc(t *testing.T) {
	abs := CostFunc{
		Label:   "abs",
		ApplyFn: func(p, e float64) float64 { return math.Abs(e - p) },
		DerivativeFn: func(p, e float64) float64 {
			if e > p {
				return 1
			}
			return -1
		},
	}

	assert.Equal(t, "abs", abs.Name())
	assert.Equal(t, 2.0, abs.Apply(1, 3))
	assert.Equal(t, 1.0, abs.Derivative(1, 3))
	assert.Equal(t, -1.0, abs.Derivative(3, 1))
}

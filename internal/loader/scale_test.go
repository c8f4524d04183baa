package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDivisors(t *testing.T) {
	got, err := ParseDivisors(" 540, 247 ,32.2,365 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{540, 247, 32.2, 365}, got)

	got, err = ParseDivisors("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseDivisors("1,,2")
	assert.Error(t, err)
}

func TestScaler(t *testing.T) {
	s, err := NewScaler([]float64{2, 4}, []float64{10})
	require.NoError(t, err)

	in, err := s.Inputs([]float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, in)

	out, err := s.Outputs([]float64{25})
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5}, out)

	back, err := s.Unscale(out)
	require.NoError(t, err)
	assert.Equal(t, []float64{25}, back)

	_, err = s.Inputs([]float64{1})
	assert.Error(t, err)
	_, err = s.Unscale([]float64{1, 2})
	assert.Error(t, err)
}

func TestScaler_Rows(t *testing.T) {
	s, err := NewScaler([]float64{10, 10}, nil)
	require.NoError(t, err)

	orig := []float64{5, 20}
	rows := []Row{{Inputs: orig, Outputs: []float64{7}}}
	require.NoError(t, s.Rows(rows))

	assert.Equal(t, []float64{0.5, 2}, rows[0].Inputs)
	assert.Equal(t, []float64{7}, rows[0].Outputs, "nil divisors leave outputs unscaled")
	assert.Equal(t, []float64{5, 20}, orig, "inputs are copied, not divided in place")

	bad := []Row{{Inputs: []float64{1}, Outputs: nil}}
	assert.Error(t, s.Rows(bad))
}

func TestNewScaler_ZeroDivisor(t *testing.T) {
	_, err := NewScaler([]float64{1, 0}, nil)
	assert.Error(t, err)

	_, err = NewScaler(nil, []float64{0})
	assert.Error(t, err)
}

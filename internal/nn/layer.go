package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Layer is a fixed-size bank of neurons sharing one activation function
// and one inbound weight matrix.
//
// weightsIn is indexed [previous neuron, current neuron], so it has one
// row per neuron of the previous layer and one column per neuron of this
// layer. The input layer holds an unused 1×1 placeholder.
//
// preActivation, postActivation and errorTerms are scratch state: every
// forward or backward pass overwrites them and they carry no meaning
// between calls.
type Layer struct {
	size           int
	weightsIn      *mat.Dense
	preActivation  *mat.VecDense
	postActivation *mat.VecDense
	errorTerms     *mat.VecDense
	activation     Activation
}

func newLayer(size int, weightsIn *mat.Dense, activation Activation) *Layer {
	return &Layer{
		size:           size,
		weightsIn:      weightsIn,
		preActivation:  mat.NewVecDense(size, nil),
		postActivation: mat.NewVecDense(size, nil),
		errorTerms:     mat.NewVecDense(size, nil),
		activation:     activation,
	}
}

// Size returns the number of neurons.
func (l *Layer) Size() int {
	return l.size
}

// Activation returns the layer's activation function.
func (l *Layer) Activation() Activation {
	return l.activation
}

// Outputs returns a copy of the post-activation values from the most
// recent forward pass.
func (l *Layer) Outputs() []float64 {
	return mat.Col(nil, 0, l.postActivation)
}

// weightRows copies weightsIn into a row-major [][]float64.
func (l *Layer) weightRows() [][]float64 {
	r, _ := l.weightsIn.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, l.weightsIn)
	}
	return rows
}

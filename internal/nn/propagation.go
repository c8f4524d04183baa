package nn

import (
	"github.com/born-ml/perceptron/internal/optim"
	"gonum.org/v1/gonum/mat"
)

// forward computes every layer's activations from features.
//
// The input layer takes features verbatim as both its pre- and
// post-activation. Each later layer computes
//
//	pre[l]  = post[l-1] · W[l]
//	post[l] = activation[l](pre[l])
//
// Callers must have checked len(features) against the input size.
func (n *Network) forward(features []float64) {
	in := n.layers[0]
	copy(in.preActivation.RawVector().Data, features)
	copy(in.postActivation.RawVector().Data, features)

	for l := 1; l < len(n.layers); l++ {
		prev, cur := n.layers[l-1], n.layers[l]

		// [size × prev] · [prev] = [size]
		cur.preActivation.MulVec(cur.weightsIn.T(), prev.postActivation)

		for i := 0; i < cur.size; i++ {
			cur.postActivation.SetVec(i, cur.activation.Apply(cur.preActivation.AtVec(i)))
		}
	}
}

// backward computes error terms for every non-input layer and then
// updates each layer's inbound weights with optimizer.
//
// All error terms are finalized before the first update: the hidden
// recurrence for layer l reads W[l+1], which must still hold the weights
// used by the forward pass.
func (n *Network) backward(targets []float64, cost Cost, optimizer optim.Optimizer) {
	last := len(n.layers) - 1

	out := n.layers[last]
	for i := 0; i < out.size; i++ {
		pre, post := out.preActivation.AtVec(i), out.postActivation.AtVec(i)
		out.errorTerms.SetVec(i, cost.Derivative(post, targets[i])*out.activation.Derivative(pre, post))
	}

	// The input layer has no inbound weights and gets no error term.
	for l := last - 1; l >= 1; l-- {
		cur, next := n.layers[l], n.layers[l+1]

		// e[l][i] = Σ_m W[l+1][i][m] · e[l+1][m]
		cur.errorTerms.MulVec(next.weightsIn, next.errorTerms)

		for i := 0; i < cur.size; i++ {
			pre, post := cur.preActivation.AtVec(i), cur.postActivation.AtVec(i)
			cur.errorTerms.SetVec(i, cur.errorTerms.AtVec(i)*cur.activation.Derivative(pre, post))
		}
	}

	for l := 1; l <= last; l++ {
		optimizer.Step(n.layers[l].weightsIn, n.layers[l-1].postActivation, n.layers[l].errorTerms)
	}
}

// outputs returns the output layer's post-activation vector.
func (n *Network) outputs() *mat.VecDense {
	return n.layers[len(n.layers)-1].postActivation
}

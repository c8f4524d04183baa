// Package optim implements the weight-update rule used during training.
//
// The network computes every error term of a row first (backward
// propagation), then hands each layer's inbound weights to an Optimizer
// together with the previous layer's activations and the layer's error
// terms.
//
// Only plain stochastic gradient descent is provided: one update per row,
// no momentum, no batching.
package optim

import (
	"gonum.org/v1/gonum/mat"
)

// Optimizer applies a weight update to one layer.
type Optimizer interface {
	// Step updates weights in place.
	//
	// weights is [len(inputs) × len(errorTerms)], indexed
	// [previous neuron, current neuron]. errorTerms follow the
	// (expected - predicted) sign convention, so the step is added.
	Step(weights *mat.Dense, inputs, errorTerms mat.Vector)

	// GetLR returns the learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

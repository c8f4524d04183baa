package optim

import (
	"gonum.org/v1/gonum/mat"
)

// SGD implements online stochastic gradient descent.
//
// Update rule:
//
//	weights[i][j] += lr * errorTerms[j] * inputs[i]
//
// which is a rank-one update weights += lr * inputs ⊗ errorTerms.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	optimizer.Step(layerWeights, prevOutputs, errorTerms)
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{lr: config.LR}
}

// Step performs the in-place update for one layer.
//
// Panics if the dimensions of weights, inputs and errorTerms disagree.
func (s *SGD) Step(weights *mat.Dense, inputs, errorTerms mat.Vector) {
	weights.RankOne(weights, s.lr, inputs, errorTerms)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

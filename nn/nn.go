// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/perceptron/internal/nn"
	"gonum.org/v1/gonum/mat"
)

// Network is a feed-forward multilayer perceptron with its datasets.
type Network = nn.Network

// Layer is one layer of a Network.
type Layer = nn.Layer

// Option configures a Network at construction time.
type Option = nn.Option

// NewNetwork creates an empty network.
//
// Example:
//
//	net := nn.NewNetwork(nn.WithSeed(42))
func NewNetwork(opts ...Option) *Network {
	return nn.NewNetwork(opts...)
}

// WithSeed makes weight initialization reproducible.
func WithSeed(seed uint64) Option {
	return nn.WithSeed(seed)
}

// WithRand sets the random source used for weight initialization.
func WithRand(rng *rand.Rand) Option {
	return nn.WithRand(rng)
}

// Builder constructs a Network fluently and reports the first error.
type Builder = nn.Builder

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	return nn.NewBuilder(opts...)
}

// Data

// Row pairs one input vector with its expected output vector.
type Row = nn.Row

// Dataset is an ordered sequence of rows.
type Dataset = nn.Dataset

// Training

// TrainConfig holds the settings of a training run.
type TrainConfig = nn.TrainConfig

// Activations

// Activation is an element-wise activation function with its derivative.
type Activation = nn.Activation

// Sigmoid is the logistic function, clamped to [SigmoidMin, SigmoidMax].
type Sigmoid = nn.Sigmoid

// Linear is the identity activation.
type Linear = nn.Linear

// ReLU is max(0, x).
type ReLU = nn.ReLU

// Tanh is the hyperbolic tangent.
type Tanh = nn.Tanh

// ActivationFunc adapts caller-supplied functions to Activation.
type ActivationFunc = nn.ActivationFunc

// Sigmoid output bounds.
const (
	SigmoidMin = nn.SigmoidMin
	SigmoidMax = nn.SigmoidMax
)

// Builtins returns the activation functions shipped with the package.
func Builtins() []Activation {
	return nn.Builtins()
}

// ActivationByName finds an activation by name among extra and the builtins.
func ActivationByName(name string, extra ...Activation) (Activation, bool) {
	return nn.ActivationByName(name, extra...)
}

// Cost functions

// Cost is a per-output loss with its derivative.
type Cost = nn.Cost

// MeanSquaredError is 0.5 * (expected - predicted)^2.
type MeanSquaredError = nn.MeanSquaredError

// CostFunc adapts caller-supplied functions to Cost.
type CostFunc = nn.CostFunc

// Initialization

// FanIn creates a [fanIn × fanOut] matrix drawn from U[-1/fanIn, 1/fanIn].
func FanIn(fanIn, fanOut int, rng *rand.Rand) *mat.Dense {
	return nn.FanIn(fanIn, fanOut, rng)
}

// Persistence

// Load reads a network saved with Network.Save.
//
// Example:
//
//	net, err := nn.Load("concrete.mlp")
func Load(path string, extra ...Activation) (*Network, error) {
	return nn.Load(path, extra...)
}

// LoadWithMetadata is Load that also returns the metadata given to Save.
func LoadWithMetadata(path string, extra ...Activation) (*Network, map[string]string, error) {
	return nn.LoadWithMetadata(path, extra...)
}

// Errors

var (
	// ErrConfiguration matches errors caused by a missing topology or
	// invalid settings.
	ErrConfiguration = nn.ErrConfiguration

	// ErrShapeMismatch matches every *ShapeMismatchError.
	ErrShapeMismatch = nn.ErrShapeMismatch
)

// ShapeMismatchError reports a vector of the wrong length.
type ShapeMismatchError = nn.ShapeMismatchError

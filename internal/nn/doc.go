// Package nn implements a feed-forward multilayer perceptron trained by
// online backpropagation.
//
// This package provides:
//   - Network: ordered layer stack plus training and testing datasets
//   - Activations: Sigmoid, Linear, ReLU, Tanh, ActivationFunc
//   - Costs: MeanSquaredError, CostFunc
//   - Builder: chained construction of a Network
//   - Save/Load: weight persistence in the .mlp format
//
// Training is strict per-row stochastic gradient descent: every training
// row triggers one forward pass and one backward pass that updates the
// weights in place. The chain rule is derived by hand per layer; there is
// no autodiff tape.
package nn

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a feed-forward multilayer perceptron trained with
// online gradient descent.
//
// # Overview
//
// This package contains:
//   - Network: layers, training and testing datasets, training loop
//   - Activations: Sigmoid (clamped), Linear, ReLU, Tanh, ActivationFunc
//   - Cost functions: MeanSquaredError, CostFunc
//   - Builder: fluent construction with a single error check
//   - Persistence: Save and Load in the .mlp format
//
// # Basic Usage
//
//	import "github.com/born-ml/perceptron/nn"
//
//	func main() {
//	    net := nn.NewNetwork(nn.WithSeed(42))
//	    _ = net.AddLayer(4, nn.Sigmoid{})
//	    _ = net.AddLayer(8, nn.Sigmoid{})
//	    _ = net.AddLayer(1, nn.Linear{})
//
//	    _ = net.AddTestingRow(testIn, testOut)
//	    _ = net.AddTrainingRow(trainIn, trainOut)
//
//	    history, err := net.Train(nn.TrainConfig{
//	        Epochs:       11,
//	        LearningRate: 0.1,
//	        Cost:         nn.MeanSquaredError{},
//	    })
//
//	    prediction, err := net.Predict(features)
//	}
//
// # Layers
//
// Layer 0 is the input layer and copies the feature vector verbatim.
// Every later layer l holds a [size(l-1) × size(l)] weight matrix
// initialized uniformly in [-1/size(l-1), 1/size(l-1)]. There are no
// biases.
//
// # Training
//
// Each epoch presents every training row in order and updates the
// weights after each row:
//
//	W[l][i][j] += lr * e[l][j] * post[l-1][i]
//
// After each epoch the aggregate testing cost is reported through
// TrainConfig.OnEpoch and returned in the history slice.
//
// # Builder
//
//	net, err := nn.NewBuilder(nn.WithSeed(1)).
//	    Layer(2, nn.Linear{}).
//	    Layer(1, nn.Sigmoid{}).
//	    TrainingRow([]float64{0, 1}, []float64{1}).
//	    Build()
//
// # Errors
//
// Operations on a network with fewer than two layers, or with invalid
// settings, return errors matching ErrConfiguration. Rows or weights of
// the wrong length return a *ShapeMismatchError, which matches
// ErrShapeMismatch.
package nn

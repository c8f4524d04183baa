package nn

import (
	"log/slog"
	"math"

	"github.com/born-ml/perceptron/internal/optim"
	"gonum.org/v1/gonum/mat"
)

// TrainConfig holds the settings of a training run.
type TrainConfig struct {
	Epochs       int     // Full passes over the training dataset (0 = no-op)
	LearningRate float64 // Step size, must be positive
	Cost         Cost    // Loss driving the output error terms

	// OnEpoch, if set, receives the aggregate testing cost after each
	// epoch. Epochs are numbered from 1.
	OnEpoch func(epoch int, cost float64)

	// Logger, if set, receives one debug record per epoch.
	Logger *slog.Logger
}

// Train runs online gradient descent for config.Epochs epochs.
//
// Each epoch presents every training row in dataset order: a forward pass
// on the row's inputs, then a backward pass against its outputs that
// updates the weights in place. There is one update per row and no
// gradient averaging.
//
// After each sweep the aggregate testing cost (see TestingCost) is
// computed with the freshly updated weights. It is reported through
// OnEpoch and Logger and collected into the returned history; it never
// feeds back into the weights.
//
// Returns ErrConfiguration if the network has fewer than two layers,
// Cost is nil, Epochs is negative, or LearningRate is not a positive
// finite number.
func (n *Network) Train(config TrainConfig) ([]float64, error) {
	if err := n.requireTopology("training"); err != nil {
		return nil, err
	}
	if config.Cost == nil {
		return nil, configErrorf("training needs a cost function")
	}
	if config.Epochs < 0 {
		return nil, configErrorf("epoch count must not be negative, got %d", config.Epochs)
	}
	if !(config.LearningRate > 0) || math.IsInf(config.LearningRate, 0) {
		return nil, configErrorf("learning rate must be positive and finite, got %v", config.LearningRate)
	}

	var optimizer optim.Optimizer = optim.NewSGD(optim.SGDConfig{LR: config.LearningRate})
	history := make([]float64, 0, config.Epochs)

	for epoch := 1; epoch <= config.Epochs; epoch++ {
		for _, row := range n.training {
			n.forward(row.Inputs)
			n.backward(row.Outputs, config.Cost, optimizer)
		}

		cost := n.testingCost(config.Cost)
		history = append(history, cost)

		if config.Logger != nil {
			config.Logger.Debug("epoch finished",
				"epoch", epoch,
				"cost", cost,
				"rows", len(n.training),
				"lr", optimizer.GetLR(),
			)
		}
		if config.OnEpoch != nil {
			config.OnEpoch(epoch, cost)
		}
	}

	return history, nil
}

// TestingCost returns the aggregate cost over the testing dataset with
// the current weights:
//
//	Σ over rows Σ over output neurons cost.Apply(predicted, expected)
//
// An empty testing dataset yields 0.
func (n *Network) TestingCost(cost Cost) (float64, error) {
	if err := n.requireTopology("evaluating cost"); err != nil {
		return 0, err
	}
	if cost == nil {
		return 0, configErrorf("evaluating cost needs a cost function")
	}
	return n.testingCost(cost), nil
}

func (n *Network) testingCost(cost Cost) float64 {
	var total float64
	for _, row := range n.testing {
		n.forward(row.Inputs)
		out := n.outputs()
		for i, expected := range row.Outputs {
			total += cost.Apply(out.AtVec(i), expected)
		}
	}
	return total
}

// Predict runs a forward pass on features and returns a copy of the
// output layer's activations.
//
// Only per-layer scratch state is touched, so repeated calls with the
// same features and weights return identical results.
func (n *Network) Predict(features []float64) ([]float64, error) {
	if err := n.requireTopology("prediction"); err != nil {
		return nil, err
	}
	if len(features) != n.InputSize() {
		return nil, shapeError("features", n.InputSize(), len(features))
	}

	n.forward(features)
	return mat.Col(nil, 0, n.outputs()), nil
}

package nn

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Network is a feed-forward multilayer perceptron together with the
// datasets it trains and is evaluated on.
//
// Layers are appended once, in increasing depth order, before any rows
// are added. Layer 0 is the input layer; the last layer is the output
// layer. The network exclusively owns its weight matrices and datasets.
//
// A Network is not safe for concurrent use: every forward pass
// overwrites per-layer scratch state.
//
// Example:
//
//	net := nn.NewNetwork(nn.WithSeed(42))
//	_ = net.AddLayer(4, nn.Sigmoid{})
//	_ = net.AddLayer(8, nn.Sigmoid{})
//	_ = net.AddLayer(1, nn.Linear{})
//
//	_ = net.AddTrainingRow([]float64{0.5, 0.2, 0.1, 0.3}, []float64{0.4})
//	history, err := net.Train(nn.TrainConfig{
//	    Epochs:       11,
//	    LearningRate: 0.1,
//	    Cost:         nn.MeanSquaredError{},
//	})
type Network struct {
	layers   []*Layer
	training Dataset
	testing  Dataset
	rng      *rand.Rand
}

// Option configures a Network at construction time.
type Option func(*Network)

// WithSeed makes weight initialization reproducible.
func WithSeed(seed uint64) Option {
	return func(n *Network) {
		n.rng = newSeededRand(seed)
	}
}

// WithRand sets the random source used for weight initialization.
func WithRand(rng *rand.Rand) Option {
	return func(n *Network) {
		if rng != nil {
			n.rng = rng
		}
	}
}

// NewNetwork creates an empty network.
//
// Without WithSeed or WithRand, weights are drawn from a randomly seeded
// source.
func NewNetwork(opts ...Option) *Network {
	n := &Network{}
	for _, opt := range opts {
		opt(n)
	}
	if n.rng == nil {
		//nolint:gosec // Weight initialization, not security-critical
		n.rng = newSeededRand(rand.Uint64())
	}
	return n
}

// AddLayer appends a layer of size neurons using activation.
//
// The first layer is the input layer: its values are copied from the
// feature vector and neither its weights nor its activation are used.
// Every later layer gets a [previousSize × size] weight matrix
// initialized by FanIn.
//
// Returns ErrConfiguration if size is not positive, activation is nil,
// or rows have already been added.
func (n *Network) AddLayer(size int, activation Activation) error {
	if size < 1 {
		return configErrorf("layer size must be positive, got %d", size)
	}
	if activation == nil {
		return configErrorf("layer %d: activation is nil", len(n.layers))
	}
	if len(n.training) > 0 || len(n.testing) > 0 {
		return configErrorf("cannot add layer %d after rows have been added", len(n.layers))
	}

	weights := placeholder()
	if len(n.layers) > 0 {
		prev := n.layers[len(n.layers)-1].size
		weights = FanIn(prev, size, n.rng)
	}

	n.layers = append(n.layers, newLayer(size, weights, activation))
	return nil
}

// Len returns the number of layers, including the input layer.
func (n *Network) Len() int {
	return len(n.layers)
}

// Layer returns the layer at index, or nil if index is out of range.
func (n *Network) Layer(index int) *Layer {
	if index < 0 || index >= len(n.layers) {
		return nil
	}
	return n.layers[index]
}

// InputSize returns the size of the input layer, or 0 if there is none.
func (n *Network) InputSize() int {
	if len(n.layers) == 0 {
		return 0
	}
	return n.layers[0].size
}

// OutputSize returns the size of the output layer, or 0 if there is none.
func (n *Network) OutputSize() int {
	if len(n.layers) == 0 {
		return 0
	}
	return n.layers[len(n.layers)-1].size
}

// Weights returns a copy of the inbound weights of layer index, indexed
// [previous neuron][current neuron].
func (n *Network) Weights(index int) ([][]float64, error) {
	if index < 1 || index >= len(n.layers) {
		return nil, configErrorf("layer %d has no inbound weights (network has %d layers)", index, len(n.layers))
	}
	return n.layers[index].weightRows(), nil
}

// SetWeights replaces the inbound weights of layer index.
//
// rows is indexed [previous neuron][current neuron] and must be
// [previousSize × size]. Values are copied.
func (n *Network) SetWeights(index int, rows [][]float64) error {
	if index < 1 || index >= len(n.layers) {
		return configErrorf("layer %d has no inbound weights (network has %d layers)", index, len(n.layers))
	}

	layer := n.layers[index]
	prev := n.layers[index-1].size
	if len(rows) != prev {
		return shapeError("weight rows", prev, len(rows))
	}

	data := make([]float64, 0, prev*layer.size)
	for _, row := range rows {
		if len(row) != layer.size {
			return shapeError("weight columns", layer.size, len(row))
		}
		data = append(data, row...)
	}

	layer.weightsIn = mat.NewDense(prev, layer.size, data)
	return nil
}

// AddTrainingRow appends a row to the training dataset.
//
// See AddTestingRow for the validation rules.
func (n *Network) AddTrainingRow(inputs, outputs []float64) error {
	row, err := n.validateRow(inputs, outputs)
	if err != nil {
		return err
	}
	n.training = append(n.training, row)
	return nil
}

// AddTestingRow appends a row to the testing dataset.
//
// Checks, in order:
//   - the network has at least two layers (ErrConfiguration)
//   - len(inputs) equals the input layer size (*ShapeMismatchError)
//   - len(outputs) equals the output layer size (*ShapeMismatchError)
//
// A rejected row leaves the dataset unchanged. Vectors are copied.
func (n *Network) AddTestingRow(inputs, outputs []float64) error {
	row, err := n.validateRow(inputs, outputs)
	if err != nil {
		return err
	}
	n.testing = append(n.testing, row)
	return nil
}

func (n *Network) validateRow(inputs, outputs []float64) (Row, error) {
	if len(n.layers) < 2 {
		return Row{}, configErrorf("adding a row needs at least 2 layers, have %d", len(n.layers))
	}
	if len(inputs) != n.InputSize() {
		return Row{}, shapeError("inputs", n.InputSize(), len(inputs))
	}
	if len(outputs) != n.OutputSize() {
		return Row{}, shapeError("outputs", n.OutputSize(), len(outputs))
	}
	return Row{Inputs: cloneFloats(inputs), Outputs: cloneFloats(outputs)}, nil
}

// TrainingSet returns a copy of the training dataset.
func (n *Network) TrainingSet() Dataset {
	return n.training.clone()
}

// TestingSet returns a copy of the testing dataset.
func (n *Network) TestingSet() Dataset {
	return n.testing.clone()
}

func (n *Network) requireTopology(op string) error {
	if len(n.layers) < 2 {
		return configErrorf("%s needs at least 2 layers, have %d", op, len(n.layers))
	}
	return nil
}

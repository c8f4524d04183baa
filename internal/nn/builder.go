package nn

// Builder assembles a Network through chained calls.
//
// The first failing call is remembered and every later call becomes a
// no-op; Build reports that error.
//
// Example:
//
//	net, err := nn.NewBuilder(nn.WithSeed(7)).
//	    Layer(2, nn.Linear{}).
//	    Layer(2, nn.Sigmoid{}).
//	    Layer(1, nn.Linear{}).
//	    TrainingRow([]float64{0, 1}, []float64{1}).
//	    TestingRow([]float64{1, 1}, []float64{0}).
//	    Build()
type Builder struct {
	net *Network
	err error
}

// NewBuilder starts a builder for an empty network.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{net: NewNetwork(opts...)}
}

// Layer appends a layer. See Network.AddLayer.
func (b *Builder) Layer(size int, activation Activation) *Builder {
	if b.err == nil {
		b.err = b.net.AddLayer(size, activation)
	}
	return b
}

// Weights installs explicit inbound weights. See Network.SetWeights.
func (b *Builder) Weights(layer int, rows [][]float64) *Builder {
	if b.err == nil {
		b.err = b.net.SetWeights(layer, rows)
	}
	return b
}

// TrainingRow appends a training row. See Network.AddTrainingRow.
func (b *Builder) TrainingRow(inputs, outputs []float64) *Builder {
	if b.err == nil {
		b.err = b.net.AddTrainingRow(inputs, outputs)
	}
	return b
}

// TestingRow appends a testing row. See Network.AddTestingRow.
func (b *Builder) TestingRow(inputs, outputs []float64) *Builder {
	if b.err == nil {
		b.err = b.net.AddTestingRow(inputs, outputs)
	}
	return b
}

// Build returns the network, or the first error recorded.
func (b *Builder) Build() (*Network, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.net, nil
}

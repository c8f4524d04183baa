package nn

// Cost measures prediction error for a single output neuron.
//
// Derivative seeds the output layer's error term. Its sign convention is
// (expected - predicted): a positive derivative means the prediction
// should grow, and the weight update adds rather than subtracts.
type Cost interface {
	// Name identifies the function in logs.
	Name() string

	// Apply returns the loss for one predicted/expected pair.
	Apply(predicted, expected float64) float64

	// Derivative returns the negated gradient of Apply with respect to
	// predicted.
	Derivative(predicted, expected float64) float64
}

// MeanSquaredError computes the halved squared error of one output.
//
//	Loss       = 0.5 * (expected - predicted)²
//	Derivative = expected - predicted
//
// Summed over outputs and rows it gives the aggregate cost reported per
// epoch.
type MeanSquaredError struct{}

// Name returns "mse".
func (MeanSquaredError) Name() string { return "mse" }

// Apply computes 0.5 * (expected - predicted)².
func (MeanSquaredError) Apply(predicted, expected float64) float64 {
	d := expected - predicted
	return 0.5 * d * d
}

// Derivative computes expected - predicted.
func (MeanSquaredError) Derivative(predicted, expected float64) float64 {
	return expected - predicted
}

// CostFunc adapts a caller-supplied apply/derivative pair to the Cost
// interface. DerivativeFn must follow the (expected - predicted) sign
// convention.
type CostFunc struct {
	Label        string
	ApplyFn      func(predicted, expected float64) float64
	DerivativeFn func(predicted, expected float64) float64
}

// Name returns the caller-chosen label.
func (f CostFunc) Name() string { return f.Label }

// Apply calls ApplyFn.
func (f CostFunc) Apply(predicted, expected float64) float64 { return f.ApplyFn(predicted, expected) }

// Derivative calls DerivativeFn.
func (f CostFunc) Derivative(predicted, expected float64) float64 {
	return f.DerivativeFn(predicted, expected)
}

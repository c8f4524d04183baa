package nn

import (
	"math"
)

// Sigmoid output bounds. Outputs are clamped into this interval so the
// derivative post*(1-post) never collapses to exactly zero.
const (
	SigmoidMin = 0.00001
	SigmoidMax = 0.99999
)

// Activation is a pointwise nonlinearity applied to a layer's
// pre-activation values.
//
// Derivative receives both the pre-activation value and the value Apply
// produced for it, so each function can use whichever form is cheaper.
type Activation interface {
	// Name identifies the function in saved models and logs.
	Name() string

	// Apply maps a pre-activation value to a post-activation value.
	Apply(x float64) float64

	// Derivative returns d(post)/d(pre) at the given point.
	Derivative(pre, post float64) float64
}

// Sigmoid is the logistic activation σ(x) = 1 / (1 + exp(-x)).
//
// Output is clamped into [SigmoidMin, SigmoidMax].
//
// Example:
//
//	net.AddLayer(8, nn.Sigmoid{})
type Sigmoid struct{}

// Name returns "sigmoid".
func (Sigmoid) Name() string { return "sigmoid" }

// Apply computes the clamped logistic function.
func (Sigmoid) Apply(x float64) float64 {
	y := 1.0 / (1.0 + math.Exp(-x))
	return math.Min(math.Max(y, SigmoidMin), SigmoidMax)
}

// Derivative computes σ'(x) from the post-activation: post * (1 - post).
func (Sigmoid) Derivative(_, post float64) float64 {
	return post * (1.0 - post)
}

// Linear is the identity activation, typically used on regression outputs.
type Linear struct{}

// Name returns "linear".
func (Linear) Name() string { return "linear" }

// Apply returns x unchanged.
func (Linear) Apply(x float64) float64 { return x }

// Derivative is always 1.
func (Linear) Derivative(_, _ float64) float64 { return 1.0 }

// ReLU is the rectified linear unit f(x) = max(0, x).
type ReLU struct{}

// Name returns "relu".
func (ReLU) Name() string { return "relu" }

// Apply computes max(0, x).
func (ReLU) Apply(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

// Derivative is 0 for negative pre-activations and 1 otherwise.
func (ReLU) Derivative(pre, _ float64) float64 {
	if pre < 0 {
		return 0
	}
	return 1.0
}

// Tanh is the hyperbolic tangent activation, range (-1, 1).
type Tanh struct{}

// Name returns "tanh".
func (Tanh) Name() string { return "tanh" }

// Apply computes tanh(x).
func (Tanh) Apply(x float64) float64 { return math.Tanh(x) }

// Derivative computes 1 - post².
func (Tanh) Derivative(_, post float64) float64 {
	return 1.0 - post*post
}

// ActivationFunc adapts a caller-supplied apply/derivative pair to the
// Activation interface.
//
// Example:
//
//	softplus := nn.ActivationFunc{
//	    Label:        "softplus",
//	    ApplyFn:      func(x float64) float64 { return math.Log1p(math.Exp(x)) },
//	    DerivativeFn: func(pre, _ float64) float64 { return 1 / (1 + math.Exp(-pre)) },
//	}
type ActivationFunc struct {
	Label        string
	ApplyFn      func(x float64) float64
	DerivativeFn func(pre, post float64) float64
}

// Name returns the caller-chosen label.
func (f ActivationFunc) Name() string { return f.Label }

// Apply calls ApplyFn.
func (f ActivationFunc) Apply(x float64) float64 { return f.ApplyFn(x) }

// Derivative calls DerivativeFn.
func (f ActivationFunc) Derivative(pre, post float64) float64 { return f.DerivativeFn(pre, post) }

// Builtins returns the activation functions shipped with the package.
func Builtins() []Activation {
	return []Activation{Sigmoid{}, Linear{}, ReLU{}, Tanh{}}
}

// ActivationByName finds an activation by name among extra and the
// builtins. Entries in extra take precedence so callers can shadow a
// builtin name.
func ActivationByName(name string, extra ...Activation) (Activation, bool) {
	for _, a := range extra {
		if a != nil && a.Name() == name {
			return a, true
		}
	}
	for _, a := range Builtins() {
		if a.Name() == name {
			return a, true
		}
	}
	return nil, false
}

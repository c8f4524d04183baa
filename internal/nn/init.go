package nn

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// FanIn creates a [fanIn × fanOut] weight matrix with entries drawn
// uniformly from [-1/fanIn, 1/fanIn].
//
// Scaling by fan-in keeps early pre-activations small so sigmoid and tanh
// layers start in their responsive range.
//
// Parameters:
//   - fanIn: Number of neurons in the previous layer (matrix rows)
//   - fanOut: Number of neurons in the new layer (matrix columns)
//   - rng: Random source; seed it to reproduce a run
func FanIn(fanIn, fanOut int, rng *rand.Rand) *mat.Dense {
	bound := 1.0 / float64(fanIn)

	data := make([]float64, fanIn*fanOut)
	for i := range data {
		//nolint:gosec // Weight initialization, not security-critical
		data[i] = (rng.Float64()*2.0 - 1.0) * bound
	}

	return mat.NewDense(fanIn, fanOut, data)
}

// placeholder returns the unused 1×1 weight matrix held by the input layer.
func placeholder() *mat.Dense {
	return mat.NewDense(1, 1, nil)
}

func newSeededRand(seed uint64) *rand.Rand {
	//nolint:gosec // Intentional deterministic seed for reproducibility
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

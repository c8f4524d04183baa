package nn

// Row pairs one input vector with its expected output vector.
type Row struct {
	Inputs  []float64
	Outputs []float64
}

// Dataset is an ordered sequence of rows. Order is the presentation
// order during training.
type Dataset []Row

// Len returns the number of rows.
func (d Dataset) Len() int {
	return len(d)
}

func (d Dataset) clone() Dataset {
	out := make(Dataset, len(d))
	for i, r := range d {
		out[i] = Row{Inputs: cloneFloats(r.Inputs), Outputs: cloneFloats(r.Outputs)}
	}
	return out
}

func cloneFloats(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

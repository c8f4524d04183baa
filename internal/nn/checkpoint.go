package nn

import (
	"github.com/born-ml/perceptron/internal/serialization"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Save writes the network topology and weights to a .mlp file.
//
// Datasets and scratch state are not saved. metadata is stored verbatim
// in the file header and may be nil.
//
// Example:
//
//	if err := net.Save("concrete.mlp", map[string]string{"epochs": "11"}); err != nil {
//	    log.Fatal(err)
//	}
func (n *Network) Save(path string, metadata map[string]string) (err error) {
	if err := n.requireTopology("saving"); err != nil {
		return err
	}

	layers := make([]serialization.LayerSpec, len(n.layers))
	matrices := make([]serialization.Matrix, 0, len(n.layers)-1)
	for i, l := range n.layers {
		layers[i] = serialization.LayerSpec{Size: l.size, Activation: l.activation.Name()}
		if i == 0 {
			continue
		}
		r, c := l.weightsIn.Dims()
		matrices = append(matrices, serialization.Matrix{
			Name: serialization.WeightMatrixName(i),
			Rows: r,
			Cols: c,
			Data: mat.DenseCopyOf(l.weightsIn).RawMatrix().Data,
		})
	}

	writer, err := serialization.NewWriter(path)
	if err != nil {
		return errors.Wrap(err, "failed to create writer")
	}
	defer func() {
		if closeErr := writer.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := writer.WriteModel(layers, matrices, metadata); err != nil {
		return errors.Wrap(err, "failed to write model")
	}
	return nil
}

// Load reads a network saved with Save.
//
// Activation names are resolved with ActivationByName, so custom
// activations used when saving must be passed in extra. The returned
// network has empty datasets and is ready for Predict or further rows.
func Load(path string, extra ...Activation) (*Network, error) {
	net, _, err := LoadWithMetadata(path, extra...)
	return net, err
}

// LoadWithMetadata is Load that also returns the metadata map given to
// Save.
//
// Layers are built straight from the stored matrices; no weights are
// initialized randomly. Files whose matrices do not match the stored
// topology are rejected by the reader before any matrix is read.
func LoadWithMetadata(path string, extra ...Activation) (*Network, map[string]string, error) {
	reader, err := serialization.NewReader(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open model")
	}
	defer reader.Close()

	header := reader.Header()
	if len(header.Layers) < 2 {
		return nil, nil, configErrorf("model %s has %d layers, need at least 2", path, len(header.Layers))
	}

	activations := make([]Activation, len(header.Layers))
	for i, spec := range header.Layers {
		activation, ok := ActivationByName(spec.Activation, extra...)
		if !ok {
			return nil, nil, configErrorf("layer %d: unknown activation %q", i, spec.Activation)
		}
		activations[i] = activation
	}

	matrices, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read weights")
	}
	byName := make(map[string]serialization.Matrix, len(matrices))
	for _, m := range matrices {
		byName[m.Name] = m
	}

	net := NewNetwork()
	net.layers = append(net.layers, newLayer(header.Layers[0].Size, placeholder(), activations[0]))
	for i := 1; i < len(header.Layers); i++ {
		prev, size := header.Layers[i-1].Size, header.Layers[i].Size
		m, ok := byName[serialization.WeightMatrixName(i)]
		if !ok || m.Rows != prev || m.Cols != size {
			return nil, nil, configErrorf("layer %d: stored weights do not match %dx%d", i, prev, size)
		}
		net.layers = append(net.layers, newLayer(size, mat.NewDense(m.Rows, m.Cols, m.Data), activations[i]))
	}

	return net, header.Metadata, nil
}

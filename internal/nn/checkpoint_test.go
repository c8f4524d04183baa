package nn

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/born-ml/perceptron/internal/serialization"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	net := newXORNetwork(t)
	_, err := net.Train(TrainConfig{Epochs: 50, LearningRate: 0.05, Cost: MeanSquaredError{}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "xor.mlp")
	require.NoError(t, net.Save(path, map[string]string{"epochs": "50"}))

	loaded, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, net.Len(), loaded.Len())
	for i := 0; i < net.Len(); i++ {
		assert.Equal(t, net.Layer(i).Size(), loaded.Layer(i).Size())
		assert.Equal(t, net.Layer(i).Activation(), loaded.Layer(i).Activation())
	}

	for _, r := range xorRows {
		want, err := net.Predict(r.Inputs)
		require.NoError(t, err)
		got, err := loaded.Predict(r.Inputs)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.Zero(t, loaded.TrainingSet().Len())
	assert.Zero(t, loaded.TestingSet().Len())

	_, meta, err := LoadWithMetadata(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"epochs": "50"}, meta)
}

func TestSaveLoad_CustomActivation(t *testing.T) {
	softplus := ActivationFunc{
		Label:        "softplus",
		ApplyFn:      func(x float64) float64 { return math.Log1p(math.Exp(x)) },
		DerivativeFn: func(pre, _ float64) float64 { return 1 / (1 + math.Exp(-pre)) },
	}

	net := newTestNetwork(t, 4, []int{2, 3, 1}, []Activation{Linear{}, softplus, Linear{}})
	path := filepath.Join(t.TempDir(), "softplus.mlp")
	require.NoError(t, net.Save(path, nil))

	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrConfiguration), "unknown activation without extra")

	loaded, err := Load(path, softplus)
	require.NoError(t, err)

	x := []float64{0.5, -0.5}
	want, _ := net.Predict(x)
	got, _ := loaded.Predict(x)
	assert.Equal(t, want, got)
}

func TestSave_NeedsTwoLayers(t *testing.T) {
	net := NewNetwork()
	require.NoError(t, net.AddLayer(1, Linear{}))

	err := net.Save(filepath.Join(t.TempDir(), "x.mlp"), nil)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.mlp"))
	assert.Error(t, err)
}

// writeModelFile writes a .mlp file with the given JSON header and data
// section and a matching checksum.
func writeModelFile(t *testing.T, header string, data []byte) string {
	t.Helper()

	raw := make([]byte, serialization.FixedHeaderSize)
	copy(raw[0:4], serialization.MagicBytes)
	binary.LittleEndian.PutUint32(raw[4:8], serialization.FormatVersion)
	binary.LittleEndian.PutUint64(raw[12:20], uint64(len(header)))
	sum := serialization.ComputeChecksum(data)
	copy(raw[serialization.ChecksumOffset:], sum[:])

	raw = append(raw, header...)
	for len(raw)%serialization.HeaderAlignment != 0 {
		raw = append(raw, 0)
	}
	raw = append(raw, data...)

	path := filepath.Join(t.TempDir(), "model.mlp")
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return path
}

func TestLoad_RejectsInconsistentFiles(t *testing.T) {
	tests := []struct {
		name   string
		header string
		data   []byte
		want   error
	}{
		{
			name:   "huge layers without weights",
			header: `{"format_version":1,"layers":[{"size":200000,"activation":"linear"},{"size":200000,"activation":"linear"}],"matrices":[]}`,
			want:   serialization.ErrTopologyMismatch,
		},
		{
			name: "overflowing weight shape",
			header: `{"format_version":1,"layers":[{"size":1,"activation":"linear"},{"size":1,"activation":"linear"}],` +
				`"matrices":[{"name":"layer.1.weight","rows":2147483648,"cols":2147483648,"offset":0,"size":0}]}`,
			want: serialization.ErrInvalidShape,
		},
		{
			name: "weights for another topology",
			header: `{"format_version":1,"layers":[{"size":1,"activation":"linear"},{"size":2,"activation":"linear"}],` +
				`"matrices":[{"name":"layer.1.weight","rows":2,"cols":1,"offset":0,"size":16}]}`,
			data: make([]byte, 16),
			want: serialization.ErrTopologyMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				net *Network
				err error
			)
			require.NotPanics(t, func() {
				net, err = Load(writeModelFile(t, tt.header, tt.data))
			})
			assert.Nil(t, net)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoad_UsesStoredWeights(t *testing.T) {
	header := `{"format_version":1,"layers":[{"size":2,"activation":"linear"},{"size":1,"activation":"linear"}],` +
		`"matrices":[{"name":"layer.1.weight","rows":2,"cols":1,"offset":0,"size":16}]}`
	data := make([]byte, 16)
	binary.LittleEndian.PutUint64(data[0:8], math.Float64bits(0.5))
	binary.LittleEndian.PutUint64(data[8:16], math.Float64bits(-2))

	net, err := Load(writeModelFile(t, header, data))
	require.NoError(t, err)

	w, err := net.Weights(1)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5}, {-2}}, w)

	out, err := net.Predict([]float64{4, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, out)
}

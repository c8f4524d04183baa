package main

import (
	"strconv"
	"strings"

	"github.com/born-ml/perceptron/internal/nn"
	"github.com/pkg/errors"
)

// layerSpec is one "size:activation" entry of the -layers flag.
type layerSpec struct {
	size       int
	activation nn.Activation
}

// parseTopology parses a comma-separated list such as
// "4:sigmoid,8:sigmoid,1:linear". At least two layers are required.
func parseTopology(s string) ([]layerSpec, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 {
		return nil, errors.Errorf("topology %q: need at least 2 layers", s)
	}

	specs := make([]layerSpec, len(parts))
	for i, part := range parts {
		sizeText, name, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, errors.Errorf("layer %d: %q is not size:activation", i, part)
		}

		size, err := strconv.Atoi(sizeText)
		if err != nil || size < 1 {
			return nil, errors.Errorf("layer %d: invalid size %q", i, sizeText)
		}

		activation, found := nn.ActivationByName(strings.ToLower(name))
		if !found {
			return nil, errors.Errorf("layer %d: unknown activation %q", i, name)
		}

		specs[i] = layerSpec{size: size, activation: activation}
	}
	return specs, nil
}

func buildNetwork(specs []layerSpec, opts ...nn.Option) (*nn.Network, error) {
	net := nn.NewNetwork(opts...)
	for _, spec := range specs {
		if err := net.AddLayer(spec.size, spec.activation); err != nil {
			return nil, err
		}
	}
	return net, nil
}

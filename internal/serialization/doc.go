// Package serialization provides the .mlp format for saving and loading
// trained perceptron weights.
//
// The format is a small binary container:
//
//	Format Structure:
//	  [4 bytes: Magic "BMLP"]
//	  [4 bytes: Version (uint32 LE)]
//	  [4 bytes: Flags (uint32 LE)]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [32 bytes: SHA-256 of the data section]
//	  [Header: JSON metadata]
//	  [Padding to a 64-byte boundary]
//	  [Matrix data: float64 LE, row-major]
//
// The JSON header records the layer topology (size and activation name
// per layer) and, for every stored matrix, its name, dimensions and
// location in the data section.
//
// Example usage:
//
//	writer, err := serialization.NewWriter("model.mlp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer writer.Close()
//	err = writer.WriteModel(layers, matrices, map[string]string{"dataset": "concrete"})
//
//	reader, err := serialization.NewReader("model.mlp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reader.Close()
//	matrices, err := reader.ReadAll()
package serialization

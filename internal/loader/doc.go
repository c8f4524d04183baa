// Package loader reads training and testing rows from text streams.
//
// The stream holds two blocks, testing first and training second. Each
// block starts with a line containing its row count, followed by that
// many rows of whitespace-separated numbers: the input features, then
// the expected outputs.
//
//	3
//	540 162 2.5 28 79.99
//	332.5 228 0 270 40.27
//	...
//	696
//	...
//
// Example:
//
//	data, err := loader.Read(os.Stdin, 4, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, row := range data.Training {
//	    _ = net.AddTrainingRow(row.Inputs, row.Outputs)
//	}
//
// Scaling is left to the caller; Scaler applies caller-chosen divisors.
package loader

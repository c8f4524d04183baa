package loader

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `2
540 162 2.5 28 79.99
332.5 228 0 270 40.27

3
198.6 192 0 360 44.3
266 228 0 90 47.03
380 228 0 365 43.7
`

func TestRead(t *testing.T) {
	data, err := Read(strings.NewReader(sample), 4, 1)
	require.NoError(t, err)

	require.Len(t, data.Testing, 2)
	require.Len(t, data.Training, 3)

	assert.Equal(t, []float64{540, 162, 2.5, 28}, data.Testing[0].Inputs)
	assert.Equal(t, []float64{79.99}, data.Testing[0].Outputs)
	assert.Equal(t, []float64{380, 228, 0, 365}, data.Training[2].Inputs)
	assert.Equal(t, []float64{43.7}, data.Training[2].Outputs)
}

func TestRead_LeavesBufferedReaderAfterData(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("0\n1\n1 2 3\n540 162 2.5 28\n"))

	data, err := Read(in, 2, 1)
	require.NoError(t, err)
	require.Len(t, data.Training, 1)

	rest, err := in.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "540 162 2.5 28\n", rest)
}

func TestRead_InputsDoNotAliasOutputs(t *testing.T) {
	data, err := Read(strings.NewReader("1\n1 2 3\n0\n"), 2, 1)
	require.NoError(t, err)

	row := data.Testing[0]
	row.Inputs = append(row.Inputs, 99)
	assert.Equal(t, []float64{3}, row.Outputs)
	assert.Empty(t, data.Training)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"bad count", "two\n", 1},
		{"negative count", "-1\n", 1},
		{"count with extra fields", "2 3\n", 1},
		{"short row", "1\n1 2 3\n", 2},
		{"long row", "1\n1 2 3 4 5 6\n", 2},
		{"not a number", "1\n1 2 x 4 5\n", 2},
		{"bad training row after blank", "0\n\n1\n1 2\n", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), 4, 1)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, tt.line, perr.Line)
		})
	}
}

func TestRead_Truncated(t *testing.T) {
	for _, input := range []string{"", "1\n1 2 3 4 5\n", "2\n1 2 3 4 5\n"} {
		_, err := Read(strings.NewReader(input), 4, 1)
		assert.Error(t, err, "%q", input)
	}
}

func TestRead_InvalidShape(t *testing.T) {
	_, err := Read(strings.NewReader(sample), 0, 1)
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concrete.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	data, err := ReadFile(path, 4, 1)
	require.NoError(t, err)
	assert.Len(t, data.Training, 3)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"), 4, 1)
	assert.Error(t, err)
}

func TestParseError_Message(t *testing.T) {
	err := &ParseError{Line: 7, Msg: "expected 5 values, got 4"}
	assert.Equal(t, "line 7: expected 5 values, got 4", err.Error())
}

package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumPredict(values []float64) ([]float64, error) {
	var s float64
	for _, v := range values {
		s += v
	}
	return []float64{s}, nil
}

func TestPrompter_Run(t *testing.T) {
	var out bytes.Buffer
	p := &prompter{
		in:       bufio.NewReader(strings.NewReader("1\n2.5\n3\n4\n")),
		out:      &out,
		features: []string{"A", "B"},
		target:   "Sum",
		predict:  sumPredict,
	}

	require.NoError(t, p.run())
	assert.Equal(t, "A\nB\nSum: 3.5\nA\nB\nSum: 7\nA\n", out.String())
}

func TestPrompter_InvalidInput(t *testing.T) {
	var out bytes.Buffer
	p := &prompter{
		in:       bufio.NewReader(strings.NewReader("abc\n\n1 2\n1\n2")),
		out:      &out,
		features: []string{"A", "B"},
		target:   "Sum",
		predict:  sumPredict,
	}

	require.NoError(t, p.run())

	want := "A\n" +
		"Invalid input, try again\n" +
		"Invalid input, try again\n" +
		"Invalid input, try again\n" +
		"B\n" +
		"Sum: 3\n" +
		"A\n"
	assert.Equal(t, want, out.String())
}

func TestPrompter_EOFMidRow(t *testing.T) {
	var out bytes.Buffer
	p := &prompter{
		in:       bufio.NewReader(strings.NewReader("1\n")),
		out:      &out,
		features: []string{"A", "B"},
		target:   "Sum",
		predict:  sumPredict,
	}

	require.NoError(t, p.run())
	assert.Equal(t, "A\nB\n", out.String())
}

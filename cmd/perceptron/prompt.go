package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// prompter asks for one number per feature and answers with a prediction.
type prompter struct {
	in       *bufio.Reader
	out      io.Writer
	features []string
	target   string
	predict  func([]float64) ([]float64, error)
}

// run loops until in is exhausted. Reaching EOF is not an error.
func (p *prompter) run() error {
	for {
		values := make([]float64, len(p.features))
		for i, name := range p.features {
			v, err := p.ask(name)
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			values[i] = v
		}

		outputs, err := p.predict(values)
		if err != nil {
			return errors.Wrap(err, "prediction failed")
		}
		fmt.Fprintf(p.out, "%s: %v\n", p.target, outputs[0])
	}
}

// ask prints name and reads lines until one holds a single number.
func (p *prompter) ask(name string) (float64, error) {
	fmt.Fprintln(p.out, name)
	for {
		line, err := p.in.ReadString('\n')
		if line == "" && err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}
			return 0, errors.Wrap(err, "failed to read input")
		}

		if v, parseErr := strconv.ParseFloat(strings.TrimSpace(line), 64); parseErr == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, "Invalid input, try again")
	}
}

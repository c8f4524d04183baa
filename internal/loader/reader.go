package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Row is one parsed line: input features followed by expected outputs.
type Row struct {
	Inputs  []float64
	Outputs []float64
}

// Data holds the two blocks of a stream.
type Data struct {
	Testing  []Row
	Training []Row
}

// ParseError reports a malformed line.
type ParseError struct {
	Line int    // 1-based line number
	Msg  string // What was wrong
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// lineScanner yields non-blank lines with their line numbers. It never
// reads past the current line, so the underlying reader can be shared.
type lineScanner struct {
	r    *bufio.Reader
	line int
}

func (s *lineScanner) next() ([]string, error) {
	for {
		text, err := s.r.ReadString('\n')
		if text != "" {
			s.line++
			if fields := strings.Fields(text); len(fields) > 0 {
				return fields, nil
			}
		}
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read stream")
		}
	}
}

// Read parses a testing block followed by a training block from r.
//
// Every row must have exactly inputs+outputs numbers. Blank lines are
// ignored. If r is a *bufio.Reader it is read directly and left
// positioned just after the last training row.
func Read(r io.Reader, inputs, outputs int) (*Data, error) {
	if inputs < 1 || outputs < 1 {
		return nil, errors.Errorf("row shape must be positive, got %d inputs and %d outputs", inputs, outputs)
	}

	s := &lineScanner{r: bufio.NewReader(r)}

	testing, err := readBlock(s, "testing", inputs, outputs)
	if err != nil {
		return nil, err
	}
	training, err := readBlock(s, "training", inputs, outputs)
	if err != nil {
		return nil, err
	}

	return &Data{Testing: testing, Training: training}, nil
}

// ReadFile opens path and calls Read. A path of "-" reads standard input.
func ReadFile(path string, inputs, outputs int) (*Data, error) {
	if path == "-" {
		return Read(os.Stdin, inputs, outputs)
	}

	//nolint:gosec // G304: File path comes from user input, which is expected for dataset loading
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open dataset")
	}
	defer f.Close()

	data, err := Read(f, inputs, outputs)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return data, nil
}

func readBlock(s *lineScanner, name string, inputs, outputs int) ([]Row, error) {
	fields, err := s.next()
	if err == io.EOF {
		return nil, errors.Errorf("%s block: missing row count", name)
	}
	if err != nil {
		return nil, err
	}

	if len(fields) != 1 {
		return nil, errors.WithStack(&ParseError{Line: s.line, Msg: fmt.Sprintf("%s block: expected a row count, got %d fields", name, len(fields))})
	}
	count, err := strconv.Atoi(fields[0])
	if err != nil || count < 0 {
		return nil, errors.WithStack(&ParseError{Line: s.line, Msg: fmt.Sprintf("%s block: invalid row count %q", name, fields[0])})
	}

	rows := make([]Row, 0, min(count, 1024))
	for i := 0; i < count; i++ {
		fields, err := s.next()
		if err == io.EOF {
			return nil, errors.Errorf("%s block: expected %d rows, stream ended after %d", name, count, i)
		}
		if err != nil {
			return nil, err
		}

		row, err := parseRow(fields, inputs, outputs)
		if err != nil {
			return nil, errors.WithStack(&ParseError{Line: s.line, Msg: err.Error()})
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseRow(fields []string, inputs, outputs int) (Row, error) {
	if len(fields) != inputs+outputs {
		return Row{}, errors.Errorf("expected %d values, got %d", inputs+outputs, len(fields))
	}

	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Row{}, errors.Errorf("value %d: %q is not a number", i+1, f)
		}
		values[i] = v
	}

	return Row{Inputs: values[:inputs:inputs], Outputs: values[inputs:]}, nil
}

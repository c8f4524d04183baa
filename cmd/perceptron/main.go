// Package main provides the perceptron CLI.
//
// It builds a multilayer perceptron, trains it on a stream holding a
// testing block followed by a training block, and then answers
// interactive prediction queries on standard input.
//
// With no flags it reproduces the concrete compressive strength model:
//
//	perceptron < concrete.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/perceptron/internal/loader"
	"github.com/born-ml/perceptron/internal/nn"
	"github.com/born-ml/perceptron/internal/report"
	"github.com/pkg/errors"
)

const version = "v0.1.0"

// options holds parsed command line flags.
type options struct {
	data        string
	epochs      int
	lr          float64
	seed        uint64
	layers      string
	scale       string
	save        string
	load        string
	plot        string
	logLevel    string
	interactive bool
	features    string
	target      string
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("perceptron %s\n", version)
		return
	}

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "perceptron: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("perceptron", flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &options{}
	fs.StringVar(&o.data, "data", "-", "Dataset stream: testing block then training block (- = stdin)")
	fs.IntVar(&o.epochs, "epochs", 11, "Number of training epochs")
	fs.Float64Var(&o.lr, "lr", 0.1, "Learning rate")
	fs.Uint64Var(&o.seed, "seed", 0, "Weight initialization seed (0 = random)")
	fs.StringVar(&o.layers, "layers", "4:sigmoid,8:sigmoid,1:linear", "Topology as size:activation pairs")
	fs.StringVar(&o.scale, "scale", "", "Comma-separated divisors for every input then output column")
	fs.StringVar(&o.save, "save", "", "Write the trained model to this .mlp file")
	fs.StringVar(&o.load, "load", "", "Load a .mlp model instead of training")
	fs.StringVar(&o.plot, "plot", "", "Save the per-epoch testing cost curve (.png, .svg, .pdf)")
	fs.StringVar(&o.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.BoolVar(&o.interactive, "interactive", true, "Prompt for features after training")
	fs.StringVar(&o.features, "features", "Cement,Water,Superplasticizer,Age", "Prompt label of each input")
	fs.StringVar(&o.target, "target", "Concrete compressive strength", "Label printed before each prediction")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(stderr, o.logLevel)
	if err != nil {
		return err
	}

	// Data and prompts may share stdin, so both read through one buffer.
	in := bufio.NewReader(stdin)

	var net *nn.Network
	if o.load != "" {
		var meta map[string]string
		net, meta, err = nn.LoadWithMetadata(o.load)
		if err != nil {
			return err
		}
		logger.Info("model loaded", "path", o.load, "layers", net.Len(), "metadata", meta)
	} else {
		net, err = newNetwork(o)
		if err != nil {
			return err
		}
	}

	scaler, err := newScaler(o.scale, net.InputSize(), net.OutputSize())
	if err != nil {
		return err
	}

	if o.load == "" {
		if err := train(net, o, in, scaler, logger); err != nil {
			return err
		}
	}

	if o.save != "" {
		meta := map[string]string{
			"epochs":        strconv.Itoa(o.epochs),
			"learning_rate": strconv.FormatFloat(o.lr, 'g', -1, 64),
		}
		if err := net.Save(o.save, meta); err != nil {
			return err
		}
		logger.Info("model saved", "path", o.save)
	}

	if !o.interactive {
		return nil
	}

	features := strings.Split(o.features, ",")
	if len(features) != net.InputSize() {
		features = make([]string, net.InputSize())
		for i := range features {
			features[i] = fmt.Sprintf("Feature %d", i+1)
		}
	}

	p := &prompter{
		in:       in,
		out:      stdout,
		features: features,
		target:   o.target,
		predict: func(values []float64) ([]float64, error) {
			scaled, err := scaler.Inputs(values)
			if err != nil {
				return nil, err
			}
			out, err := net.Predict(scaled)
			if err != nil {
				return nil, err
			}
			return scaler.Unscale(out)
		},
	}
	return p.run()
}

func newNetwork(o *options) (*nn.Network, error) {
	specs, err := parseTopology(o.layers)
	if err != nil {
		return nil, err
	}

	var opts []nn.Option
	if o.seed != 0 {
		opts = append(opts, nn.WithSeed(o.seed))
	}
	return buildNetwork(specs, opts...)
}

// newScaler splits the -scale divisors into input and output columns.
func newScaler(flagValue string, inputs, outputs int) (*loader.Scaler, error) {
	divisors, err := loader.ParseDivisors(flagValue)
	if err != nil {
		return nil, errors.Wrap(err, "invalid -scale")
	}
	if divisors == nil {
		return loader.NewScaler(nil, nil)
	}
	if len(divisors) != inputs+outputs {
		return nil, errors.Errorf("-scale has %d divisors, network needs %d", len(divisors), inputs+outputs)
	}
	return loader.NewScaler(divisors[:inputs:inputs], divisors[inputs:])
}

func train(net *nn.Network, o *options, in *bufio.Reader, scaler *loader.Scaler, logger *slog.Logger) error {
	var (
		data *loader.Data
		err  error
	)
	if o.data == "-" {
		data, err = loader.Read(in, net.InputSize(), net.OutputSize())
	} else {
		data, err = loader.ReadFile(o.data, net.InputSize(), net.OutputSize())
	}
	if err != nil {
		return err
	}

	for _, rows := range [][]loader.Row{data.Testing, data.Training} {
		if err := scaler.Rows(rows); err != nil {
			return err
		}
	}
	for _, row := range data.Testing {
		if err := net.AddTestingRow(row.Inputs, row.Outputs); err != nil {
			return err
		}
	}
	for _, row := range data.Training {
		if err := net.AddTrainingRow(row.Inputs, row.Outputs); err != nil {
			return err
		}
	}
	logger.Info("dataset loaded", "testing", len(data.Testing), "training", len(data.Training))

	curve := report.NewCostCurve("Testing cost")
	_, err = net.Train(nn.TrainConfig{
		Epochs:       o.epochs,
		LearningRate: o.lr,
		Cost:         nn.MeanSquaredError{},
		Logger:       logger,
		OnEpoch: func(epoch int, cost float64) {
			curve.Record(epoch, cost)
			logger.Info("epoch", "n", epoch, "of", o.epochs, "cost", cost)
		},
	})
	if err != nil {
		return err
	}

	if o.plot != "" && curve.Len() > 0 {
		if err := curve.Save(o.plot); err != nil {
			return err
		}
		epoch, cost := curve.Best()
		logger.Info("cost curve saved", "path", o.plot, "best_epoch", epoch, "best_cost", cost)
	}
	return nil
}

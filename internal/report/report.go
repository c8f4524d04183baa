// Package report renders training diagnostics.
package report

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoPoints is returned when saving a curve with nothing recorded.
var ErrNoPoints = errors.New("cost curve has no points")

// CostCurve collects the aggregate testing cost of each epoch.
//
// Record has the signature of nn.TrainConfig.OnEpoch, so a curve can be
// plugged straight into a training run:
//
//	curve := report.NewCostCurve("concrete")
//	_, err := net.Train(nn.TrainConfig{..., OnEpoch: curve.Record})
//	err = curve.Save("cost.png")
type CostCurve struct {
	title  string
	points plotter.XYs
}

// NewCostCurve creates an empty curve.
func NewCostCurve(title string) *CostCurve {
	return &CostCurve{title: title}
}

// Record appends one (epoch, cost) point.
func (c *CostCurve) Record(epoch int, cost float64) {
	c.points = append(c.points, plotter.XY{X: float64(epoch), Y: cost})
}

// Len returns the number of recorded points.
func (c *CostCurve) Len() int {
	return len(c.points)
}

// Best returns the epoch with the lowest cost and that cost.
func (c *CostCurve) Best() (epoch int, cost float64) {
	cost = math.Inf(1)
	for _, p := range c.points {
		if p.Y < cost {
			epoch, cost = int(p.X), p.Y
		}
	}
	return epoch, cost
}

// Save draws the curve to path. The image format follows the file
// extension (.png, .svg, .pdf, ...).
func (c *CostCurve) Save(path string) error {
	if len(c.points) == 0 {
		return errors.WithStack(ErrNoPoints)
	}

	p := plot.New()
	p.Title.Text = c.title
	p.X.Label.Text = "Epoch"
	p.Y.Label.Text = "Aggregate testing cost"
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(c.points)
	if err != nil {
		return errors.Wrap(err, "failed to build cost line")
	}
	p.Add(line, points)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "failed to save plot to %s", path)
	}
	return nil
}

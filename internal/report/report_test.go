package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostCurve_Record(t *testing.T) {
	c := NewCostCurve("xor")
	for epoch, cost := range []float64{1.2, 0.8, 0.9, 0.4} {
		c.Record(epoch+1, cost)
	}

	assert.Equal(t, 4, c.Len())

	epoch, cost := c.Best()
	assert.Equal(t, 4, epoch)
	assert.Equal(t, 0.4, cost)
}

func TestCostCurve_Save(t *testing.T) {
	c := NewCostCurve("xor")
	c.Record(1, 1.0)
	c.Record(2, 0.5)
	c.Record(3, 0.25)

	for _, name := range []string{"cost.png", "cost.svg"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, c.Save(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestCostCurve_SaveEmpty(t *testing.T) {
	err := NewCostCurve("empty").Save(filepath.Join(t.TempDir(), "cost.png"))
	assert.True(t, errors.Is(err, ErrNoPoints))
}

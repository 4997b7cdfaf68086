package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ProductionAxes(t *testing.T) {
	t.Parallel()

	sweep := Default()

	assert.Equal(t, []int{12, 16, 20, 24, 28}, sweep.Sizes)
	assert.Len(t, sweep.CoarseLambdas, 8)
	assert.Len(t, sweep.FineLambdas, 9)
	assert.Equal(t, 3, sweep.Samples)

	// The production table is 5 sizes × 17 distinct lambdas × 3 samples.
	assert.Equal(t, 255, len(sweep.Sizes)*(len(sweep.CoarseLambdas)+len(sweep.FineLambdas))*sweep.Samples)
}

func TestDefault_Constants(t *testing.T) {
	t.Parallel()

	sweep := Default()

	assert.Equal(t, 256, sweep.MaxDim)
	assert.Equal(t, 1e-12, sweep.Cutoff)
	assert.Equal(t, 1000, sweep.NTrials)
	assert.Equal(t, 50000, sweep.Chunk4)
	assert.Equal(t, 1234, sweep.BaseSeed)
	assert.Equal(t, "output", sweep.OutDir)
	assert.Equal(t, "jobs/params_production.txt", sweep.OutputPath)
}

func TestDefault_ReturnsFreshCopies(t *testing.T) {
	t.Parallel()

	a := Default()
	a.Sizes[0] = 99

	b := Default()
	require.Equal(t, 12, b.Sizes[0], "mutating one Default() result must not leak into the next")
}

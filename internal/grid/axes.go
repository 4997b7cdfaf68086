package grid

import (
	"context"
	"math"
	"sort"

	"github.com/vk/jobgridgo/internal/ctxlog"
)

// Round6 rounds v to 6 decimal places, half away from zero.
func Round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// Lambdas merges the coarse and fine coupling grids into a single strictly
// ascending, duplicate-free axis. A value listed in both grids collapses
// to one entry: repetition does not weight a value with extra jobs.
func Lambdas(ctx context.Context, coarse, fine []float64) []float64 {
	logger := ctxlog.FromContext(ctx)

	seen := make(map[float64]struct{}, len(coarse)+len(fine))
	merged := make([]float64, 0, len(coarse)+len(fine))

	for _, lam := range append(append([]float64(nil), coarse...), fine...) {
		key := Round6(lam)
		if _, dup := seen[key]; dup {
			logger.Debug("Duplicate lambda collapsed.", "lambda", lam)
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, lam)
	}

	sort.Float64s(merged)
	return merged
}

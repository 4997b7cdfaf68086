package grid

import (
	"context"
	"fmt"

	"github.com/vk/jobgridgo/internal/config"
	"github.com/vk/jobgridgo/internal/ctxlog"
)

// Build expands the sweep into its job table.
//
// The loop nesting is a compatibility contract with the downstream
// dispatcher: size-major (in literal order), lambda-next (ascending),
// sample-minor (1..Samples), with the 1-based job ID assigned in exactly
// that order. Seeds derive from the ID, so reordering the loops would
// silently change every downstream run.
func Build(ctx context.Context, sweep config.Sweep) Table {
	logger := ctxlog.FromContext(ctx)

	lambdas := Lambdas(ctx, sweep.CoarseLambdas, sweep.FineLambdas)

	// Empty axes are not validated: a degenerate sweep builds an empty
	// table and the caller writes an empty file.
	var jobs []Job
	id := 0
	for _, size := range sweep.Sizes {
		for _, lam := range lambdas {
			for sample := 1; sample <= sweep.Samples; sample++ {
				id++
				jobs = append(jobs, Job{
					ID:        id,
					L:         size,
					Lambda:    lam,
					LambdaX:   Round6(lam),
					LambdaZZ:  Round6(1.0 - lam),
					Sample:    sample,
					Seed:      sweep.BaseSeed + id,
					OutPrefix: fmt.Sprintf("L%d_lam%.3f_s%d", size, lam, sample),
				})
			}
		}
	}

	logger.Debug("Sweep expanded.",
		"sizes", len(sweep.Sizes), "lambdas", len(lambdas), "samples", sweep.Samples, "jobs", len(jobs))
	return Table{Jobs: jobs, Lambdas: lambdas}
}

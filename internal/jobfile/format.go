// Package jobfile renders a job table into the flat text format the batch
// dispatcher consumes and persists it to disk.
package jobfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/jobgridgo/internal/config"
	"github.com/vk/jobgridgo/internal/grid"
)

// formatFloat renders a float in its shortest round-trip decimal form:
// "0.5" rather than "0.500000", "1e-12" rather than a long zero run. This
// is the numeric format the dispatcher has always been fed.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Line renders one job as the twelve-token "--name value" line the
// dispatcher parses. The field order is fixed; changing it breaks the
// consumer.
func Line(sweep config.Sweep, job grid.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--L %d", job.L)
	fmt.Fprintf(&b, " --lambda_x %s", formatFloat(job.LambdaX))
	fmt.Fprintf(&b, " --lambda_zz %s", formatFloat(job.LambdaZZ))
	fmt.Fprintf(&b, " --lambda %s", formatFloat(job.Lambda))
	fmt.Fprintf(&b, " --maxdim %d", sweep.MaxDim)
	fmt.Fprintf(&b, " --cutoff %s", formatFloat(sweep.Cutoff))
	fmt.Fprintf(&b, " --ntrials %d", sweep.NTrials)
	fmt.Fprintf(&b, " --chunk4 %d", sweep.Chunk4)
	fmt.Fprintf(&b, " --seed %d", job.Seed)
	fmt.Fprintf(&b, " --sample %d", job.Sample)
	fmt.Fprintf(&b, " --out_prefix %s", job.OutPrefix)
	fmt.Fprintf(&b, " --outdir %s", sweep.OutDir)
	return b.String()
}

package app

import (
	"context"
	"fmt"

	"github.com/vk/jobgridgo/internal/ctxlog"
	"github.com/vk/jobgridgo/internal/grid"
	"github.com/vk/jobgridgo/internal/jobfile"
)

// Run executes the generator: expand the sweep into its job table, persist
// the table, and print the run summary.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	table := grid.Build(ctx, a.sweep)
	a.logger.Debug("Job table built.", "jobs", len(table.Jobs), "lambdas", len(table.Lambdas))

	if err := jobfile.Write(ctx, a.sweep, table); err != nil {
		return fmt.Errorf("failed to write job table: %w", err)
	}
	a.logger.Info("Job table written.", "path", a.sweep.OutputPath, "jobs", len(table.Jobs))

	fmt.Fprintf(a.outW, "Generated %d parameter combinations\n", len(table.Jobs))
	fmt.Fprintf(a.outW, "System sizes: %d\n", len(a.sweep.Sizes))
	fmt.Fprintf(a.outW, "Lambda values: %d\n", len(table.Lambdas))
	fmt.Fprintf(a.outW, "Samples per lambda: %d\n", a.sweep.Samples)
	fmt.Fprintf(a.outW, "Total: %d × %d × %d = %d jobs\n",
		len(a.sweep.Sizes), len(table.Lambdas), a.sweep.Samples, len(table.Jobs))

	a.logger.Debug("App.Run method finished.")
	return nil
}

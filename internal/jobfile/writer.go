package jobfile

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/vk/jobgridgo/internal/config"
	"github.com/vk/jobgridgo/internal/ctxlog"
	"github.com/vk/jobgridgo/internal/grid"
)

// Write renders the table and persists it to the sweep's output path, one
// newline-terminated line per job, create/truncate. The parent directory
// must already exist; a missing parent surfaces as the returned error.
// This is the generator's only runtime failure path.
func Write(ctx context.Context, sweep config.Sweep, table grid.Table) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Writing job table.", "path", sweep.OutputPath, "jobs", len(table.Jobs))

	f, err := os.Create(sweep.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create job table file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, job := range table.Jobs {
		if _, err := w.WriteString(Line(sweep, job) + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("failed to write job line %d: %w", job.ID, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush job table: %w", err)
	}
	return f.Close()
}

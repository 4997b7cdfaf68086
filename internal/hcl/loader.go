package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/jobgridgo/internal/config"
	"github.com/vk/jobgridgo/internal/ctxlog"
	"github.com/vk/jobgridgo/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL sweep loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileSchema admits only top-level sweep blocks.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "sweep"}},
}

// Load discovers .hcl files under the given paths and overlays their sweep
// blocks onto the base model, later files overriding earlier ones.
func (l *Loader) Load(ctx context.Context, base config.Sweep, paths ...string) (config.Sweep, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL sweep loader started.", "path_count", len(paths))

	files, err := l.findSweepFiles(paths)
	if err != nil {
		return base, err
	}
	logger.Debug("Discovered sweep files.", "count", len(files))

	parser := hclparse.NewParser()
	sweep := base

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return base, fmt.Errorf("failed to parse sweep file %s: %w", file, diags)
		}

		content, diags := hclFile.Body.Content(fileSchema)
		if diags.HasErrors() {
			return base, fmt.Errorf("failed to decode sweep file %s: %w", file, diags)
		}

		for _, block := range content.Blocks {
			if err := l.applySweepBlock(ctx, block, &sweep); err != nil {
				return base, fmt.Errorf("invalid sweep block in %s: %w", file, err)
			}
		}
	}

	logger.Debug("HCL sweep loading complete.")
	return sweep, nil
}

// findSweepFiles flattens the given paths into the list of .hcl files they
// contain. Unlike a default search path, a missing path is an error here:
// the user named it explicitly.
func (l *Loader) findSweepFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
			for _, p := range found {
				add(p)
			}
		} else if filepath.Ext(path) == ".hcl" {
			add(path)
		}
	}
	return allFiles, nil
}

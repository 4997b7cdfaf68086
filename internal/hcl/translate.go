// This file contains the logic for evaluating the attributes of a sweep
// block and converting them onto the Go model via cty.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/jobgridgo/internal/config"
	"github.com/vk/jobgridgo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// sweepSchema lists every overridable attribute of a sweep block. All
// attributes are optional; unknown attributes are rejected by Content.
var sweepSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "sizes"},
		{Name: "coarse_lambdas"},
		{Name: "fine_lambdas"},
		{Name: "samples"},
		{Name: "maxdim"},
		{Name: "cutoff"},
		{Name: "ntrials"},
		{Name: "chunk4"},
		{Name: "base_seed"},
		{Name: "outdir"},
		{Name: "output"},
	},
}

// target pairs the cty type an attribute must convert to with the model
// field it populates.
type target struct {
	ctyType cty.Type
	dst     any
}

// applySweepBlock evaluates the attributes of one sweep block and writes
// them over the corresponding fields of the model.
func (l *Loader) applySweepBlock(ctx context.Context, block *hcl.Block, sweep *config.Sweep) error {
	logger := ctxlog.FromContext(ctx)

	content, diags := block.Body.Content(sweepSchema)
	if diags.HasErrors() {
		return diags
	}

	targets := map[string]target{
		"sizes":          {cty.List(cty.Number), &sweep.Sizes},
		"coarse_lambdas": {cty.List(cty.Number), &sweep.CoarseLambdas},
		"fine_lambdas":   {cty.List(cty.Number), &sweep.FineLambdas},
		"samples":        {cty.Number, &sweep.Samples},
		"maxdim":         {cty.Number, &sweep.MaxDim},
		"cutoff":         {cty.Number, &sweep.Cutoff},
		"ntrials":        {cty.Number, &sweep.NTrials},
		"chunk4":         {cty.Number, &sweep.Chunk4},
		"base_seed":      {cty.Number, &sweep.BaseSeed},
		"outdir":         {cty.String, &sweep.OutDir},
		"output":         {cty.String, &sweep.OutputPath},
	}

	for name, attr := range content.Attributes {
		tgt, known := targets[name]
		if !known {
			// sweepSchema and targets must stay in sync.
			return fmt.Errorf("attribute %q has no model target", name)
		}

		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}

		converted, err := convert.Convert(val, tgt.ctyType)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}
		if err := gocty.FromCtyValue(converted, tgt.dst); err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}
		logger.Debug("Sweep attribute applied.", "attribute", name)
	}

	return nil
}

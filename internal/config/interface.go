package config

import "context"

// Loader overlays declarative sweep definitions from external files onto a
// base model. Implementations are format-specific; the rest of the
// application only ever sees the resolved Sweep.
type Loader interface {
	Load(ctx context.Context, base Sweep, paths ...string) (Sweep, error)
}

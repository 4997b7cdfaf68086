package config

// Sweep describes one parameter sweep: the three axes expanded into the
// Cartesian product, and the scalar constants repeated on every job line.
type Sweep struct {
	// Sizes is the system-size axis, enumerated in its literal order.
	Sizes []int

	// CoarseLambdas and FineLambdas are the two coupling-value grids.
	// They are merged, deduplicated, and sorted before enumeration.
	CoarseLambdas []float64
	FineLambdas   []float64

	// Samples is the replica count per (size, lambda) pair.
	Samples int

	MaxDim   int
	Cutoff   float64
	NTrials  int
	Chunk4   int
	BaseSeed int

	// OutDir is the working directory passed through to every job.
	OutDir string

	// OutputPath is where the job table itself is written.
	OutputPath string
}

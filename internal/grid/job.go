package grid

// Job is one fully derived entry of the job table. Records are ephemeral:
// built, rendered to a line, and discarded with the table.
type Job struct {
	// ID is the 1-based sequential identifier assigned in enumeration
	// order. Seeds derive from it, so it is part of the output contract.
	ID int

	// L is the system size.
	L int

	// Lambda is the coupling value as it appears on the axis, unrounded.
	Lambda float64

	// LambdaX and LambdaZZ are the derived coupling pair, each rounded to
	// 6 decimal places. They sum to 1 within that rounding.
	LambdaX  float64
	LambdaZZ float64

	// Sample is the 1-based replica index.
	Sample int

	// Seed is BaseSeed + ID.
	Seed int

	// OutPrefix is "L<size>_lam<lambda %.3f>_s<sample>", unique per job.
	OutPrefix string
}

// Table is the fully expanded job table together with the merged lambda
// axis it was enumerated from.
type Table struct {
	Jobs    []Job
	Lambdas []float64
}

package config

// Default returns the production sweep. Running the generator with no
// sweep files reproduces the historical jobs/params_production.txt table
// byte for byte, so these literals must not drift casually.
func Default() Sweep {
	return Sweep{
		Sizes:         []int{12, 16, 20, 24, 28},
		CoarseLambdas: []float64{0.1, 0.2, 0.3, 0.4, 0.6, 0.7, 0.8, 0.9},
		FineLambdas:   []float64{0.46, 0.47, 0.48, 0.49, 0.50, 0.51, 0.52, 0.53, 0.54},
		Samples:       3,

		MaxDim:   256,
		Cutoff:   1e-12,
		NTrials:  1000,
		Chunk4:   50000,
		BaseSeed: 1234,

		OutDir:     "output",
		OutputPath: "jobs/params_production.txt",
	}
}

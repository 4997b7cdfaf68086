package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A sweep file with a syntax error is guaranteed to panic during the
	// loading phase inside app.NewApp().
	invalidHCL := `
		sweep {
			samples =
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "sweep.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	// run should recover the panic and return it as an error.
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "failed to parse"), "The error message should contain the underlying reason for the panic.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_GeneratesTable(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	sweepPath := filepath.Join(tempDir, "sweep.hcl")
	outputPath := filepath.Join(tempDir, "params.txt")
	sweepHCL := `
		sweep {
			sizes          = [12]
			coarse_lambdas = [0.5]
			fine_lambdas   = [0.5]
			samples        = 1
			base_seed      = 1000
		}
	`
	require.NoError(t, os.WriteFile(sweepPath, []byte(sweepHCL), 0600))

	args := []string{"-sweep", sweepPath, "-output", outputPath}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "Generated 1 parameter combinations")

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.Equal(t,
		"--L 12 --lambda_x 0.5 --lambda_zz 0.5 --lambda 0.5 --maxdim 256 --cutoff 1e-12 "+
			"--ntrials 1000 --chunk4 50000 --seed 1001 --sample 1 --out_prefix L12_lam0.500_s1 --outdir output\n",
		string(data))
}

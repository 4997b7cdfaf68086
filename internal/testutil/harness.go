// Package testutil provides a standardized harness for running the
// generator end to end in tests, plus small shared test helpers.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/jobgridgo/internal/app"
	"github.com/vk/jobgridgo/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an end-to-end generator run.
type HarnessResult struct {
	// OutputPath is where the harness pointed the job table.
	OutputPath string
	// Output is everything the app wrote to its writer (logs + summary).
	Output string
	Err    error
	App    *app.App
}

// RunGeneratorTest writes the given sweep files into a temporary directory,
// redirects the job table into that directory, and runs the generator end
// to end. With no files the compiled-in production sweep is used.
func RunGeneratorTest(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", ".tmp-generator-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	sweepDir := filepath.Join(tmpDir, "sweep")
	jobsDir := filepath.Join(tmpDir, "jobs")
	require.NoError(t, os.Mkdir(sweepDir, 0755))
	require.NoError(t, os.Mkdir(jobsDir, 0755))

	for name, content := range files {
		filePath := filepath.Join(sweepDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	outputPath := filepath.Join(jobsDir, "params.txt")
	appConfig := &app.Config{
		OutputPath: outputPath,
		LogLevel:   "debug",
		LogFormat:  "text",
	}
	if len(files) > 0 {
		appConfig.SweepPath = sweepDir
	}

	outBuf := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(outBuf, appConfig, hcl.NewLoader())
	}()

	if panicErr != nil {
		return &HarnessResult{
			OutputPath: outputPath,
			Output:     outBuf.String(),
			Err:        fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(context.Background())
	return &HarnessResult{
		OutputPath: outputPath,
		Output:     outBuf.String(),
		Err:        runErr,
		App:        testApp,
	}
}

// TableLines reads the job table at path and returns its lines without the
// trailing newline. An empty table yields nil.
func TableLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	trimmed := strings.TrimSuffix(string(data), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// Package support contains the shared state and step definitions for the
// CLI integration tests.
package support

import (
	"fmt"
	"os"
	"path/filepath"
)

// TestContext holds the state of one scenario: the last executed command and
// the scenario's sandbox directory.
type TestContext struct {
	LastCommand  string
	LastOutput   string
	LastError    error
	LastExitCode int

	// WorkingDir is the project root; commands run relative to it.
	WorkingDir string

	// TempDir is the scenario sandbox for inputs and outputs.
	TempDir string

	EnvVars []string
}

// NewTestContext creates a scenario context rooted at the project directory.
func NewTestContext() (*TestContext, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	// Test execution may start in a subdirectory; walk up to go.mod.
	currentDir := workingDir
	for {
		if _, err := os.Stat(filepath.Join(currentDir, "go.mod")); err == nil {
			workingDir = currentDir
			break
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	tempDir, err := os.MkdirTemp("", "outliner-test-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	return &TestContext{
		WorkingDir: workingDir,
		TempDir:    tempDir,
		EnvVars:    []string{},
	}, nil
}

// Cleanup removes the scenario sandbox.
func (testCtx *TestContext) Cleanup() error {
	if testCtx.TempDir == "" {
		return nil
	}
	return os.RemoveAll(testCtx.TempDir)
}

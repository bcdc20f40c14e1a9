// Package testutil provides test utilities and helpers for releasekit tests.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"testing"
)

// HelperProcessConfig configures the behavior of TestHelperProcess.
type HelperProcessConfig struct {
	// ExitCode is the exit code to return (default 0).
	ExitCode int `json:"exit_code"`
	// Stdout is the content to write to stdout.
	Stdout string `json:"stdout"`
	// Stderr is the content to write to stderr.
	Stderr string `json:"stderr"`
}

// HelperProcessEnvVars contains the environment variable names used by TestHelperProcess.
const (
	// EnvWantHelperProcess signals that the test binary should run as a helper process.
	EnvWantHelperProcess = "GO_WANT_HELPER_PROCESS"
	// EnvHelperProcessConfig contains JSON-encoded HelperProcessConfig.
	EnvHelperProcessConfig = "GO_HELPER_PROCESS_CONFIG"
	// EnvHelperProcessArgs contains the original command-line arguments (JSON array).
	EnvHelperProcessArgs = "GO_HELPER_PROCESS_ARGS"
)

// TestHelperProcess is a function to be called from a test function to
// implement the helper process pattern. When invoked with
// GO_WANT_HELPER_PROCESS=1, it behaves as a mock subprocess and exits without
// returning.
//
// Usage in test file:
//
//	func TestHelperProcess(t *testing.T) {
//	    testutil.TestHelperProcess(t)
//	}
//
// If GO_WANT_HELPER_PROCESS is not set, it returns immediately, allowing
// normal test execution.
func TestHelperProcess(t *testing.T) {
	if os.Getenv(EnvWantHelperProcess) != "1" {
		return
	}

	config := HelperProcessConfig{}
	if configJSON := os.Getenv(EnvHelperProcessConfig); configJSON != "" {
		// Ignore parse errors; use defaults on failure
		_ = json.Unmarshal([]byte(configJSON), &config)
	}

	if config.Stdout != "" {
		fmt.Fprint(os.Stdout, config.Stdout)
	}
	if config.Stderr != "" {
		fmt.Fprint(os.Stderr, config.Stderr)
	}
	os.Exit(config.ExitCode)
}

// CommandFunc has the signature of exec.CommandContext.
type CommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// Invocation records one call made through a fake CommandFunc.
type Invocation struct {
	Name string
	Args []string
}

// CommandRecorder hands out helper-process commands and records what was asked for.
type CommandRecorder struct {
	mu    sync.Mutex
	calls []Invocation
}

// Calls returns the recorded invocations in order.
func (r *CommandRecorder) Calls() []Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Invocation(nil), r.calls...)
}

// FakeCommand returns a CommandFunc that, instead of running the real
// program, runs the test binary as a helper process behaving per config.
// testName must name a test function that calls TestHelperProcess.
func FakeCommand(t *testing.T, testName string, config HelperProcessConfig) (CommandFunc, *CommandRecorder) {
	t.Helper()

	testBinary, err := os.Executable()
	if err != nil {
		t.Fatalf("failed to get test binary path: %v", err)
	}

	rec := &CommandRecorder{}
	fn := func(ctx context.Context, name string, args ...string) *exec.Cmd {
		rec.mu.Lock()
		rec.calls = append(rec.calls, Invocation{Name: name, Args: append([]string(nil), args...)})
		rec.mu.Unlock()

		cmd := exec.CommandContext(ctx, testBinary, "-test.run=^"+testName+"$")
		cmd.Env = buildHelperEnv(config, args)
		return cmd
	}
	return fn, rec
}

// buildHelperEnv constructs the environment variables for helper process.
func buildHelperEnv(config HelperProcessConfig, args []string) []string {
	env := os.Environ()
	env = append(env, EnvWantHelperProcess+"=1")

	if configJSON, err := json.Marshal(config); err == nil {
		env = append(env, EnvHelperProcessConfig+"="+string(configJSON))
	}
	if argsJSON, err := json.Marshal(args); err == nil {
		env = append(env, EnvHelperProcessArgs+"="+string(argsJSON))
	}

	return env
}

// GetHelperProcessArgs retrieves the original arguments passed to the helper process.
func GetHelperProcessArgs() ([]string, error) {
	argsJSON := os.Getenv(EnvHelperProcessArgs)
	if argsJSON == "" {
		return nil, nil
	}

	var args []string
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return nil, fmt.Errorf("parsing helper process args: %w", err)
	}
	return args, nil
}

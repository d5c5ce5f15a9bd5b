package execx

import (
	"context"
	"io"
)

// MockRunner is a mock implementation of Runner for testing
type MockRunner struct {
	CommandExistsFunc       func(name string) bool
	RequireCommandFunc      func(name string) error
	RunCommandFunc          func(ctx context.Context, name string, args ...string) (string, error)
	RunShellFunc            func(ctx context.Context, script string) error
	RunCommandStreamingFunc func(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error
	GetExitCodeFunc         func(err error) int

	// Calls records every invocation for assertion convenience
	Calls []string
}

func (m *MockRunner) record(call string) {
	m.Calls = append(m.Calls, call)
}

// CommandExists implements Runner.CommandExists
func (m *MockRunner) CommandExists(name string) bool {
	m.record("exists:" + name)
	if m.CommandExistsFunc != nil {
		return m.CommandExistsFunc(name)
	}
	return false
}

// RequireCommand implements Runner.RequireCommand
func (m *MockRunner) RequireCommand(name string) error {
	m.record("require:" + name)
	if m.RequireCommandFunc != nil {
		return m.RequireCommandFunc(name)
	}
	return nil
}

// RunCommand implements Runner.RunCommand
func (m *MockRunner) RunCommand(ctx context.Context, name string, args ...string) (string, error) {
	m.record("run:" + name)
	if m.RunCommandFunc != nil {
		return m.RunCommandFunc(ctx, name, args...)
	}
	return "", nil
}

// RunShell implements Runner.RunShell
func (m *MockRunner) RunShell(ctx context.Context, script string) error {
	m.record("shell:" + script)
	if m.RunShellFunc != nil {
		return m.RunShellFunc(ctx, script)
	}
	return nil
}

// RunCommandStreaming implements Runner.RunCommandStreaming
func (m *MockRunner) RunCommandStreaming(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	m.record("stream:" + name)
	if m.RunCommandStreamingFunc != nil {
		return m.RunCommandStreamingFunc(ctx, stdout, stderr, name, args...)
	}
	return nil
}

// GetExitCode implements Runner.GetExitCode
func (m *MockRunner) GetExitCode(err error) int {
	if m.GetExitCodeFunc != nil {
		return m.GetExitCodeFunc(err)
	}
	return 0
}

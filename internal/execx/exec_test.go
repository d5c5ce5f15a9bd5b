package execx

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOSRunner(t *testing.T) {
	runner := NewOSRunner()

	t.Run("CommandExists", func(t *testing.T) {
		assert.True(t, runner.CommandExists("echo"))
		assert.False(t, runner.CommandExists("nonexistentcommand123"))
	})

	t.Run("CommandExists cached", func(t *testing.T) {
		// Second lookup hits the cache and must agree with the first
		assert.True(t, runner.CommandExists("echo"))
		assert.True(t, runner.CommandExists("echo"))
	})

	t.Run("InvalidateCommand", func(t *testing.T) {
		runner.CommandExists("echo")
		runner.InvalidateCommand("echo")
		assert.True(t, runner.CommandExists("echo"))
	})

	t.Run("RequireCommand", func(t *testing.T) {
		err := runner.RequireCommand("echo")
		assert.NoError(t, err)

		err = runner.RequireCommand("nonexistentcommand123")
		assert.Error(t, err)
	})

	t.Run("RunCommand", func(t *testing.T) {
		ctx := context.Background()
		output, err := runner.RunCommand(ctx, "echo", "test")
		assert.NoError(t, err)
		assert.Contains(t, output, "test")
	})

	t.Run("RunCommand timeout exceeded", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err := runner.RunCommand(ctx, "sleep", "5")
		assert.Error(t, err)
	})

	t.Run("RunShell passing predicate", func(t *testing.T) {
		ctx := context.Background()
		err := runner.RunShell(ctx, "true")
		assert.NoError(t, err)
	})

	t.Run("RunShell failing predicate", func(t *testing.T) {
		ctx := context.Background()
		err := runner.RunShell(ctx, "false")
		assert.Error(t, err)
	})

	t.Run("RunShell compound predicate", func(t *testing.T) {
		ctx := context.Background()
		err := runner.RunShell(ctx, "command -v echo >/dev/null 2>&1")
		assert.NoError(t, err)
	})

	t.Run("RunCommandStreaming", func(t *testing.T) {
		ctx := context.Background()
		var stdout, stderr bytes.Buffer
		err := runner.RunCommandStreaming(ctx, &stdout, &stderr, "echo", "test")
		assert.NoError(t, err)
		assert.Contains(t, stdout.String(), "test")
	})

	t.Run("RunCommandStreaming discards nil writers", func(t *testing.T) {
		ctx := context.Background()
		err := runner.RunCommandStreaming(ctx, nil, nil, "echo", "test")
		assert.NoError(t, err)
	})

	t.Run("GetExitCode", func(t *testing.T) {
		ctx := context.Background()
		_, err := runner.RunCommand(ctx, "false")
		assert.Error(t, err)
		code := runner.GetExitCode(err)
		assert.NotEqual(t, 0, code)
	})

	t.Run("GetExitCode nil error", func(t *testing.T) {
		assert.Equal(t, 0, runner.GetExitCode(nil))
	})
}

func TestRunnerInterface(_ *testing.T) {
	var _ Runner = &OSRunner{}
	var _ Runner = &MockRunner{}
}

func TestMockRunnerRecordsCalls(t *testing.T) {
	mock := &MockRunner{
		RunShellFunc: func(_ context.Context, _ string) error { return nil },
	}

	ctx := context.Background()
	assert.NoError(t, mock.RunShell(ctx, "command -v git"))
	mock.CommandExists("brew")

	assert.Equal(t, []string{"shell:command -v git", "exists:brew"}, mock.Calls)
}

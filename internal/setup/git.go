package setup

import (
	"context"
	"fmt"
	"strings"

	"github.com/quantmind-br/rig/internal/execx"
	"github.com/quantmind-br/rig/internal/ui"
)

// Identity is the global git author configuration
type Identity struct {
	Name  string
	Email string
}

// CurrentGitIdentity reads the existing global git config. Unset values
// come back empty; a missing git binary is not an error here because the
// caller only uses this for prompt defaults.
func CurrentGitIdentity(ctx context.Context, runner execx.Runner) Identity {
	var id Identity

	if out, err := runner.RunCommand(ctx, "git", "config", "--global", "user.name"); err == nil {
		id.Name = strings.TrimSpace(out)
	}
	if out, err := runner.RunCommand(ctx, "git", "config", "--global", "user.email"); err == nil {
		id.Email = strings.TrimSpace(out)
	}

	return id
}

// ApplyGitIdentity writes the global git author configuration
func ApplyGitIdentity(ctx context.Context, runner execx.Runner, id Identity) error {
	if _, err := runner.RunCommand(ctx, "git", "config", "--global", "user.name", id.Name); err != nil {
		return fmt.Errorf("set git user.name: %w", err)
	}
	if _, err := runner.RunCommand(ctx, "git", "config", "--global", "user.email", id.Email); err != nil {
		return fmt.Errorf("set git user.email: %w", err)
	}
	return nil
}

// configureGit prompts for and applies the git identity
func (s *Steps) configureGit(ctx context.Context) error {
	current := CurrentGitIdentity(ctx, s.runner)

	name, err := ui.InputPrompt("Git user name", current.Name, ui.ValidateNonEmpty)
	if err != nil {
		return err
	}
	email, err := ui.InputPrompt("Git email", current.Email, ui.ValidateEmail)
	if err != nil {
		return err
	}

	if err := ApplyGitIdentity(ctx, s.runner, Identity{Name: name, Email: email}); err != nil {
		return err
	}

	ui.PrintSuccess("git identity set to %s <%s>", name, email)
	return nil
}

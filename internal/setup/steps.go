package setup

import (
	"context"

	"github.com/quantmind-br/rig/internal/execx"
	"github.com/quantmind-br/rig/internal/platform"
	"github.com/quantmind-br/rig/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Steps runs the interactive post-install configuration: git identity,
// hostname, default shell, avatar. Each step asks before running (unless
// assumeYes) and its failure is recoverable: warn and move on.
type Steps struct {
	info      platform.Info
	runner    execx.Runner
	fs        afero.Fs
	logger    *zerolog.Logger
	assumeYes bool
}

// New creates the interactive steps runner
func New(info platform.Info, runner execx.Runner, fs afero.Fs, log *zerolog.Logger, assumeYes bool) *Steps {
	return &Steps{
		info:      info,
		runner:    runner,
		fs:        fs,
		logger:    log,
		assumeYes: assumeYes,
	}
}

type step struct {
	name string
	run  func(context.Context) error
}

// Run walks the steps sequentially. It only fails on a cancelled prompt
// or context; individual step errors are surfaced and skipped over.
func (s *Steps) Run(ctx context.Context) error {
	steps := []step{
		{"git identity", s.configureGit},
		{"hostname", s.configureHostname},
		{"default shell", s.configureShell},
		{"avatar", s.configureAvatar},
	}

	for _, st := range steps {
		if !s.assumeYes {
			ok, err := ui.ConfirmPrompt("Configure " + st.name)
			if err != nil {
				return err
			}
			if !ok {
				s.logger.Debug().Str("step", st.name).Msg("step declined")
				continue
			}
		}

		if err := st.run(ctx); err != nil {
			ui.PrintWarning("%s: %v", st.name, err)
			s.logger.Warn().Err(err).Str("step", st.name).Msg("step failed")
		}
	}

	return nil
}

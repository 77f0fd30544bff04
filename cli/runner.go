package cli

import (
	"context"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Runner is the collaborator executed once the command line is parsed.
type Runner interface {
	Run(ctx context.Context, opts Options) error
}

// RunnerFunc adapts function to Runner.
type RunnerFunc func(ctx context.Context, opts Options) error

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, opts Options) error {
	return f(ctx, opts)
}

// Collaborator adapts function accepting only the verbosity flag to Runner.
func Collaborator(fn func(ctx context.Context, verbose bool) error) Runner {
	return RunnerFunc(func(ctx context.Context, opts Options) error {
		return fn(ctx, opts.Verbose)
	})
}

// Run executes runner with options stored in the context.
// Any failure, including panic, is returned as CollaboratorError and reported by the process runner.
func Run(ctx context.Context, runner Runner) error {
	opts := OptionsFromContext(ctx)
	log := logger.Get(ctx)
	log.Debug("Starting collaborator", zap.Bool("verbose", opts.Verbose))

	err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		spawn("collaborator", parallel.Exit, func(ctx context.Context) (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = errors.Errorf("collaborator panicked: %v", p)
				}
			}()
			return runner.Run(ctx, opts)
		})
		return nil
	})
	if err != nil {
		return errors.WithStack(CollaboratorError{err: err})
	}

	log.Debug("Collaborator finished")
	return nil
}

// Execute parses the command line and runs the collaborator.
// It is the same sequence the process runner performs with the flavour installed.
func Execute(ctx context.Context, config Config, runner Runner) error {
	return NewFlavour(config)(ctx, func(ctx context.Context) error {
		return Run(ctx, runner)
	})
}

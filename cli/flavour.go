package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/outofforest/parallel"
	"github.com/outofforest/run"
	"github.com/pkg/errors"
)

// DefaultVersion is reported if no version is set.
const DefaultVersion = "dev"

// Config is the configuration of the entry point.
type Config struct {
	// Name is the program name used in usage and version output.
	Name string

	// Version is the version reported on --version.
	Version string

	// Description is the short description of the program.
	Description string

	// Args are the command line arguments without the program name. If nil, os.Args[1:] is used.
	Args []string

	// Stdout receives help and version output.
	Stdout io.Writer

	// Stderr receives parse errors and usage on failure.
	Stderr io.Writer
}

func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = filepath.Base(os.Args[0])
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.Args == nil {
		c.Args = os.Args[1:]
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	return c
}

// Check parses the command line and reports failure together with usage on stderr.
// The process runner scans the same arguments for its own logger flags and may abort on them,
// so the command line must be checked before the runner starts.
func Check(config Config) error {
	config = config.withDefaults()
	_, err := parse(config)
	return err
}

func parse(config Config) (Request, error) {
	req, err := Parse(config.Args)
	if err != nil {
		_, _ = fmt.Fprintf(config.Stderr, "Error: %s\n\n%s", err, Usage(config))
		return Request{}, err
	}
	return req, nil
}

// NewFlavour returns a flavour parsing the command line before the application starts.
// Help and version requests are served here and the application function is not called then.
// Otherwise parsed options are stored in the context passed to the application function.
func NewFlavour(config Config) run.FlavourFunc {
	config = config.withDefaults()
	return func(ctx context.Context, appFunc parallel.Task) error {
		req, err := parse(config)
		if err != nil {
			return err
		}

		switch req.Action {
		case ActionHelp:
			_, err := io.WriteString(config.Stdout, Usage(config))
			return errors.WithStack(err)
		case ActionVersion:
			_, err := io.WriteString(config.Stdout, VersionInfo(config))
			return errors.WithStack(err)
		}

		ctx = withVerbosity(ctx, req.Options.Verbose)
		return appFunc(WithOptions(ctx, req.Options))
	}
}

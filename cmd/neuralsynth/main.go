package main

import (
	"context"
	"os"

	"github.com/outofforest/run"

	"github.com/outofforest/neuralsynth/cli"
	"github.com/outofforest/neuralsynth/synthesizer"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = cli.DefaultVersion

func main() {
	start(synthesizer.Run)
}

// exitCodeUsage is returned when the command line does not match the recognized flags.
const exitCodeUsage = 2

func start(collaborator func(ctx context.Context, verbose bool) error) {
	config := cli.Config{
		Name:        "neuralsynth",
		Version:     version,
		Description: "NeuralSynthesizer - neural synthesis command-line tool",
	}
	if err := cli.Check(config); err != nil {
		os.Exit(exitCodeUsage)
	}

	run.New().WithFlavour(cli.NewFlavour(config)).Run("neuralsynth", func(ctx context.Context) error {
		return cli.Run(ctx, cli.Collaborator(collaborator))
	})
}

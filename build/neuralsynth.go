package build

import (
	"context"
	"os/exec"

	"github.com/outofforest/build"
	"github.com/outofforest/buildgo"
	"github.com/outofforest/libexec"
)

const binPath = "bin/neuralsynth"

func setup(ctx context.Context, deps build.DepsFunc) error {
	return libexec.Exec(ctx, exec.Command("go", "mod", "download"))
}

func buildApp(ctx context.Context, deps build.DepsFunc) error {
	return buildgo.GoBuildPkg(ctx, "cmd/neuralsynth", binPath, false)
}

func runApp(ctx context.Context, deps build.DepsFunc) error {
	deps(buildApp)
	return libexec.Exec(ctx, exec.Command("./"+binPath, "--verbose"))
}

func testApp(ctx context.Context, deps build.DepsFunc) error {
	return libexec.Exec(ctx, exec.Command("go", "test", "-count=1", "./..."))
}

package cli

import "context"

// Options are the options parsed from the command line.
type Options struct {
	// Verbose enables verbose output.
	Verbose bool
}

type optionsKey struct{}

// WithOptions returns new context carrying options.
func WithOptions(ctx context.Context, opts Options) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

// OptionsFromContext returns options stored in the context.
// Zero value is returned if context carries none.
func OptionsFromContext(ctx context.Context) Options {
	opts, _ := ctx.Value(optionsKey{}).(Options)
	return opts
}

package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Action is the thing the user asked for.
type Action int

const (
	// ActionRun means the collaborator should be executed.
	ActionRun Action = iota

	// ActionHelp means usage should be printed.
	ActionHelp

	// ActionVersion means version should be printed.
	ActionVersion
)

// Request is the result of parsing the command line.
type Request struct {
	Action  Action
	Options Options
}

// Parse scans arguments against the flag table.
// Help takes precedence over version if both are requested.
func Parse(args []string) (Request, error) {
	flags := Flags.FlagSet("")
	if err := flags.Parse(args); err != nil {
		return Request{}, errors.WithStack(ParseError{err: err})
	}
	if flags.NArg() > 0 {
		return Request{}, errors.WithStack(ParseError{err: errors.Errorf("unexpected argument: %s", flags.Arg(0))})
	}
	if err := Flags.RejectValues(args); err != nil {
		return Request{}, errors.WithStack(ParseError{err: err})
	}

	req := Request{
		Action: ActionRun,
		Options: Options{
			Verbose: boolFlag(flags, flagVerbose),
		},
	}
	switch {
	case boolFlag(flags, flagHelp):
		req.Action = ActionHelp
	case boolFlag(flags, flagVersion):
		req.Action = ActionVersion
	}
	return req, nil
}

func boolFlag(flags *pflag.FlagSet, name string) bool {
	value, err := flags.GetBool(name)
	if err != nil {
		panic(errors.Wrapf(err, "flag %s is not registered as bool", name))
	}
	return value
}

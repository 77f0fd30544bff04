package cli

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Arity is the number of values consumed by a flag.
type Arity int

// ArityNone is the arity of boolean switches, they never take a value.
const ArityNone Arity = 0

// FlagDef defines a recognized command-line flag.
type FlagDef struct {
	// Name is the long form used as --name.
	Name string

	// Shorthand is the optional single-letter alias used as -x.
	Shorthand string

	// Arity defines if flag takes a value. Only ArityNone is supported.
	Arity Arity

	// Default is the value used when flag is absent.
	Default bool

	// Usage is the description printed in help.
	Usage string
}

const (
	flagVerbose = "verbose"
	flagVersion = "version"
	flagHelp    = "help"
)

// Flags is the set of flags recognized by the entry point.
var Flags = NewFlagTable().
	Register(FlagDef{Name: flagVerbose, Shorthand: "v", Arity: ArityNone, Usage: "Enable verbose output"}).
	Register(FlagDef{Name: flagVersion, Shorthand: "V", Arity: ArityNone, Usage: "Print version information and exit"}).
	Register(FlagDef{Name: flagHelp, Shorthand: "h", Arity: ArityNone, Usage: "Print help and exit"})

// NewFlagTable returns new flag table.
func NewFlagTable() FlagTable {
	return FlagTable{
		names: map[string]FlagDef{},
	}
}

// FlagTable keeps flag definitions in registration order.
type FlagTable struct {
	names map[string]FlagDef
	defs  []FlagDef
}

// Register adds flag definition to the table.
func (t FlagTable) Register(def FlagDef) FlagTable {
	if def.Name == "" {
		panic(errors.New("flag name is empty"))
	}
	if len(def.Shorthand) > 1 {
		panic(errors.Errorf("shorthand of flag %s must be a single letter", def.Name))
	}
	if def.Arity != ArityNone {
		panic(errors.Errorf("flag %s has unsupported arity %d", def.Name, def.Arity))
	}

	keys := []string{"--" + def.Name}
	if def.Shorthand != "" {
		keys = append(keys, "-"+def.Shorthand)
	}
	for _, key := range keys {
		if _, exists := t.names[key]; exists {
			panic(errors.Errorf("flag %s has been already registered", key))
		}
	}

	for _, key := range keys {
		t.names[key] = def
	}
	t.defs = append(t.defs, def)
	return t
}

// Defs returns registered definitions.
func (t FlagTable) Defs() []FlagDef {
	return t.defs
}

// RejectValues returns an error if a value is attached to a flag of ArityNone, like --verbose=true.
// Scanning stops at the "--" terminator.
func (t FlagTable) RejectValues(args []string) error {
	for _, arg := range args {
		if arg == "--" {
			return nil
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		pos := strings.IndexByte(arg, '=')
		if pos < 0 {
			continue
		}

		key := arg[:pos]
		if !strings.HasPrefix(key, "--") && len(key) > 2 {
			// -vh=x attaches the value to the last shorthand
			key = "-" + key[len(key)-1:]
		}
		if def, exists := t.names[key]; exists && def.Arity == ArityNone {
			return errors.Errorf("flag %s does not take a value", key)
		}
	}
	return nil
}

// FlagSet returns pflag set containing registered flags.
// Output of the set is discarded, caller decides what is printed to the user.
func (t FlagTable) FlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}
	flags.SortFlags = false

	for _, def := range t.defs {
		flags.BoolP(def.Name, def.Shorthand, def.Default, def.Usage)
	}
	return flags
}

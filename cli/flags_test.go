package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsTable(t *testing.T) {
	defs := Flags.Defs()
	require.Len(t, defs, 3)

	names := map[string]string{}
	for _, def := range defs {
		assert.Equal(t, ArityNone, def.Arity)
		assert.False(t, def.Default)
		names[def.Name] = def.Shorthand
	}
	assert.Equal(t, map[string]string{
		"verbose": "v",
		"version": "V",
		"help":    "h",
	}, names)
}

func TestRegisterDuplicateNamePanics(t *testing.T) {
	table := NewFlagTable().Register(FlagDef{Name: "verbose"})
	assert.Panics(t, func() {
		table.Register(FlagDef{Name: "verbose", Shorthand: "x"})
	})
}

func TestRegisterDuplicateShorthandPanics(t *testing.T) {
	table := NewFlagTable().Register(FlagDef{Name: "verbose", Shorthand: "v"})
	assert.Panics(t, func() {
		table.Register(FlagDef{Name: "version", Shorthand: "v"})
	})
}

func TestRegisterInvalidDefinitionPanics(t *testing.T) {
	tests := []struct {
		name string
		def  FlagDef
	}{
		{name: "empty name", def: FlagDef{}},
		{name: "long shorthand", def: FlagDef{Name: "verbose", Shorthand: "vv"}},
		{name: "flag taking value", def: FlagDef{Name: "model", Arity: Arity(1)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Panics(t, func() {
				NewFlagTable().Register(tc.def)
			})
		})
	}
}

func TestFlagSetFromTable(t *testing.T) {
	table := NewFlagTable().
		Register(FlagDef{Name: "quiet", Shorthand: "q", Usage: "Be quiet"}).
		Register(FlagDef{Name: "color", Default: true, Usage: "Colorize output"})

	flags := table.FlagSet("test")
	require.NoError(t, flags.Parse([]string{"-q"}))

	quiet, err := flags.GetBool("quiet")
	require.NoError(t, err)
	assert.True(t, quiet)

	color, err := flags.GetBool("color")
	require.NoError(t, err)
	assert.True(t, color)
}

func TestRejectValues(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no flags", args: nil},
		{name: "plain flags", args: []string{"-v", "--help"}},
		{name: "long with value", args: []string{"--verbose=true"}, wantErr: "flag --verbose does not take a value"},
		{name: "long with empty value", args: []string{"--version="}, wantErr: "flag --version does not take a value"},
		{name: "short with value", args: []string{"-v=false"}, wantErr: "flag -v does not take a value"},
		{name: "combined shorthands with value", args: []string{"-Vh=1"}, wantErr: "flag -h does not take a value"},
		{name: "unknown flag with value", args: []string{"--log-format=json"}},
		{name: "value after terminator", args: []string{"--", "--verbose=true"}},
		{name: "positional with equals", args: []string{"key=value"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Flags.RejectValues(tc.args)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())
		})
	}
}

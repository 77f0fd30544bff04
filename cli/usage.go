package cli

import (
	"fmt"
	"strings"
)

// Usage returns help text generated from the flag table.
func Usage(config Config) string {
	var sb strings.Builder
	if config.Description != "" {
		sb.WriteString(config.Description)
		sb.WriteString("\n\n")
	}
	fmt.Fprintf(&sb, "Usage:\n  %s [flags]\n\nFlags:\n", config.Name)
	sb.WriteString(Flags.FlagSet(config.Name).FlagUsages())
	return sb.String()
}

// VersionInfo returns text printed on version request.
func VersionInfo(config Config) string {
	text := fmt.Sprintf("%s %s\n", config.Name, config.Version)
	if config.Description != "" {
		text += config.Description + "\n"
	}
	return text
}

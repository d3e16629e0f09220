// flags.go - Command-line flag definitions
package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/lgbarn/sgf-legals-go/internal/config"
	"github.com/lgbarn/sgf-legals-go/internal/labels"
	"github.com/lgbarn/sgf-legals-go/internal/logger"
)

// cliFlags holds the parsed command-line flags.
type cliFlags struct {
	set *pflag.FlagSet

	ordering   *string
	alphabet   *bool
	configFile *string
	logLevel   *string
	version    *bool
	help       *bool
}

// newFlags defines the command-line flags. Parse errors are reported by
// the caller, never by pflag itself.
func newFlags() *cliFlags {
	fs := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	return &cliFlags{
		set:        fs,
		ordering:   fs.StringP(config.FlagOrdering, "o", labels.XY.String(), "Label ordering: xy (column first) or yx (row first)"),
		alphabet:   fs.BoolP(config.FlagAlphabet, "a", false, "Label columns a..s and rows 1..19; no label arguments"),
		configFile: fs.StringP(config.FlagConfig, "c", "", "Config file (YAML, TOML or JSON)"),
		logLevel:   fs.String(config.FlagLogLevel, logger.DefaultLevel, "Log level: debug, info, warn, error"),
		version:    fs.Bool("version", false, "Print version and exit"),
		help:       fs.BoolP("help", "h", false, "Show this help"),
	}
}

// usage writes the help text to w.
func usage(w io.Writer, f *cliFlags) {
	fmt.Fprintf(w, "Usage: %s [flags] X_LABELS Y_LABELS SGF\n", programName)
	fmt.Fprintf(w, "       %s [flags] SGF\n\n", programName)
	fmt.Fprintln(w, "Prints the legal moves of the position at the end of an SGF game record,")
	fmt.Fprintln(w, "labeled with the given axis labels, as (tok|tok|...).")
	fmt.Fprintln(w, "X_LABELS and Y_LABELS are whitespace-separated lists; SGF is a file or - for stdin.")
	fmt.Fprintln(w, "\nFlags:")
	fmt.Fprint(w, f.set.FlagUsages())
	fmt.Fprintf(w, "\nEnvironment variables %s_ORDERING, %s_ALPHABET, %s_X_LABELS,\n", config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
	fmt.Fprintf(w, "%s_Y_LABELS and %s_LOG_LEVEL set the same options.\n", config.EnvPrefix, config.EnvPrefix)
}

// sgf-legals lists the legal next moves of a Go game record under
// caller-chosen coordinate labels.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/sgf-legals-go/internal/config"
	sgferrors "github.com/lgbarn/sgf-legals-go/internal/errors"
	"github.com/lgbarn/sgf-legals-go/internal/input"
	"github.com/lgbarn/sgf-legals-go/internal/logger"
	"github.com/lgbarn/sgf-legals-go/internal/processing"
	"github.com/lgbarn/sgf-legals-go/internal/rules"
)

const (
	programName    = "sgf-legals"
	programVersion = "0.1.0"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code. On
// failure nothing is written to stdout and exactly one line to stderr,
// apart from any debug logging the user asked for.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := newFlags()
	if err := flags.set.Parse(args); err != nil {
		return fail(stderr, sgferrors.Wrap(sgferrors.ErrInvalidConfig, err.Error()))
	}

	if *flags.help {
		usage(stdout, flags)
		return exitOK
	}
	if *flags.version {
		fmt.Fprintf(stdout, "%s version %s\n", programName, programVersion)
		return exitOK
	}

	cfg, source, err := resolveConfig(flags)
	if err != nil {
		return fail(stderr, err)
	}

	log, err := logger.New(cfg.LogLevel, stderr)
	if err != nil {
		return fail(stderr, err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.File != "" {
		log.Debugw("config file loaded", "path", cfg.File)
	}

	out, err := legalMoves(cfg, source, stdin, log)
	if err != nil {
		return fail(stderr, err)
	}

	fmt.Fprintln(stdout, out)
	return exitOK
}

// resolveConfig merges configuration sources with the positional
// arguments and returns the validated config and the record source.
func resolveConfig(flags *cliFlags) (*config.Config, string, error) {
	cfg, err := config.Load(flags.set)
	if err != nil {
		return nil, "", err
	}

	args := flags.set.Args()
	var source string
	switch len(args) {
	case 3:
		cfg = config.NewConfigBuilderFrom(cfg).WithLabels(args[0], args[1]).Build()
		source = args[2]
	case 1:
		source = args[0]
	default:
		return nil, "", sgferrors.Wrapf(sgferrors.ErrInvalidConfig,
			"expected X_LABELS Y_LABELS SGF or SGF, got %d arguments", len(args))
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, source, nil
}

// legalMoves reads and replays the record, then renders its legal moves.
func legalMoves(cfg *config.Config, source string, stdin io.Reader, log *zap.SugaredLogger) (string, error) {
	ordering, err := cfg.LabelOrdering()
	if err != nil {
		return "", err
	}

	text, err := input.Read(source, stdin)
	if err != nil {
		return "", err
	}

	game, err := rules.FromSGF(text)
	if err != nil {
		return "", err
	}
	log.Debugw("game loaded",
		"source", source,
		"size", game.Size().String(),
		"rules", game.Rules().String(),
		"to_move", game.ToMove().String(),
		"moves", game.MoveCount(),
	)

	return processing.NewProcessor(cfg.Scheme(), ordering, log).Render(game)
}

// fail writes the diagnostic line and picks the exit code.
func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "%s: %v\n", programName, err)
	if errors.Is(err, sgferrors.ErrInvalidConfig) {
		return exitUsage
	}
	return exitError
}

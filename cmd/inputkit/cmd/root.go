package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputkit/pkg/input"
	"github.com/dmitrymomot/inputkit/pkg/logger"
)

var (
	errNullResult = errors.New("conversion produced a null result")
	errNoValue    = errors.New("no value given")
)

// app holds state shared by all subcommands of one invocation.
type app struct {
	envFile    string
	logLevel   string
	sourceName string

	cfg    Config
	log    *slog.Logger
	source input.Source
}

// NewRootCommand builds the inputkit command tree.
func NewRootCommand() *cobra.Command {
	a := &app{log: logger.Discard()}

	root := &cobra.Command{
		Use:   "inputkit",
		Short: "Sanitize and inspect raw input values",
		Long: `inputkit applies the input conversion rules used by the library to a
value given on the command line or stdin.

Commands:
  convert  - apply one rule
  inspect  - show the result of every rule
  rules    - list the available rules`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load variables from this file instead of ./.env")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default from INPUTKIT_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&a.sourceName, "source", "none", "source kind of the value: none, get, post, session, cookie, other")

	root.AddCommand(
		a.newConvertCommand(),
		a.newInspectCommand(),
		a.newRulesCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command with os.Args and reports errors on stderr.
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var files []string
	if a.envFile != "" {
		files = append(files, a.envFile)
	}

	cfg, err := LoadConfig(files...)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}

	source, err := input.ParseSource(a.sourceName)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.source = source
	a.log = logger.New(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("cli")),
	)
	return nil
}

// readValue returns the positional argument or, without one, stdin with a
// single trailing line break removed.
func (a *app) readValue(cmd *cobra.Command, args []string) (input.Value, error) {
	if len(args) > 0 {
		return input.New(args[0], a.source), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return input.Value{}, fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return input.Value{}, errNoValue
	}

	s := strings.TrimSuffix(string(data), "\n")
	s = strings.TrimSuffix(s, "\r")
	return input.New(s, a.source), nil
}

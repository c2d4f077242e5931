package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mgomes/monkey/monkey"
	"github.com/spf13/cobra"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	root := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if len(args) > 1 {
		root.SetArgs(args[1:])
	} else {
		root.SetArgs([]string{})
	}
	return root.Execute()
}

// cliState carries values shared by every subcommand once flags are parsed.
type cliState struct {
	configPath     string
	logLevel       string
	stepQuota      int
	recursionLimit int

	config cliConfig
	logger *slog.Logger
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	state := &cliState{}

	root := &cobra.Command{
		Use:           "monkey",
		Short:         "Monkey language interpreter",
		Long:          "Run, inspect and format Monkey programs, or start an interactive session.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.resolve(cmd, stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(state)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&state.configPath, "config", "", "path to a YAML config file (default ./monkey.yaml when present)")
	flags.StringVar(&state.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.IntVar(&state.stepQuota, "step-quota", 0, "maximum evaluation steps per program")
	flags.IntVar(&state.recursionLimit, "recursion-limit", 0, "maximum depth of nested function calls")

	root.AddCommand(
		newREPLCommand(state),
		newRunCommand(state),
		newTokensCommand(),
		newASTCommand(),
		newFmtCommand(),
		newAnalyzeCommand(),
		newLSPCommand(state),
	)
	return root
}

// resolve loads the config file and lets explicitly set flags override it.
func (s *cliState) resolve(cmd *cobra.Command, stderr io.Writer) error {
	cfg, err := loadConfig(s.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = s.logLevel
	}
	if flags.Changed("step-quota") {
		cfg.StepQuota = s.stepQuota
	}
	if flags.Changed("recursion-limit") {
		cfg.RecursionLimit = s.recursionLimit
	}
	if cfg.StepQuota < 0 || cfg.RecursionLimit < 0 {
		return errors.New("monkey: limits must not be negative")
	}

	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		return err
	}
	s.config = cfg
	s.logger = logger
	return nil
}

// readSource returns the program text named by args, or the inline
// expression when one was given.
func readSource(expr string, args []string) (string, string, error) {
	if expr != "" {
		return "<expr>", expr, nil
	}
	if len(args) == 0 {
		return "", "", errors.New("script path or -e expression required")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read script: %w", err)
	}
	return args[0], string(data), nil
}

func describeParseErrors(name string, err error) error {
	var parseErrs monkey.ParseErrors
	if !errors.As(err, &parseErrs) {
		return err
	}
	lines := make([]string, len(parseErrs))
	for i, pe := range parseErrs {
		lines[i] = name + ": " + pe.Error()
	}
	return fmt.Errorf("%d parse error(s)\n%s", len(parseErrs), strings.Join(lines, "\n"))
}

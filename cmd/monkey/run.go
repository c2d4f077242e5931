package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newRunCommand(state *cliState) *cobra.Command {
	var (
		expr      string
		checkOnly bool
	)
	cmd := &cobra.Command{
		Use:   "run [flags] <script>",
		Short: "Evaluate a Monkey program",
		Long:  "Evaluate a program from a file, or the expression given with -e, and print its value.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, source, err := readSource(expr, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			engine, err := state.config.engine(out, state.logger)
			if err != nil {
				return err
			}
			program, err := engine.Compile(source)
			if err != nil {
				return describeParseErrors(name, err)
			}
			if checkOnly {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			result, err := engine.Execute(ctx, program, source, nil)
			if err != nil {
				return fmt.Errorf("execution failed: %w", err)
			}
			state.logger.Debug("program finished", "script", name, "statements", len(program.Statements))
			if !result.IsNull() {
				fmt.Fprintln(out, result.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&expr, "expression", "e", "", "evaluate this source instead of a file")
	cmd.Flags().BoolVar(&checkOnly, "check", false, "only parse the program without evaluating it")
	return cmd
}

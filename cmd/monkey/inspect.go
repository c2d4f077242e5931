package main

import (
	"fmt"

	"github.com/mgomes/monkey/monkey"
	"github.com/spf13/cobra"
)

func newTokensCommand() *cobra.Command {
	var expr string
	cmd := &cobra.Command{
		Use:   "tokens [flags] <script>",
		Short: "Print the token stream of a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, source, err := readSource(expr, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, tok := range monkey.NewLexer(source).Tokens() {
				fmt.Fprintf(out, "%d:%d\t%s\t%q\n", tok.Pos.Line, tok.Pos.Column, tok.Type, tok.Literal)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&expr, "expression", "e", "", "tokenize this source instead of a file")
	return cmd
}

func newASTCommand() *cobra.Command {
	var expr string
	cmd := &cobra.Command{
		Use:   "ast [flags] <script>",
		Short: "Print the fully parenthesised syntax tree of a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, source, err := readSource(expr, args)
			if err != nil {
				return err
			}
			program, errs := monkey.Parse(source)
			if len(errs) > 0 {
				return describeParseErrors(name, monkey.ParseErrors(errs))
			}
			out := cmd.OutOrStdout()
			for _, stmt := range program.Statements {
				fmt.Fprintf(out, "%d:%d\t%s\n", stmt.Pos().Line, stmt.Pos().Column, stmt.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&expr, "expression", "e", "", "parse this source instead of a file")
	return cmd
}

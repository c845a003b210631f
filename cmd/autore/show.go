package main

import (
	"fmt"
	"os"

	"github.com/nihei9/autore/regex"
	"github.com/nihei9/autore/regex/parser"
	"github.com/spf13/cobra"
)

var showFlags = struct {
	ignoreSpace *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "show <regular expression>",
		Short:   "Print the syntax tree of a regular expression",
		Example: `  autore show 'a(b|c)*d'`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	showFlags.ignoreSpace = cmd.Flags().Bool("ignore-space", false, "ignore whitespace in the regular expression")
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	var opts []parser.Option
	if *showFlags.ignoreSpace {
		opts = append(opts, parser.IgnoreWhitespace())
	}
	ast, err := parser.Parse(args[0], opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%v\n\n", ast)
	regex.PrintTree(os.Stdout, ast)
	return nil
}

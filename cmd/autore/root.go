package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "autore",
	Short: "Convert between regular expressions and finite automata",
	Long: `autore provides the following features:
- Converts a regular expression into an epsilon-NFA, an NFA, a DFA, or a minimal DFA, and back.
- Converts an automaton written in a text or JSON description in the same way.
- Tests regular expressions against test cases that list accepted and rejected inputs.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

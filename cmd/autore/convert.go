package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nihei9/autore/automaton"
	"github.com/nihei9/autore/automaton/table"
	verr "github.com/nihei9/autore/error"
	"github.com/nihei9/autore/export/dot"
	"github.com/nihei9/autore/pipeline"
	"github.com/nihei9/autore/regex/parser"
	"github.com/nihei9/autore/spec"
	"github.com/spf13/cobra"
)

const (
	formatText  = "text"
	formatJSON  = "json"
	formatDOT   = "dot"
	formatTable = "table"
)

var convertFlags = struct {
	expr        *string
	to          *string
	format      *string
	output      *string
	ignoreSpace *bool
	verbose     *bool
}{}

func init() {
	var targets []string
	for _, r := range pipeline.Representations() {
		targets = append(targets, string(r))
	}

	cmd := &cobra.Command{
		Use:   "convert [<input file path>]",
		Short: "Convert a regular expression or an automaton into another representation",
		Long: `convert reads a regular expression from --expr, a file, or stdin, and converts it into the representation --to names.
A file whose name ends with .fa holds a text description of an automaton, and a file whose name ends with .json holds a JSON description.`,
		Example: `  autore convert -e 'a(b|c)*d' --to min-dfa
  autore convert -e 'a(b|c)*d' --to dfa --format dot | dot -Tsvg > dfa.svg
  autore convert nfa.fa --to regex`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConvert,
	}
	convertFlags.expr = cmd.Flags().StringP("expr", "e", "", "regular expression to convert")
	convertFlags.to = cmd.Flags().StringP("to", "t", string(pipeline.RepresentationMinDFA), fmt.Sprintf("target representation (%v)", strings.Join(targets, "|")))
	convertFlags.format = cmd.Flags().StringP("format", "f", formatText, "output format of an automaton (text|json|dot|table); table compiles a DFA into a compressed transition table")
	convertFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	convertFlags.ignoreSpace = cmd.Flags().Bool("ignore-space", false, "ignore whitespace in the regular expression")
	convertFlags.verbose = cmd.Flags().BoolP("verbose", "v", false, "print the automaton of every stage to stderr")
	rootCmd.AddCommand(cmd)
}

func runConvert(cmd *cobra.Command, args []string) (retErr error) {
	var srcPath string
	if len(args) > 0 {
		srcPath = args[0]
	}
	defer func() {
		var specErr *verr.SpecError
		if retErr != nil && errors.As(retErr, &specErr) {
			specErr.FilePath = srcPath
			specErr.SourceName = srcPath
			if srcPath == "" {
				specErr.SourceName = "stdin"
			}
		}
	}()

	// -e '' is the empty expression, not a missing one.
	exprGiven := cmd.Flags().Changed("expr")
	if exprGiven && srcPath != "" {
		return fmt.Errorf("You cannot specify --expr and an input file at the same time")
	}
	target, err := pipeline.ParseRepresentation(*convertFlags.to)
	if err != nil {
		return err
	}
	switch *convertFlags.format {
	case formatText, formatJSON, formatDOT, formatTable:
	default:
		return fmt.Errorf("Unknown format: %v", *convertFlags.format)
	}

	opts := []pipeline.Option{}
	if *convertFlags.ignoreSpace {
		opts = append(opts, pipeline.WithParserOptions(parser.IgnoreWhitespace()))
	}
	if *convertFlags.verbose {
		opts = append(opts, pipeline.WithStepCallback(func(stage string, a *automaton.Automaton) {
			fmt.Fprintf(os.Stderr, "## %v\n", stage)
			spec.WriteText(os.Stderr, a)
		}))
	}

	var res *pipeline.Result
	switch {
	case exprGiven:
		res, err = pipeline.FromRegex(*convertFlags.expr, target, opts...)
	case strings.HasSuffix(srcPath, ".fa") || strings.HasSuffix(srcPath, ".json"):
		var a *automaton.Automaton
		a, err = readAutomaton(srcPath)
		if err != nil {
			return err
		}
		res, err = pipeline.FromAutomaton(a, target, opts...)
	default:
		var src string
		src, err = readExpr(srcPath)
		if err != nil {
			return err
		}
		res, err = pipeline.FromRegex(src, target, opts...)
	}
	if err != nil {
		return err
	}

	w := io.Writer(os.Stdout)
	if *convertFlags.output != "" {
		f, err := os.OpenFile(*convertFlags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("Cannot open the output file %s: %w", *convertFlags.output, err)
		}
		defer f.Close()
		w = f
	}
	return writeResult(w, res, *convertFlags.format)
}

// readExpr reads a regular expression from a file or, when path is empty, from stdin. A trailing line
// break is not part of the expression.
func readExpr(path string) (string, error) {
	r := io.Reader(os.Stdin)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("Cannot open the source file %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(src), "\r\n"), nil
}

func readAutomaton(path string) (*automaton.Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the automaton file %s: %w", path, err)
	}
	defer f.Close()

	if filepath.Ext(path) == ".fa" {
		return spec.ParseAutomaton(f)
	}

	d, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	desc := &spec.Automaton{}
	err = json.Unmarshal(d, desc)
	if err != nil {
		return nil, err
	}
	return desc.Build()
}

func writeResult(w io.Writer, res *pipeline.Result, format string) error {
	if res.Regex != nil {
		if format == formatJSON {
			b, err := json.Marshal(struct {
				Regex string `json:"regex"`
			}{
				Regex: res.Regex.String(),
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "%v\n", string(b))
			return err
		}
		_, err := fmt.Fprintf(w, "%v\n", res.Regex)
		return err
	}

	switch format {
	case formatJSON:
		b, err := json.Marshal(spec.Describe(res.Automaton))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%v\n", string(b))
		return err
	case formatDOT:
		return dot.Write(w, res.Automaton)
	case formatTable:
		tab, err := table.Compile(res.Automaton)
		if err != nil {
			return fmt.Errorf("Cannot compile the automaton into a table: %w", err)
		}
		b, err := json.Marshal(tab)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%v\n", string(b))
		return err
	default:
		return spec.WriteText(w, res.Automaton)
	}
}

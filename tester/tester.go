package tester

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nihei9/autore/automaton"
	"github.com/nihei9/autore/pipeline"
	"github.com/nihei9/autore/regex"
	"github.com/nihei9/autore/regex/parser"
	tspec "github.com/nihei9/autore/spec/test"
)

// Mismatch is an input on which a representation disagrees with the test case.
type Mismatch struct {
	Representation pipeline.Representation
	Input          string
	Expected       bool
}

func (m *Mismatch) String() string {
	if m.Expected {
		return fmt.Sprintf("%v rejects %q", m.Representation, m.Input)
	}
	return fmt.Sprintf("%v accepts %q", m.Representation, m.Input)
}

type TestResult struct {
	TestCasePath string
	Error        error
	Mismatches   []*Mismatch
}

func (r *TestResult) String() string {
	if r.Error != nil {
		const indent1 = "    "
		const indent2 = indent1 + indent1

		msgLines := strings.Split(r.Error.Error(), "\n")
		msg := fmt.Sprintf("Failed %v:\n%v%v", r.TestCasePath, indent1, strings.Join(msgLines, "\n"+indent1))
		if len(r.Mismatches) == 0 {
			return msg
		}
		var lines []string
		for _, m := range r.Mismatches {
			lines = append(lines, m.String())
		}
		return fmt.Sprintf("%v\n%v%v", msg, indent2, strings.Join(lines, "\n"+indent2))
	}
	return fmt.Sprintf("Passed %v", r.TestCasePath)
}

type TestCaseWithMetadata struct {
	TestCase *tspec.TestCase
	FilePath string
	Error    error
}

// ListTestCases reads the test case at testPath. When testPath is a directory, it reads every file in
// the directory tree.
func ListTestCases(testPath string) []*TestCaseWithMetadata {
	fi, err := os.Stat(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	if !fi.IsDir() {
		c, err := parseTestCase(testPath)
		return []*TestCaseWithMetadata{
			{
				TestCase: c,
				FilePath: testPath,
				Error:    err,
			},
		}
	}

	es, err := os.ReadDir(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	var cases []*TestCaseWithMetadata
	for _, e := range es {
		cs := ListTestCases(filepath.Join(testPath, e.Name()))
		cases = append(cases, cs...)
	}
	return cases
}

func parseTestCase(testCasePath string) (*tspec.TestCase, error) {
	f, err := os.Open(testCasePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tspec.ParseTestCase(testCasePath, f)
}

type Tester struct {
	Cases []*TestCaseWithMetadata
}

func (t *Tester) Run() []*TestResult {
	var rs []*TestResult
	for _, c := range t.Cases {
		rs = append(rs, runTest(c))
	}
	return rs
}

// automatonTargets are the representations whose language must equal the one of the pattern.
var automatonTargets = []pipeline.Representation{
	pipeline.RepresentationENFA,
	pipeline.RepresentationNFA,
	pipeline.RepresentationDFA,
	pipeline.RepresentationTotalDFA,
	pipeline.RepresentationMinDFA,
}

func runTest(c *TestCaseWithMetadata) *TestResult {
	if c.Error != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        c.Error,
		}
	}

	var opts []pipeline.Option
	if c.TestCase.IgnoreSpace() {
		opts = append(opts, pipeline.WithParserOptions(parser.IgnoreWhitespace()))
	}

	var mismatches []*Mismatch
	check := func(r pipeline.Representation, accepts func(string) bool) {
		for _, in := range c.TestCase.Accepted() {
			if !accepts(in) {
				mismatches = append(mismatches, &Mismatch{
					Representation: r,
					Input:          in,
					Expected:       true,
				})
			}
		}
		for _, in := range c.TestCase.Rejected() {
			if accepts(in) {
				mismatches = append(mismatches, &Mismatch{
					Representation: r,
					Input:          in,
					Expected:       false,
				})
			}
		}
	}

	for _, target := range automatonTargets {
		res, err := pipeline.FromRegex(c.TestCase.Pattern, target, opts...)
		if err != nil {
			return &TestResult{
				TestCasePath: c.FilePath,
				Error:        fmt.Errorf("%v: %w", target, err),
			}
		}
		check(target, func(in string) bool {
			return automaton.Accepts(res.Automaton, in)
		})
		if target != pipeline.RepresentationMinDFA {
			continue
		}
		if n, ok := c.TestCase.States(); ok && res.Automaton.NumStates() != n {
			return &TestResult{
				TestCasePath: c.FilePath,
				Error:        fmt.Errorf("unexpected number of states of the minimal DFA: want: %v, got: %v", n, res.Automaton.NumStates()),
			}
		}
	}

	res, err := pipeline.FromRegex(c.TestCase.Pattern, pipeline.RepresentationRegex, opts...)
	if err != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        fmt.Errorf("%v: %w", pipeline.RepresentationRegex, err),
		}
	}
	// The regenerated expression must parse back from its rendered form.
	regenerated, err := parser.Parse(res.Regex.String())
	if err != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        fmt.Errorf("the regenerated expression %v does not parse: %w", res.Regex, err),
		}
	}
	check(pipeline.RepresentationRegex, func(in string) bool {
		return regex.Match(regenerated, in)
	})

	if len(mismatches) > 0 {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        fmt.Errorf("output mismatch"),
			Mismatches:   mismatches,
		}
	}
	return &TestResult{
		TestCasePath: c.FilePath,
	}
}

package test

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
)

// TestCase describes the expected behavior of a regular expression:
//
//	// a followed by any number of b or c, then d
//	pattern "a(b|c)*d"
//	states 4
//	accept "ad" "abcbd"
//	reject "" "a" "abc"
//
// states is the number of states of the minimal total DFA. Clauses may appear in any order and more
// than once.
type TestCase struct {
	Pattern string    `parser:"'pattern' @String"`
	Clauses []*Clause `parser:"@@*"`
}

type Clause struct {
	IgnoreSpace bool     `parser:"  @'ignore_space'"`
	States      *int     `parser:"| 'states' @Int"`
	Accept      []*Input `parser:"| 'accept' @@+"`
	Reject      []*Input `parser:"| 'reject' @@+"`
}

type Input struct {
	Value string `parser:"@String"`
}

var testCaseParser = participle.MustBuild[TestCase](participle.Unquote("String"))

// ParseTestCase parses a test case. name appears in error positions.
func ParseTestCase(name string, r io.Reader) (*TestCase, error) {
	c, err := testCaseParser.Parse(name, r)
	if err != nil {
		return nil, err
	}
	n := 0
	for _, cl := range c.Clauses {
		if cl.States != nil {
			n++
		}
	}
	if n > 1 {
		return nil, fmt.Errorf("%v: states must be specified at most once", name)
	}
	return c, nil
}

// IgnoreSpace reports whether whitespace in the pattern is insignificant.
func (c *TestCase) IgnoreSpace() bool {
	for _, cl := range c.Clauses {
		if cl.IgnoreSpace {
			return true
		}
	}
	return false
}

// States returns the expected number of states of the minimal DFA. ok is false when the test case
// does not specify it.
func (c *TestCase) States() (n int, ok bool) {
	for _, cl := range c.Clauses {
		if cl.States != nil {
			return *cl.States, true
		}
	}
	return 0, false
}

// Accepted returns the inputs the pattern must match in order of appearance.
func (c *TestCase) Accepted() []string {
	var inputs []string
	for _, cl := range c.Clauses {
		for _, in := range cl.Accept {
			inputs = append(inputs, in.Value)
		}
	}
	return inputs
}

// Rejected returns the inputs the pattern must not match in order of appearance.
func (c *TestCase) Rejected() []string {
	var inputs []string
	for _, cl := range c.Clauses {
		for _, in := range cl.Reject {
			inputs = append(inputs, in.Value)
		}
	}
	return inputs
}

package parser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nihei9/autore/regex"
)

func lit(c rune) regex.Node {
	return regex.NewLiteral(c)
}

func concat(l, r regex.Node) regex.Node {
	return &regex.Concat{Left: l, Right: r}
}

func alt(l, r regex.Node) regex.Node {
	return &regex.Union{Left: l, Right: r}
}

func star(n regex.Node) regex.Node {
	return &regex.Star{Inner: n}
}

func TestParse(t *testing.T) {
	tests := []struct {
		pattern string
		ast     regex.Node
	}{
		{
			pattern: "",
			ast:     regex.EmptyString{},
		},
		{
			pattern: "()",
			ast:     regex.EmptyString{},
		},
		{
			pattern: "[]",
			ast:     regex.NewCharClass(nil, false),
		},
		{
			pattern: "a",
			ast:     lit('a'),
		},
		{
			pattern: "abc",
			ast:     concat(concat(lit('a'), lit('b')), lit('c')),
		},
		{
			pattern: "a|b|c",
			ast:     alt(alt(lit('a'), lit('b')), lit('c')),
		},
		{
			pattern: "ab|c",
			ast:     alt(concat(lit('a'), lit('b')), lit('c')),
		},
		{
			pattern: "a*",
			ast:     star(lit('a')),
		},
		{
			pattern: "a**",
			ast:     star(star(lit('a'))),
		},
		{
			pattern: "a+?",
			ast:     &regex.Optional{Inner: &regex.Plus{Inner: lit('a')}},
		},
		{
			pattern: "a(b|c)*d",
			ast: concat(
				concat(lit('a'), star(alt(lit('b'), lit('c')))),
				lit('d'),
			),
		},
		{
			pattern: "((a))",
			ast:     lit('a'),
		},
		{
			pattern: "[a-cx]",
			ast:     regex.NewCharClass([]rune{'a', 'b', 'c', 'x'}, false),
		},
		{
			pattern: "[^ab]",
			ast:     regex.NewCharClass([]rune{'a', 'b'}, true),
		},
		{
			pattern: "[^]",
			ast:     regex.NewCharClass(nil, true),
		},
		{
			pattern: "[a-]",
			ast:     regex.NewCharClass([]rune{'a', '-'}, false),
		},
		{
			pattern: "[-a]",
			ast:     regex.NewCharClass([]rune{'a', '-'}, false),
		},
		{
			pattern: "[a^]",
			ast:     regex.NewCharClass([]rune{'a', '^'}, false),
		},
		{
			pattern: "[\\]\\-]",
			ast:     regex.NewCharClass([]rune{']', '-'}, false),
		},
		{
			pattern: "[(|*)]",
			ast:     regex.NewCharClass([]rune{'(', '|', '*', ')'}, false),
		},
		{
			pattern: "\\*\\(\\\\",
			ast:     concat(concat(lit('*'), lit('(')), lit('\\')),
		},
		{
			pattern: "^-.",
			ast:     concat(concat(lit('^'), lit('-')), lit('.')),
		},
		{
			pattern: "a|()",
			ast:     alt(lit('a'), regex.EmptyString{}),
		},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("#%v %v", i, tt.pattern), func(t *testing.T) {
			ast, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !regex.Equal(ast, tt.ast) {
				t.Fatalf("unexpected AST: want: %v, got: %v", tt.ast, ast)
			}
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	tests := []struct {
		pattern string
		cause   error
		pos     int
	}{
		{
			pattern: "(a|b",
			cause:   ErrGroupUnclosed,
			pos:     0,
		},
		{
			pattern: "x(a(b)",
			cause:   ErrGroupUnclosed,
			pos:     1,
		},
		{
			pattern: "a)",
			cause:   ErrGroupNoInitiator,
			pos:     1,
		},
		{
			pattern: "*",
			cause:   ErrRepNoTarget,
			pos:     0,
		},
		{
			pattern: "a|+",
			cause:   ErrRepNoTarget,
			pos:     2,
		},
		{
			pattern: "(?)",
			cause:   ErrRepNoTarget,
			pos:     1,
		},
		{
			pattern: "ab[cd",
			cause:   ErrBExpUnclosed,
			pos:     2,
		},
		{
			pattern: "[a-",
			cause:   ErrBExpUnclosed,
			pos:     0,
		},
		{
			pattern: "a]",
			cause:   ErrBExpNoInitiator,
			pos:     1,
		},
		{
			pattern: "ab\\",
			cause:   ErrIncompletedEscSeq,
			pos:     2,
		},
		{
			pattern: "[a\\",
			cause:   ErrIncompletedEscSeq,
			pos:     2,
		},
		{
			pattern: "\\a",
			cause:   ErrInvalidEscSeq,
			pos:     0,
		},
		{
			pattern: "a|",
			cause:   ErrAltLackOfOperand,
			pos:     1,
		},
		{
			pattern: "|a",
			cause:   ErrAltLackOfOperand,
			pos:     0,
		},
		{
			pattern: "(a||b)",
			cause:   ErrAltLackOfOperand,
			pos:     2,
		},
		{
			pattern: "a[z-b]",
			cause:   ErrRangeInvalidOrder,
			pos:     2,
		},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("#%v %v", i, tt.pattern), func(t *testing.T) {
			ast, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("an error was expected but got an AST: %v", ast)
			}
			if !errors.Is(err, tt.cause) {
				t.Fatalf("unexpected cause: want: %v, got: %v", tt.cause, err)
			}
			var synErr *SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("a syntax error was expected: %T", err)
			}
			if synErr.Pos != tt.pos {
				t.Fatalf("unexpected position: want: %v, got: %v", tt.pos, synErr.Pos)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	patterns := []string{
		"a(b|c)*d",
		"(ab)*|c+",
		"[a-z]?x",
		"[^0-9]",
		"\\(\\)\\|",
		"a**",
		"(a|b)(c|d)",
		"a|()",
		"[]",
	}
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			ast, err := Parse(pattern)
			if err != nil {
				t.Fatal(err)
			}
			reparsed, err := Parse(ast.String())
			if err != nil {
				t.Fatalf("failed to parse the rendered pattern %v: %v", ast, err)
			}
			if !regex.Equal(ast, reparsed) {
				t.Fatalf("rendering changed the tree: want: %v, got: %v", ast, reparsed)
			}
		})
	}
}

func TestParse_IgnoreWhitespace(t *testing.T) {
	ast, err := Parse("a((ba)*a(ab)* | a)*", IgnoreWhitespace())
	if err != nil {
		t.Fatal(err)
	}
	expected, err := Parse("a((ba)*a(ab)*|a)*")
	if err != nil {
		t.Fatal(err)
	}
	if !regex.Equal(ast, expected) {
		t.Fatalf("unexpected AST: want: %v, got: %v", expected, ast)
	}

	_, err = Parse("a | ", IgnoreWhitespace())
	var synErr *SyntaxError
	if !errors.As(err, &synErr) || !errors.Is(err, ErrAltLackOfOperand) || synErr.Pos != 2 {
		t.Fatalf("unexpected error: %v", err)
	}

	ast, err = Parse("a b")
	if err != nil {
		t.Fatal(err)
	}
	if !regex.Match(ast, "a b") {
		t.Fatalf("whitespace must be a literal by default: %v", ast)
	}
}

package spec

import (
	"errors"
	"strings"
	"testing"

	verr "github.com/nihei9/autore/error"
)

func TestParse(t *testing.T) {
	src := `# a(b|c)*d
start q0;
accept q2;
state dead;
q0 -> q1 'a';
q1 -> q1 'b', 'c';
q1 -> q2 'd';
q2 -> q2 eps;
`
	root, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Statements) != 7 {
		t.Fatalf("unexpected statement count: want: 7, got: %v", len(root.Statements))
	}

	expected := []struct {
		kind   StatementKind
		states []string
		labels []*LabelNode
		pos    Position
	}{
		{StatementKindStart, []string{"q0"}, nil, newPosition(2, 1)},
		{StatementKindAccept, []string{"q2"}, nil, newPosition(3, 1)},
		{StatementKindState, []string{"dead"}, nil, newPosition(4, 1)},
		{StatementKindTransition, []string{"q0", "q1"}, []*LabelNode{{Symbol: 'a'}}, newPosition(5, 1)},
		{StatementKindTransition, []string{"q1", "q1"}, []*LabelNode{{Symbol: 'b'}, {Symbol: 'c'}}, newPosition(6, 1)},
		{StatementKindTransition, []string{"q1", "q2"}, []*LabelNode{{Symbol: 'd'}}, newPosition(7, 1)},
		{StatementKindTransition, []string{"q2", "q2"}, []*LabelNode{{Epsilon: true}}, newPosition(8, 1)},
	}
	for i, e := range expected {
		stmt := root.Statements[i]
		if stmt.Kind != e.kind {
			t.Errorf("#%v: unexpected kind: want: %v, got: %v", i, e.kind, stmt.Kind)
		}
		if stmt.Pos != e.pos {
			t.Errorf("#%v: unexpected position: want: %v, got: %v", i, e.pos, stmt.Pos)
		}
		if len(stmt.States) != len(e.states) {
			t.Fatalf("#%v: unexpected state count: want: %v, got: %v", i, len(e.states), len(stmt.States))
		}
		for j, name := range e.states {
			if stmt.States[j].Name != name {
				t.Errorf("#%v: unexpected state: want: %v, got: %v", i, name, stmt.States[j].Name)
			}
		}
		if len(stmt.Labels) != len(e.labels) {
			t.Fatalf("#%v: unexpected label count: want: %v, got: %v", i, len(e.labels), len(stmt.Labels))
		}
		for j, l := range e.labels {
			if stmt.Labels[j].Epsilon != l.Epsilon || stmt.Labels[j].Symbol != l.Symbol {
				t.Errorf("#%v: unexpected label: want: %+v, got: %+v", i, l, stmt.Labels[j])
			}
		}
	}
}

func TestParse_Symbols(t *testing.T) {
	src := `start s; s -> s ' ', '\'', '\\', '\n', '\t', 'あ', '-';`
	root, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	expected := []rune{' ', '\'', '\\', '\n', '\t', 'あ', '-'}
	labels := root.Statements[1].Labels
	if len(labels) != len(expected) {
		t.Fatalf("unexpected label count: want: %v, got: %v", len(expected), len(labels))
	}
	for i, sym := range expected {
		if labels[i].Symbol != sym {
			t.Errorf("unexpected symbol: want: %q, got: %q", sym, labels[i].Symbol)
		}
	}
}

func TestParse_SyntaxError(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		cause   error
		row     int
		col     int
	}{
		{
			caption: "a statement needs a semicolon",
			src:     "start q0\nq0 -> q1 'a';",
			cause:   synErrNoSemicolon,
			row:     2,
			col:     1,
		},
		{
			caption: "a transition needs an arrow",
			src:     "start q0;\nq0 q1 'a';",
			cause:   synErrNoArrow,
			row:     2,
			col:     4,
		},
		{
			caption: "a transition needs a label",
			src:     "q0 -> q1;",
			cause:   synErrNoLabel,
			row:     1,
			col:     9,
		},
		{
			caption: "a label list must not end with a comma",
			src:     "q0 -> q1 'a', ;",
			cause:   synErrTrailingComm,
			row:     1,
			col:     15,
		},
		{
			caption: "start needs a state name",
			src:     "start ;",
			cause:   synErrNoStateName,
			row:     1,
			col:     7,
		},
		{
			caption: "a statement cannot begin with a label",
			src:     "'a' -> q0;",
			cause:   synErrNoStatement,
			row:     1,
			col:     1,
		},
		{
			caption: "an unknown character is an invalid token",
			src:     "start q0;\nq0 -> q1 @;",
			cause:   synErrInvalidToken,
			row:     2,
			col:     10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("an error was expected")
			}
			var specErr *verr.SpecError
			if !errors.As(err, &specErr) {
				t.Fatalf("unexpected error type: %T: %v", err, err)
			}
			if specErr.Cause != tt.cause {
				t.Fatalf("unexpected cause: want: %v, got: %v", tt.cause, specErr.Cause)
			}
			if specErr.Row != tt.row || specErr.Col != tt.col {
				t.Fatalf("unexpected position: want: %v:%v, got: %v:%v", tt.row, tt.col, specErr.Row, specErr.Col)
			}
		})
	}
}

func TestCompiledLexSpec(t *testing.T) {
	s, err := compiledLexSpec()
	if err != nil {
		t.Fatalf("failed to compile the lexical specification: %v", err)
	}
	if s.Name != lexSpecName {
		t.Fatalf("unexpected name: want: %v, got: %v", lexSpecName, s.Name)
	}
}

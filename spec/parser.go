package spec

import (
	"fmt"
	"io"

	verr "github.com/nihei9/autore/error"
)

type RootNode struct {
	Statements []*StatementNode
}

type StatementKind string

const (
	StatementKindStart      = StatementKind("start")
	StatementKindAccept     = StatementKind("accept")
	StatementKindState      = StatementKind("state")
	StatementKindTransition = StatementKind("transition")
)

// StatementNode is a statement of a description. For a transition, States holds the source and the
// destination.
type StatementNode struct {
	Kind   StatementKind
	States []*StateNode
	Labels []*LabelNode
	Pos    Position
}

type StateNode struct {
	Name string
	Pos  Position
}

type LabelNode struct {
	Epsilon bool
	Symbol  rune
	Pos     Position
}

func raiseSyntaxError(cause error, detail string, pos Position) {
	panic(&verr.SpecError{
		Cause:  cause,
		Detail: detail,
		Row:    pos.Row,
		Col:    pos.Col,
	})
}

// Parse parses a text description of an automaton:
//
//	# comment
//	start q0;
//	accept q2;
//	state q3;
//	q0 -> q1 'a', 'b';
//	q1 -> q2 eps;
func Parse(src io.Reader) (*RootNode, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return root, nil
}

type parser struct {
	lex       *lexer
	peekedTok *token
	lastTok   *token
}

func newParser(src io.Reader) (*parser, error) {
	lex, err := newLexer(src)
	if err != nil {
		return nil, err
	}
	return &parser{
		lex: lex,
	}, nil
}

func (p *parser) parse() (root *RootNode, retErr error) {
	defer func() {
		err := recover()
		if err != nil {
			e, ok := err.(error)
			if !ok {
				panic(err)
			}
			retErr = e
			return
		}
	}()
	return p.parseRoot(), nil
}

func (p *parser) parseRoot() *RootNode {
	root := &RootNode{}
	for {
		stmt := p.parseStatement()
		if stmt == nil {
			break
		}
		root.Statements = append(root.Statements, stmt)
	}
	return root
}

func (p *parser) parseStatement() *StatementNode {
	var stmt *StatementNode
	switch {
	case p.consume(tokenKindEOF):
		return nil
	case p.consume(tokenKindKWStart):
		pos := p.lastTok.pos
		stmt = &StatementNode{
			Kind:   StatementKindStart,
			States: []*StateNode{p.parseState()},
			Pos:    pos,
		}
	case p.consume(tokenKindKWAccept):
		pos := p.lastTok.pos
		stmt = &StatementNode{
			Kind:   StatementKindAccept,
			States: p.parseStateList(),
			Pos:    pos,
		}
	case p.consume(tokenKindKWState):
		pos := p.lastTok.pos
		stmt = &StatementNode{
			Kind:   StatementKindState,
			States: p.parseStateList(),
			Pos:    pos,
		}
	case p.consume(tokenKindID):
		from := &StateNode{
			Name: p.lastTok.text,
			Pos:  p.lastTok.pos,
		}
		if !p.consume(tokenKindArrow) {
			raiseSyntaxError(synErrNoArrow, "", p.peekedTok.pos)
		}
		to := p.parseState()
		stmt = &StatementNode{
			Kind:   StatementKindTransition,
			States: []*StateNode{from, to},
			Labels: p.parseLabelList(),
			Pos:    from.Pos,
		}
	default:
		raiseSyntaxError(synErrNoStatement, "", p.peekedTok.pos)
	}
	if !p.consume(tokenKindSemicolon) {
		raiseSyntaxError(synErrNoSemicolon, "", p.peekedTok.pos)
	}
	return stmt
}

func (p *parser) parseState() *StateNode {
	if !p.consume(tokenKindID) {
		raiseSyntaxError(synErrNoStateName, "", p.peekedTok.pos)
	}
	return &StateNode{
		Name: p.lastTok.text,
		Pos:  p.lastTok.pos,
	}
}

func (p *parser) parseStateList() []*StateNode {
	states := []*StateNode{p.parseState()}
	for p.consume(tokenKindComma) {
		if !p.consume(tokenKindID) {
			raiseSyntaxError(synErrTrailingComm, "", p.peekedTok.pos)
		}
		states = append(states, &StateNode{
			Name: p.lastTok.text,
			Pos:  p.lastTok.pos,
		})
	}
	return states
}

func (p *parser) parseLabel() *LabelNode {
	switch {
	case p.consume(tokenKindKWEpsilon):
		return &LabelNode{
			Epsilon: true,
			Pos:     p.lastTok.pos,
		}
	case p.consume(tokenKindSymbol):
		return &LabelNode{
			Symbol: p.lastTok.sym,
			Pos:    p.lastTok.pos,
		}
	}
	return nil
}

func (p *parser) parseLabelList() []*LabelNode {
	l := p.parseLabel()
	if l == nil {
		raiseSyntaxError(synErrNoLabel, "", p.peekedTok.pos)
	}
	labels := []*LabelNode{l}
	for p.consume(tokenKindComma) {
		l := p.parseLabel()
		if l == nil {
			raiseSyntaxError(synErrTrailingComm, "", p.peekedTok.pos)
		}
		labels = append(labels, l)
	}
	return labels
}

func (p *parser) consume(expected tokenKind) bool {
	var tok *token
	var err error
	if p.peekedTok != nil {
		tok = p.peekedTok
		p.peekedTok = nil
	} else {
		tok, err = p.lex.next()
		if err != nil {
			panic(err)
		}
	}
	p.lastTok = tok
	if tok.kind == tokenKindInvalid {
		raiseSyntaxError(synErrInvalidToken, fmt.Sprintf("%q", tok.text), tok.pos)
	}
	if tok.kind == expected {
		return true
	}
	p.peekedTok = tok
	p.lastTok = nil

	return false
}

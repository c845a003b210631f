package parser

import (
	"fmt"

	"github.com/nihei9/autore/regex"
)

type Option func(p *parser)

// IgnoreWhitespace makes the parser skip whitespace characters. Positions in errors still count them.
func IgnoreWhitespace() Option {
	return func(p *parser) {
		p.lex.ignoreSpace = true
	}
}

// Parse parses a regular expression. The empty source denotes the empty string.
func Parse(src string, opts ...Option) (regex.Node, error) {
	p := newParser(src)
	for _, opt := range opts {
		opt(p)
	}
	return p.parse()
}

type parser struct {
	lex       *lexer
	peekedTok *token
	lastTok   *token

	errCause  error
	errDetail string
	errPos    int
}

func newParser(src string) *parser {
	return &parser{
		lex: newLexer(src),
	}
}

func (p *parser) parse() (root regex.Node, retErr error) {
	defer func() {
		err := recover()
		if err != nil {
			if err != errParse {
				panic(err)
			}
			retErr = &SyntaxError{
				Cause:  p.errCause,
				Detail: p.errDetail,
				Pos:    p.errPos,
			}
			return
		}
	}()

	return p.parseRegexp(), nil
}

func (p *parser) parseRegexp() regex.Node {
	alt := p.parseAlt()
	if p.consume(tokenKindGroupClose) {
		p.raiseParseError(ErrGroupNoInitiator, "", p.lastTok.pos)
	}
	p.expect(tokenKindEOF)
	return alt
}

// parseAlt returns EmptyString when it finds no elements at all.
func (p *parser) parseAlt() regex.Node {
	left := p.parseConcat()
	for {
		if !p.consume(tokenKindAlt) {
			break
		}
		altPos := p.lastTok.pos
		if left == nil {
			p.raiseParseError(ErrAltLackOfOperand, "| needs a left operand", altPos)
		}
		right := p.parseConcat()
		if right == nil {
			p.raiseParseError(ErrAltLackOfOperand, "| needs a right operand", altPos)
		}
		left = &regex.Union{
			Left:  left,
			Right: right,
		}
	}
	if left == nil {
		return regex.EmptyString{}
	}
	return left
}

func (p *parser) parseConcat() regex.Node {
	left := p.parseRepeat()
	if left == nil {
		return nil
	}
	for {
		right := p.parseRepeat()
		if right == nil {
			break
		}
		left = &regex.Concat{
			Left:  left,
			Right: right,
		}
	}
	return left
}

func (p *parser) parseRepeat() regex.Node {
	atom := p.parseAtom()
	if atom == nil {
		if p.consume(tokenKindRepeat) {
			p.raiseParseError(ErrRepNoTarget, "* needs an operand", p.lastTok.pos)
		}
		if p.consume(tokenKindRepeatOneOrMore) {
			p.raiseParseError(ErrRepNoTarget, "+ needs an operand", p.lastTok.pos)
		}
		if p.consume(tokenKindOption) {
			p.raiseParseError(ErrRepNoTarget, "? needs an operand", p.lastTok.pos)
		}
		return nil
	}
	for {
		switch {
		case p.consume(tokenKindRepeat):
			atom = &regex.Star{
				Inner: atom,
			}
		case p.consume(tokenKindRepeatOneOrMore):
			atom = &regex.Plus{
				Inner: atom,
			}
		case p.consume(tokenKindOption):
			atom = &regex.Optional{
				Inner: atom,
			}
		default:
			return atom
		}
	}
}

func (p *parser) parseAtom() regex.Node {
	if p.consume(tokenKindGroupOpen) {
		openPos := p.lastTok.pos
		alt := p.parseAlt()
		if p.consume(tokenKindEOF) {
			p.raiseParseError(ErrGroupUnclosed, "", openPos)
		}
		p.expect(tokenKindGroupClose)
		return alt
	}
	if p.consume(tokenKindBExpOpen) {
		return p.parseBExp(false, p.lastTok.pos)
	}
	if p.consume(tokenKindInverseBExpOpen) {
		return p.parseBExp(true, p.lastTok.pos)
	}
	if p.consume(tokenKindChar) {
		return regex.NewLiteral(p.lastTok.char)
	}
	if p.consume(tokenKindBExpClose) {
		p.raiseParseError(ErrBExpNoInitiator, "", p.lastTok.pos)
	}
	return nil
}

// parseBExp parses the elements of a bracket expression following its opening bracket.
// [] denotes the empty language and [^] any symbol.
func (p *parser) parseBExp(negated bool, openPos int) regex.Node {
	syms := []rune{}
	for {
		if p.consume(tokenKindEOF) {
			p.raiseParseError(ErrBExpUnclosed, "", openPos)
		}
		if p.consume(tokenKindBExpClose) {
			break
		}
		p.expect(tokenKindChar)
		from := p.lastTok
		if !p.consume(tokenKindCharRange) {
			syms = append(syms, from.char)
			continue
		}
		if p.consume(tokenKindEOF) {
			p.raiseParseError(ErrBExpUnclosed, "", openPos)
		}
		p.expect(tokenKindChar)
		to := p.lastTok
		if from.char > to.char {
			p.raiseParseError(ErrRangeInvalidOrder, fmt.Sprintf("%q-%q", from.char, to.char), from.pos)
		}
		for c := from.char; c <= to.char; c++ {
			syms = append(syms, c)
		}
	}
	return regex.NewCharClass(syms, negated)
}

func (p *parser) expect(expected tokenKind) {
	if !p.consume(expected) {
		tok := p.peekedTok
		p.raiseParseError(ErrUnexpectedToken, fmt.Sprintf("expected: %v, actual: %v", expected, tok.kind), tok.pos)
	}
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
			if err == errParse {
				cause, detail, pos := p.lex.error()
				p.raiseParseError(cause, detail, pos)
			}
			panic(err)
		}
	}
	p.lastTok = tok
	if tok.kind == expected {
		return true
	}
	p.peekedTok = tok
	p.lastTok = nil

	return false
}

func (p *parser) raiseParseError(err error, detail string, pos int) {
	p.errCause = err
	p.errDetail = detail
	p.errPos = pos
	panic(errParse)
}

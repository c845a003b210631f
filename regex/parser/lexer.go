package parser

import (
	"fmt"
	"unicode"
)

type tokenKind string

const (
	tokenKindChar            tokenKind = "char"
	tokenKindRepeat          tokenKind = "*"
	tokenKindRepeatOneOrMore tokenKind = "+"
	tokenKindOption          tokenKind = "?"
	tokenKindAlt             tokenKind = "|"
	tokenKindGroupOpen       tokenKind = "("
	tokenKindGroupClose      tokenKind = ")"
	tokenKindBExpOpen        tokenKind = "["
	tokenKindInverseBExpOpen tokenKind = "[^"
	tokenKindBExpClose       tokenKind = "]"
	tokenKindCharRange       tokenKind = "-"
	tokenKindEOF             tokenKind = "eof"
)

type token struct {
	kind tokenKind
	char rune
	pos  int
}

const nullChar = '\u0000'

func newToken(kind tokenKind, char rune, pos int) *token {
	return &token{
		kind: kind,
		char: char,
		pos:  pos,
	}
}

type lexerMode string

const (
	lexerModeDefault lexerMode = "default"
	lexerModeBExp    lexerMode = "bracket expression"
)

type lexerModeStack struct {
	stack []lexerMode
}

func newLexerModeStack() *lexerModeStack {
	return &lexerModeStack{
		stack: []lexerMode{
			lexerModeDefault,
		},
	}
}

func (s *lexerModeStack) top() lexerMode {
	return s.stack[len(s.stack)-1]
}

func (s *lexerModeStack) push(m lexerMode) {
	s.stack = append(s.stack, m)
}

func (s *lexerModeStack) pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

type rangeState string

// [a-z]
// ^^^^
// |||`-- ready
// ||`-- expect range terminator
// |`-- read range initiator
// `-- ready
const (
	rangeStateReady                 rangeState = "ready"
	rangeStateReadRangeInitiator    rangeState = "read range initiator"
	rangeStateExpectRangeTerminator rangeState = "expect range terminator"
)

type lexer struct {
	src        []rune
	pos        int
	modeStack  *lexerModeStack
	rangeState rangeState

	ignoreSpace bool

	errCause  error
	errDetail string
	errPos    int
}

func newLexer(src string) *lexer {
	return &lexer{
		src:        []rune(src),
		pos:        0,
		modeStack:  newLexerModeStack(),
		rangeState: rangeStateReady,
	}
}

func (l *lexer) error() (error, string, int) {
	return l.errCause, l.errDetail, l.errPos
}

func (l *lexer) next() (*token, error) {
	if l.ignoreSpace {
		for {
			c, eof := l.peek()
			if eof || !unicode.IsSpace(c) {
				break
			}
			l.read()
		}
	}
	pos := l.pos
	c, eof := l.read()
	if eof {
		return newToken(tokenKindEOF, nullChar, pos), nil
	}

	switch l.modeStack.top() {
	case lexerModeBExp:
		tok, err := l.nextInBExp(c, pos)
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenKindChar {
			switch l.rangeState {
			case rangeStateReady:
				l.rangeState = rangeStateReadRangeInitiator
			case rangeStateExpectRangeTerminator:
				l.rangeState = rangeStateReady
			}
		}
		switch tok.kind {
		case tokenKindBExpClose:
			l.modeStack.pop()
		case tokenKindCharRange:
			l.rangeState = rangeStateExpectRangeTerminator
		}
		return tok, nil
	default:
		tok, err := l.nextInDefault(c, pos)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenKindBExpOpen, tokenKindInverseBExpOpen:
			l.modeStack.push(lexerModeBExp)
			l.rangeState = rangeStateReady
		}
		return tok, nil
	}
}

func (l *lexer) nextInDefault(c rune, pos int) (*token, error) {
	switch c {
	case '*':
		return newToken(tokenKindRepeat, nullChar, pos), nil
	case '+':
		return newToken(tokenKindRepeatOneOrMore, nullChar, pos), nil
	case '?':
		return newToken(tokenKindOption, nullChar, pos), nil
	case '|':
		return newToken(tokenKindAlt, nullChar, pos), nil
	case '(':
		return newToken(tokenKindGroupOpen, nullChar, pos), nil
	case ')':
		return newToken(tokenKindGroupClose, nullChar, pos), nil
	case ']':
		return newToken(tokenKindBExpClose, nullChar, pos), nil
	case '[':
		c1, eof := l.peek()
		if eof || c1 != '^' {
			return newToken(tokenKindBExpOpen, nullChar, pos), nil
		}
		l.read()
		return newToken(tokenKindInverseBExpOpen, nullChar, pos), nil
	case '\\':
		return l.readEscapeSequence(pos, "")
	default:
		return newToken(tokenKindChar, c, pos), nil
	}
}

func (l *lexer) nextInBExp(c rune, pos int) (*token, error) {
	switch c {
	case '-':
		if l.rangeState != rangeStateReadRangeInitiator {
			return newToken(tokenKindChar, c, pos), nil
		}
		c1, eof := l.peek()
		if eof || c1 == ']' {
			return newToken(tokenKindChar, c, pos), nil
		}
		return newToken(tokenKindCharRange, nullChar, pos), nil
	case ']':
		return newToken(tokenKindBExpClose, nullChar, pos), nil
	case '\\':
		return l.readEscapeSequence(pos, " in a bracket expression")
	default:
		return newToken(tokenKindChar, c, pos), nil
	}
}

func (l *lexer) readEscapeSequence(pos int, where string) (*token, error) {
	c, eof := l.read()
	if eof {
		l.errCause = ErrIncompletedEscSeq
		l.errPos = pos
		return nil, errParse
	}
	if isMetaChar(c) {
		return newToken(tokenKindChar, c, pos), nil
	}
	l.errCause = ErrInvalidEscSeq
	l.errDetail = fmt.Sprintf("\\%v is not supported%v", string(c), where)
	l.errPos = pos
	return nil, errParse
}

func isMetaChar(c rune) bool {
	switch c {
	case '(', ')', '|', '*', '+', '?', '[', ']', '^', '-', '\\', '.':
		return true
	}
	return false
}

func (l *lexer) read() (rune, bool) {
	c, eof := l.peek()
	if !eof {
		l.pos++
	}
	return c, eof
}

func (l *lexer) peek() (rune, bool) {
	if l.pos >= len(l.src) {
		return nullChar, true
	}
	return l.src[l.pos], false
}

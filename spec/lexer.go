package spec

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	verr "github.com/nihei9/autore/error"
	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

type tokenKind string

const (
	tokenKindKWStart   = tokenKind("start")
	tokenKindKWAccept  = tokenKind("accept")
	tokenKindKWState   = tokenKind("state")
	tokenKindKWEpsilon = tokenKind("eps")
	tokenKindID        = tokenKind("id")
	tokenKindSymbol    = tokenKind("symbol")
	tokenKindArrow     = tokenKind("->")
	tokenKindComma     = tokenKind(",")
	tokenKindSemicolon = tokenKind(";")
	tokenKindEOF       = tokenKind("eof")
	tokenKindInvalid   = tokenKind("invalid")
)

type Position struct {
	Row int
	Col int
}

func newPosition(row, col int) Position {
	return Position{
		Row: row,
		Col: col,
	}
}

type token struct {
	kind tokenKind
	text string
	sym  rune
	pos  Position
}

func newSymbolToken(kind tokenKind, pos Position) *token {
	return &token{
		kind: kind,
		pos:  pos,
	}
}

func newIDToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindID,
		text: text,
		pos:  pos,
	}
}

func newLabelToken(text string, sym rune, pos Position) *token {
	return &token{
		kind: tokenKindSymbol,
		text: text,
		sym:  sym,
		pos:  pos,
	}
}

func newEOFToken(pos Position) *token {
	return &token{
		kind: tokenKindEOF,
		pos:  pos,
	}
}

func newInvalidToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindInvalid,
		text: text,
		pos:  pos,
	}
}

// lexEntries is the lexical specification of the text description format. When two patterns match
// the same text, the one appearing first wins, so keywords precede the identifier.
var lexEntries = []*mlspec.LexEntry{
	{
		Kind:    "white_space",
		Pattern: `[\u{0009}\u{000A}\u{000D}\u{0020}]+`,
	},
	{
		Kind:    "line_comment",
		Pattern: `#[^\u{000A}\u{000D}]*`,
	},
	{
		Kind:    "kw_start",
		Pattern: `start`,
	},
	{
		Kind:    "kw_accept",
		Pattern: `accept`,
	},
	{
		Kind:    "kw_state",
		Pattern: `state`,
	},
	{
		Kind:    "kw_eps",
		Pattern: `eps`,
	},
	{
		Kind:    "identifier",
		Pattern: `[0-9A-Za-z_]+`,
	},
	{
		Kind:    "symbol",
		Pattern: `'([^\\'\u{000A}\u{000D}]|\\[\\'nrt])'`,
	},
	{
		Kind:    "arrow",
		Pattern: `->`,
	},
	{
		Kind:    "comma",
		Pattern: `,`,
	},
	{
		Kind:    "semicolon",
		Pattern: `;`,
	},
}

// lexSpecName must be a valid maleeni identifier.
const lexSpecName = "automaton_description"

var (
	lexSpecOnce sync.Once
	lexSpec     *mlspec.CompiledLexSpec
	lexSpecErr  error
)

// compiledLexSpec compiles the lexical specification on first use.
func compiledLexSpec() (*mlspec.CompiledLexSpec, error) {
	lexSpecOnce.Do(func() {
		s, err, cErrs := mlcompiler.Compile(&mlspec.LexSpec{
			Name:    lexSpecName,
			Entries: lexEntries,
		}, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
		if err != nil {
			if len(cErrs) > 0 {
				var b strings.Builder
				for i, cErr := range cErrs {
					if i > 0 {
						fmt.Fprintf(&b, "\n")
					}
					fmt.Fprintf(&b, "%v: %v", cErr.Kind, cErr.Cause)
					if cErr.Detail != "" {
						fmt.Fprintf(&b, ": %v", cErr.Detail)
					}
				}
				lexSpecErr = fmt.Errorf("failed to compile the lexical specification: %v", b.String())
				return
			}
			lexSpecErr = err
			return
		}
		lexSpec = s
	})
	return lexSpec, lexSpecErr
}

type lexer struct {
	s *mlspec.CompiledLexSpec
	d *mldriver.Lexer
}

func newLexer(src io.Reader) (*lexer, error) {
	s, err := compiledLexSpec()
	if err != nil {
		return nil, err
	}
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(s), src)
	if err != nil {
		return nil, err
	}
	return &lexer{
		s: s,
		d: d,
	}, nil
}

func (l *lexer) next() (*token, error) {
	for {
		tok, err := l.d.Next()
		if err != nil {
			return nil, err
		}
		pos := newPosition(tok.Row+1, tok.Col+1)
		if tok.EOF {
			return newEOFToken(pos), nil
		}
		text := string(tok.Lexeme)
		if tok.Invalid {
			return newInvalidToken(text, pos), nil
		}

		switch l.s.KindNames[tok.KindID].String() {
		case "white_space", "line_comment":
			continue
		case "kw_start":
			return newSymbolToken(tokenKindKWStart, pos), nil
		case "kw_accept":
			return newSymbolToken(tokenKindKWAccept, pos), nil
		case "kw_state":
			return newSymbolToken(tokenKindKWState, pos), nil
		case "kw_eps":
			return newSymbolToken(tokenKindKWEpsilon, pos), nil
		case "identifier":
			return newIDToken(text, pos), nil
		case "symbol":
			sym, err := unquoteSymbol(text, pos)
			if err != nil {
				return nil, err
			}
			return newLabelToken(text, sym, pos), nil
		case "arrow":
			return newSymbolToken(tokenKindArrow, pos), nil
		case "comma":
			return newSymbolToken(tokenKindComma, pos), nil
		case "semicolon":
			return newSymbolToken(tokenKindSemicolon, pos), nil
		default:
			return newInvalidToken(text, pos), nil
		}
	}
}

// unquoteSymbol interprets a quoted symbol such as 'a' or '\n'.
func unquoteSymbol(text string, pos Position) (rune, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(text, "'"), "'")
	if strings.HasPrefix(body, `\`) {
		switch body[1:] {
		case "n":
			return '\n', nil
		case "r":
			return '\r', nil
		case "t":
			return '\t', nil
		case `\`:
			return '\\', nil
		case "'":
			return '\'', nil
		}
	}
	sym, size := utf8.DecodeRuneInString(body)
	if sym == utf8.RuneError || size != len(body) {
		return 0, &verr.SpecError{
			Cause:  synErrInvalidToken,
			Detail: text,
			Row:    pos.Row,
			Col:    pos.Col,
		}
	}
	return sym, nil
}

// quoteSymbol is the inverse of unquoteSymbol.
func quoteSymbol(sym rune) string {
	switch sym {
	case '\n':
		return `'\n'`
	case '\r':
		return `'\r'`
	case '\t':
		return `'\t'`
	case '\\':
		return `'\\'`
	case '\'':
		return `'\''`
	}
	return "'" + string(sym) + "'"
}

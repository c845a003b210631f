package parser

import (
	"fmt"
	"strings"
)

var errParse = fmt.Errorf("parse error")

var (
	// lexical errors
	ErrIncompletedEscSeq = fmt.Errorf("incompleted escape sequence; unexpected EOF following \\")
	ErrInvalidEscSeq     = fmt.Errorf("invalid escape sequence")

	// syntax errors
	ErrUnexpectedToken   = fmt.Errorf("unexpected token")
	ErrAltLackOfOperand  = fmt.Errorf("an alternation expression must have operands")
	ErrRepNoTarget       = fmt.Errorf("a repeat expression must have an operand")
	ErrGroupUnclosed     = fmt.Errorf("unclosed grouping expression")
	ErrGroupNoInitiator  = fmt.Errorf(") needs preceding (")
	ErrBExpUnclosed      = fmt.Errorf("unclosed bracket expression")
	ErrBExpNoInitiator   = fmt.Errorf("] needs preceding [")
	ErrRangeInvalidOrder = fmt.Errorf("a range expression with invalid order")
)

// SyntaxError reports a malformed regular expression. Pos is the offset, counted in runes, of the
// character that caused the error.
type SyntaxError struct {
	Cause  error
	Detail string
	Pos    int
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "syntax error at position %v: %v", e.Pos, e.Cause)
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %v", e.Detail)
	}
	return b.String()
}

func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

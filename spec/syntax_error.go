package spec

import "fmt"

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

type SemanticError struct {
	message string
}

func newSemanticError(message string) *SemanticError {
	return &SemanticError{
		message: message,
	}
}

func (e *SemanticError) Error() string {
	return e.message
}

var (
	// lexical errors
	synErrInvalidToken = newSyntaxError("invalid token")

	// syntax errors
	synErrNoStatement  = newSyntaxError("a statement must begin with start, accept, state, or a state name")
	synErrNoStateName  = newSyntaxError("a state name is missing")
	synErrNoArrow      = newSyntaxError("the arrow -> must follow the source state of a transition")
	synErrNoLabel      = newSyntaxError("a transition needs at least one label; a symbol like 'a' or eps")
	synErrNoSemicolon  = newSyntaxError("the semicolon is missing at the last of a statement")
	synErrTrailingComm = newSyntaxError("a comma must be followed by an operand")

	// semantic errors
	semErrNoStart        = newSemanticError("the start state is not declared")
	semErrDuplicateStart = newSemanticError("the start state is declared more than once")
	semErrInvalidKind    = newSemanticError("invalid automaton kind")
	semErrInvalidLabel   = newSemanticError("a label must consist of exactly one symbol")
	semErrUnknownState   = newSemanticError("unknown state")
)

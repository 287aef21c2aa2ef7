package parser

import (
	"fmt"
	"strings"

	"github.com/snowball-go/snowballc/lexer"
)

// LexicalError is a scanning failure: a runaway string literal or a
// character the scanner could not classify.
type LexicalError struct {
	Pos lexer.Pos
	Msg string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s:%d:%d: lexical error: %s", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Msg)
}

// SyntaxError is a token the grammar did not expect at some position.
type SyntaxError struct {
	Pos     lexer.Pos
	Msg     string
	Found   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: syntax error: %s (found %q)", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Msg, e.Found)
}

// ReferenceError is use of an identifier not declared in the table the
// grammar position requires, reported with the candidates that were in
// scope.
type ReferenceError struct {
	Pos        lexer.Pos
	Name       string
	Kind       string
	Candidates []string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s:%d:%d: reference error: %q is not a declared %s; expected one of {%s}",
		e.Pos.File, e.Pos.Line, e.Pos.Col, e.Name, e.Kind, strings.Join(e.Candidates, ", "))
}

// SemanticError covers grammar-shaped-but-meaningless constructs: an
// among with no arms, a setlimit missing either sub-command, and the
// like.
type SemanticError struct {
	Pos lexer.Pos
	Msg string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s:%d:%d: semantic error: %s", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Msg)
}

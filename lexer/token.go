// Package lexer scans Snowball source into a stream of tokens consumed
// directly by the parser — there is no separate token-slice pass, since
// the string-literal escape rules and the live set of declared names
// require the scanner and parser to stay in lockstep (see Scanner.Escapes
// and EscapeState.SetEscapes).
package lexer

// TokenType classifies one scanned token.
type TokenType int

const (
	EOFToken TokenType = iota
	ErrorToken

	WhitespaceToken
	LineCommentToken
	BlockCommentToken

	IdentifierToken
	KeywordToken
	IntegerLiteralToken
	StringLiteralToken

	LeftParenToken
	RightParenToken
	LeftBracketToken
	RightBracketToken
	DollarToken

	ReplaceSliceToken   // <-
	ExportSliceToken    // ->
	InsertToken         // <+
	ArrowToken          // =>
	PlusToken           // +
	MinusToken          // -
	StarToken           // *
	SlashToken          // /
	EqualToken          // =
	EqEqToken           // ==
	NotEqToken          // !=
	GreaterToken        // >
	LessToken           // <
	GreaterOrEqualToken // >=
	LessOrEqualToken    // <=
	PlusEqToken         // +=
	MinusEqToken        // -=
	StarEqToken         // *=
	SlashEqToken        // /=
)

// keywords is the fixed reserved-word set (spec §4.1). Any identifier
// matching one of these is a KeywordToken, not an IdentifierToken.
var keywords = map[string]bool{
	"maxint": true, "minint": true, "cursor": true, "limit": true,
	"size": true, "sizeof": true, "or": true, "and": true,
	"strings": true, "integers": true, "booleans": true, "routines": true,
	"externals": true, "groupings": true, "define": true, "as": true,
	"not": true, "test": true, "try": true, "do": true, "fail": true,
	"goto": true, "gopast": true, "repeat": true, "loop": true,
	"atleast": true, "insert": true, "attach": true, "delete": true,
	"hop": true, "next": true, "setmark": true, "tomark": true,
	"atmark": true, "tolimit": true, "atlimit": true, "setlimit": true,
	"for": true, "backwards": true, "reverse": true, "substring": true,
	"among": true, "set": true, "unset": true, "non": true,
	"true": true, "false": true, "backwardmode": true,
	"stringescapes": true, "stringdef": true, "hex": true, "decimal": true,
}

// IsKeyword reports whether word is a reserved Snowball keyword.
func IsKeyword(word string) bool { return keywords[word] }

// Package parser recognizes Snowball source against the live symbol
// tables in a Session and builds the ast.ProgramNode for it. The grammar
// is hand-written recursive descent rather than a declarative PEG/packrat
// engine: its two state-dependent terminals (declared-name references and
// escape-aware string literals, spec §4.2) need to consult session state
// that changes while parsing, which a static grammar table can't express.
package parser

import (
	"fmt"
	"strconv"

	"github.com/snowball-go/snowballc/ast"
	"github.com/snowball-go/snowballc/lexer"
)

// Parser recognizes one Snowball source file into an ast.ProgramNode.
type Parser struct {
	sess *Session
	pkg  string

	tok  lexer.TokenType
	text string
}

// Parse reads the whole of src under the given output package name and
// returns its AST, or the first error encountered (parsing aborts on
// first error — spec §7).
func Parse(src, file, pkg string) (ast.ProgramNode, error) {
	p := &Parser{sess: NewSession(src, file), pkg: pkg}
	p.advance()
	decls, err := p.parseDeclarations(isEOF)
	if err != nil {
		return ast.ProgramNode{}, err
	}
	return ast.ProgramNode{Package: pkg, Declarations: decls}, nil
}

func isEOF(p *Parser) bool { return p.tok == lexer.EOFToken }

// advance scans past trivia to the next significant token.
func (p *Parser) advance() {
	p.sess.scanner.NextToken()
	p.sess.scanner.SkipTrivia()
	p.tok = p.sess.scanner.TokenType()
	p.text = p.sess.scanner.Token()
}

func (p *Parser) pos() lexer.Pos { return p.sess.scanner.Start() }

func (p *Parser) errorf(format string, args ...interface{}) error {
	return &SyntaxError{Pos: p.pos(), Msg: fmt.Sprintf(format, args...), Found: p.text}
}

func (p *Parser) atKeyword(word string) bool {
	return p.tok == lexer.KeywordToken && p.text == word
}

func (p *Parser) expectKeyword(word string) error {
	if !p.atKeyword(word) {
		return p.errorf("expected %q", word)
	}
	p.advance()
	return nil
}

func (p *Parser) expect(tt lexer.TokenType, what string) (string, error) {
	if p.tok != tt {
		return "", p.errorf("expected %s", what)
	}
	text := p.text
	p.advance()
	return text, nil
}

func (p *Parser) parseIdentifier() (string, error) {
	if p.tok == lexer.KeywordToken {
		return "", p.errorf("expected an identifier, found reserved word %q", p.text)
	}
	return p.expect(lexer.IdentifierToken, "an identifier")
}

// parseDeclarations reads program atoms until stop reports true.
func (p *Parser) parseDeclarations(stop func(*Parser) bool) ([]ast.Node, error) {
	var decls []ast.Node
	for !stop(p) {
		d, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		if d != nil {
			decls = append(decls, d)
		}
	}
	return decls, nil
}

func (p *Parser) parseDeclaration() (ast.Node, error) {
	switch {
	case p.atKeyword("strings"):
		return p.parseDeclaredNameList(p.sess.Strings.declare, func(n string) ast.Node { return ast.StringDeclarationNode{Name: n} })
	case p.atKeyword("integers"):
		return p.parseDeclaredNameList(p.sess.Integers.declare, func(n string) ast.Node { return ast.IntegerDeclarationNode{Name: n} })
	case p.atKeyword("booleans"):
		return p.parseDeclaredNameList(p.sess.Booleans.declare, func(n string) ast.Node { return ast.BooleanDeclarationNode{Name: n} })
	case p.atKeyword("routines"):
		return p.parseDeclaredNameList(p.sess.Routines.declare, func(n string) ast.Node { return ast.RoutineDeclarationNode{Name: n} })
	case p.atKeyword("groupings"):
		return p.parseDeclaredNameList(p.sess.Groupings.declare, func(n string) ast.Node { return ast.GroupingDeclarationNode{Name: n} })
	case p.atKeyword("externals"):
		return p.parseDeclaredNameList(p.sess.declareExternal, func(n string) ast.Node { return ast.ExternalDeclarationNode{Name: n} })
	case p.atKeyword("define"):
		return p.parseDefine()
	case p.atKeyword("stringescapes"):
		return nil, p.parseStringEscapes()
	case p.atKeyword("stringdef"):
		return nil, p.parseStringDef()
	case p.atKeyword("backwardmode"):
		return p.parseBackwardMode()
	default:
		return nil, p.errorf("expected a declaration")
	}
}

// parseNameList parses `keyword ( name* )`, declaring each into table and
// returning the names in declaration order.
func (p *Parser) parseNameList(declare func(string)) ([]string, error) {
	p.advance() // keyword
	if _, err := p.expect(lexer.LeftParenToken, "'('"); err != nil {
		return nil, err
	}
	var names []string
	for p.tok != lexer.RightParenToken {
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		declare(name)
		names = append(names, name)
	}
	p.advance() // ')'
	return names, nil
}

// parseDeclaredNameList parses `keyword ( name* )` and wraps one
// declaration node per name (built by makeNode) in a DeclarationGroupNode.
func (p *Parser) parseDeclaredNameList(declare func(string), makeNode func(string) ast.Node) (ast.Node, error) {
	names, err := p.parseNameList(declare)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}
	nodes := make([]ast.Node, len(names))
	for i, n := range names {
		nodes[i] = makeNode(n)
	}
	return ast.DeclarationGroupNode{Declarations: nodes}, nil
}

// parseDefine parses `define name as <grouping-expr|command>`, dispatched
// on which table name was declared into.
func (p *Parser) parseDefine() (ast.Node, error) {
	p.advance() // 'define'
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("as"); err != nil {
		return nil, err
	}
	switch {
	case p.sess.Groupings.has(name):
		set, err := p.parseGroupingExpr()
		if err != nil {
			return nil, err
		}
		return ast.GroupingDefinitionNode{Name: name, Set: set}, nil
	case p.sess.Routines.has(name):
		body, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		return ast.RoutineDefinitionNode{Name: name, Body: body}, nil
	default:
		return nil, &ReferenceError{Pos: p.pos(), Name: name, Kind: "routine or grouping", Candidates: append(p.sess.Routines.names(), p.sess.Groupings.names()...)}
	}
}

// parseBackwardMode parses `backwardmode ( declaration* )`.
func (p *Parser) parseBackwardMode() (ast.Node, error) {
	p.advance() // 'backwardmode'
	if _, err := p.expect(lexer.LeftParenToken, "'('"); err != nil {
		return nil, err
	}
	decls, err := p.parseDeclarations(func(p *Parser) bool { return p.tok == lexer.RightParenToken })
	if err != nil {
		return nil, err
	}
	p.advance() // ')'
	return ast.BackwardModeNode{Declarations: decls}, nil
}

// parseStringEscapes parses `stringescapes 'LR'`, a two-character string
// literal naming the new left/right escape-bracket pair.
func (p *Parser) parseStringEscapes() error {
	p.advance() // 'stringescapes'
	if p.tok != lexer.StringLiteralToken {
		return p.errorf("expected a two-character string literal after stringescapes")
	}
	lit := p.sess.scanner.Literal
	runes := []rune(lit)
	if len(runes) != 2 {
		return &SemanticError{Pos: p.pos(), Msg: "stringescapes requires exactly two characters"}
	}
	p.sess.scanner.Escapes.SetEscapes(runes[0], runes[1])
	p.advance()
	return nil
}

// parseStringDef parses `stringdef name (hex|decimal) 'codepoints'`.
func (p *Parser) parseStringDef() error {
	p.advance() // 'stringdef'
	name, err := p.parseIdentifier()
	if err != nil {
		return err
	}
	var decode func(string) (string, error)
	switch {
	case p.atKeyword("hex"):
		decode = lexer.DecodeHex
	case p.atKeyword("decimal"):
		decode = lexer.DecodeDecimal
	default:
		return p.errorf("expected hex or decimal")
	}
	p.advance()
	if p.tok != lexer.StringLiteralToken {
		return p.errorf("expected a string literal of codepoints")
	}
	value, err := decode(p.sess.scanner.Literal)
	if err != nil {
		return &SemanticError{Pos: p.pos(), Msg: err.Error()}
	}
	p.sess.scanner.Escapes.Define(name, value)
	p.advance()
	return nil
}

// parseGroupingExpr parses a left-associative `+`/`-` chain of character
// sets (string literals or grouping references).
func (p *Parser) parseGroupingExpr() (ast.Node, error) {
	left, err := p.parseGroupingOperand()
	if err != nil {
		return nil, err
	}
	for p.tok == lexer.PlusToken || p.tok == lexer.MinusToken {
		op := p.tok
		p.advance()
		right, err := p.parseGroupingOperand()
		if err != nil {
			return nil, err
		}
		if op == lexer.PlusToken {
			left = ast.NewSetUnion(left, right)
		} else {
			left = ast.NewSetDifference(left, right)
		}
	}
	return left, nil
}

func (p *Parser) parseGroupingOperand() (ast.Node, error) {
	switch {
	case p.tok == lexer.StringLiteralToken:
		chars := p.sess.scanner.Literal
		p.advance()
		return ast.CharSetNode{Chars: chars}, nil
	case p.tok == lexer.IdentifierToken && p.sess.Groupings.has(p.text):
		name := p.text
		p.advance()
		return ast.GroupingReferenceNode{Name: name}, nil
	default:
		return nil, p.errorf("expected a string literal or grouping name")
	}
}

func parseIntLiteral(text string) (int, error) {
	return strconv.Atoi(text)
}

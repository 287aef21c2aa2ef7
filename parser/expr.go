package parser

import (
	"github.com/snowball-go/snowballc/ast"
	"github.com/snowball-go/snowballc/lexer"
)

// parseExpr parses the additive (`+ -`, left-associative) precedence
// level of an integer expression.
func (p *Parser) parseExpr() (ast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tok == lexer.PlusToken || p.tok == lexer.MinusToken {
		op := p.tok
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op == lexer.PlusToken {
			left = ast.AdditionNode{Left: left, Right: right}
		} else {
			left = ast.SubtractionNode{Left: left, Right: right}
		}
	}
	return left, nil
}

// parseTerm parses the multiplicative (`* /`, left-associative) level.
func (p *Parser) parseTerm() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok == lexer.StarToken || p.tok == lexer.SlashToken {
		op := p.tok
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == lexer.StarToken {
			left = ast.MultiplicationNode{Left: left, Right: right}
		} else {
			left = ast.DivisionNode{Left: left, Right: right}
		}
	}
	return left, nil
}

// parseUnary parses right-associative unary `-`.
func (p *Parser) parseUnary() (ast.Node, error) {
	if p.tok == lexer.MinusToken {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NegationNode{Operand: operand}, nil
	}
	return p.parsePrimaryExpr()
}

func (p *Parser) parsePrimaryExpr() (ast.Node, error) {
	switch {
	case p.tok == lexer.IntegerLiteralToken:
		n, err := parseIntLiteral(p.sess.scanner.Literal)
		if err != nil {
			return nil, &SemanticError{Pos: p.pos(), Msg: "integer literal out of range: " + err.Error()}
		}
		p.advance()
		return ast.IntegerLiteralNode{Value: n}, nil
	case p.atKeyword("maxint"):
		p.advance()
		return ast.MaxIntNode{}, nil
	case p.atKeyword("minint"):
		p.advance()
		return ast.MinIntNode{}, nil
	case p.atKeyword("cursor"):
		p.advance()
		return ast.CursorNode{}, nil
	case p.atKeyword("limit"):
		p.advance()
		return ast.LimitNode{}, nil
	case p.atKeyword("size"):
		p.advance()
		return ast.SizeNode{}, nil
	case p.atKeyword("sizeof"):
		p.advance()
		if _, err := p.expect(lexer.LeftParenToken, "'('"); err != nil {
			return nil, err
		}
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if !p.sess.Strings.has(name) {
			return nil, &ReferenceError{Pos: p.pos(), Name: name, Kind: "string", Candidates: p.sess.Strings.names()}
		}
		if _, err := p.expect(lexer.RightParenToken, "')'"); err != nil {
			return nil, err
		}
		return ast.SizeOfNode{Ref: ast.StringReferenceNode{Name: name}}, nil
	case p.tok == lexer.LeftParenToken:
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RightParenToken, "')'"); err != nil {
			return nil, err
		}
		return e, nil
	case p.tok == lexer.IdentifierToken && p.sess.Integers.has(p.text):
		name := p.text
		p.advance()
		return ast.IntegerReferenceNode{Name: name}, nil
	default:
		return nil, p.errorf("expected an integer expression")
	}
}

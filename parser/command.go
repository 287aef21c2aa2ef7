package parser

import (
	"sort"

	"github.com/snowball-go/snowballc/ast"
	"github.com/snowball-go/snowballc/lexer"
)

// parseConcatenation parses a sequence of juxtaposed commands, the
// loosest-binding level of the command grammar (spec §4.2).
func (p *Parser) parseConcatenation() (ast.Node, error) {
	var commands []ast.Node
	for p.canStartCommand() {
		c, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		commands = append(commands, c)
	}
	if len(commands) == 0 {
		return nil, p.errorf("expected a command")
	}
	if err := p.pairSubstrings(commands); err != nil {
		return nil, err
	}
	if len(commands) == 1 {
		return commands[0], nil
	}
	return ast.ConcatenationNode{Commands: commands}, nil
}

// pairSubstrings implements spec §4.5 step 4-5: a bare SubstringNode
// (one the parser hasn't already paired) claims the AmongTable of the
// first AmongNode that follows it in this same command sequence, so that
// node generates the match step at the substring's position instead of
// the among's. A substring with no following among in the sequence is a
// semantic error — the construct has no arm table to match against.
func (p *Parser) pairSubstrings(commands []ast.Node) error {
	for i, c := range commands {
		sub, ok := c.(ast.SubstringNode)
		if !ok || sub.Table != nil {
			continue
		}
		found := false
		for j := i + 1; j < len(commands); j++ {
			if among, ok := commands[j].(ast.AmongNode); ok {
				commands[i] = ast.SubstringNode{Table: among.Table}
				found = true
				break
			}
		}
		if !found {
			return &SemanticError{Pos: p.pos(), Msg: "substring must be followed by an among in the same command sequence"}
		}
	}
	return nil
}

// parseOr parses left-associative `or`, one level looser than `and`.
func (p *Parser) parseOr() (ast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	commands := []ast.Node{left}
	for p.atKeyword("or") {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		commands = append(commands, right)
	}
	if len(commands) == 1 {
		return commands[0], nil
	}
	return ast.OrNode{Commands: commands}, nil
}

// parseAnd parses left-associative `and`, tighter than `or`.
func (p *Parser) parseAnd() (ast.Node, error) {
	left, err := p.parseUnaryCmd()
	if err != nil {
		return nil, err
	}
	commands := []ast.Node{left}
	for p.atKeyword("and") {
		p.advance()
		right, err := p.parseUnaryCmd()
		if err != nil {
			return nil, err
		}
		commands = append(commands, right)
	}
	if len(commands) == 1 {
		return commands[0], nil
	}
	return ast.AndNode{Commands: commands}, nil
}

// parseUnaryCmd parses the right-associative prefix-operator level.
func (p *Parser) parseUnaryCmd() (ast.Node, error) {
	switch {
	case p.atKeyword("not"):
		p.advance()
		body, err := p.parseUnaryCmd()
		if err != nil {
			return nil, err
		}
		return ast.NewNot(body), nil
	case p.atKeyword("test"):
		p.advance()
		body, err := p.parseUnaryCmd()
		if err != nil {
			return nil, err
		}
		return ast.NewTest(body), nil
	case p.atKeyword("try"):
		p.advance()
		body, err := p.parseUnaryCmd()
		if err != nil {
			return nil, err
		}
		return ast.NewTry(body), nil
	case p.atKeyword("do"):
		p.advance()
		body, err := p.parseUnaryCmd()
		if err != nil {
			return nil, err
		}
		return ast.NewDo(body), nil
	case p.atKeyword("fail"):
		p.advance()
		body, err := p.parseUnaryCmd()
		if err != nil {
			return nil, err
		}
		return ast.NewFail(body), nil
	case p.atKeyword("goto"):
		p.advance()
		body, err := p.parseUnaryCmd()
		if err != nil {
			return nil, err
		}
		return ast.NewGoTo(body), nil
	case p.atKeyword("gopast"):
		p.advance()
		body, err := p.parseUnaryCmd()
		if err != nil {
			return nil, err
		}
		return ast.NewGoPast(body), nil
	case p.atKeyword("repeat"):
		p.advance()
		body, err := p.parseUnaryCmd()
		if err != nil {
			return nil, err
		}
		return ast.NewRepeat(body), nil
	case p.atKeyword("backwards"):
		p.advance()
		body, err := p.parseUnaryCmd()
		if err != nil {
			return nil, err
		}
		return ast.BackwardsNode{Body: body}, nil
	case p.atKeyword("reverse"):
		p.advance()
		body, err := p.parseUnaryCmd()
		if err != nil {
			return nil, err
		}
		return ast.ReverseNode{Body: body}, nil
	case p.atKeyword("loop"):
		p.advance()
		count, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		body, err := p.parseUnaryCmd()
		if err != nil {
			return nil, err
		}
		return ast.NewLoop(count, body), nil
	case p.atKeyword("atleast"):
		p.advance()
		count, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		body, err := p.parseUnaryCmd()
		if err != nil {
			return nil, err
		}
		return ast.NewAtLeast(count, body), nil
	default:
		return p.parsePrimaryCmd()
	}
}

// canStartCommand reports whether the current token can begin a command,
// i.e. whether parseConcatenation should keep going.
func (p *Parser) canStartCommand() bool {
	switch p.tok {
	case lexer.StringLiteralToken, lexer.LeftBracketToken, lexer.RightBracketToken,
		lexer.ReplaceSliceToken, lexer.ExportSliceToken, lexer.InsertToken, lexer.LeftParenToken,
		lexer.DollarToken:
		return true
	case lexer.IdentifierToken:
		// Undeclared names are let through so that parseReferenceCmd
		// reports them as a ReferenceError; a bare integer name is not a
		// command (it needs the `$` sigil).
		return !p.sess.Integers.has(p.text)
	case lexer.KeywordToken:
		switch p.text {
		case "not", "test", "try", "do", "fail", "goto", "gopast", "repeat", "loop",
			"atleast", "backwards", "reverse", "insert", "attach", "delete", "hop", "next",
			"setmark", "tomark", "atmark", "atlimit", "tolimit", "setlimit", "for",
			"substring", "among", "set", "unset", "non", "true", "false":
			return true
		}
	}
	return false
}

// parseStringArg parses the operand of insert/attach/<-: a string
// literal, or a reference to the raw character buffer of a declared
// string.
func (p *Parser) parseStringArg() (ast.Node, error) {
	switch {
	case p.tok == lexer.StringLiteralToken:
		v := p.sess.scanner.Literal
		p.advance()
		return ast.StringLiteralNode{Value: v}, nil
	case p.tok == lexer.IdentifierToken && p.sess.Strings.has(p.text):
		name := p.text
		p.advance()
		return ast.CharsReferenceNode{Name: name}, nil
	default:
		return nil, p.errorf("expected a string literal or declared string name")
	}
}

func (p *Parser) parsePrimaryCmd() (ast.Node, error) {
	switch {
	case p.tok == lexer.StringLiteralToken:
		v := p.sess.scanner.Literal
		p.advance()
		return ast.NewStartsWith(ast.StringLiteralNode{Value: v}), nil

	case p.tok == lexer.LeftBracketToken:
		p.advance()
		return ast.NewSetLeft(), nil
	case p.tok == lexer.RightBracketToken:
		p.advance()
		return ast.NewSetRight(), nil

	case p.tok == lexer.ReplaceSliceToken:
		p.advance()
		arg, err := p.parseStringArg()
		if err != nil {
			return nil, err
		}
		return ast.NewReplaceSlice(arg), nil
	case p.tok == lexer.ExportSliceToken:
		p.advance()
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if !p.sess.Strings.has(name) {
			return nil, &ReferenceError{Pos: p.pos(), Name: name, Kind: "string", Candidates: p.sess.Strings.names()}
		}
		return ast.NewExportSlice(ast.StringReferenceNode{Name: name}), nil
	case p.tok == lexer.InsertToken:
		p.advance()
		arg, err := p.parseStringArg()
		if err != nil {
			return nil, err
		}
		return ast.NewInsert(arg), nil

	case p.tok == lexer.LeftParenToken:
		p.advance()
		if p.tok == lexer.RightParenToken {
			p.advance()
			return ast.EmptyCommandNode{}, nil
		}
		sub, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RightParenToken, "')'"); err != nil {
			return nil, err
		}
		return sub, nil

	case p.atKeyword("insert"):
		p.advance()
		arg, err := p.parseStringArg()
		if err != nil {
			return nil, err
		}
		return ast.NewInsert(arg), nil
	case p.atKeyword("attach"):
		p.advance()
		arg, err := p.parseStringArg()
		if err != nil {
			return nil, err
		}
		return ast.NewAttach(arg), nil
	case p.atKeyword("delete"):
		p.advance()
		return ast.NewDelete(), nil
	case p.atKeyword("hop"):
		p.advance()
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewHop(n), nil
	case p.atKeyword("next"):
		p.advance()
		return ast.NewNext(), nil
	case p.atKeyword("setmark"):
		p.advance()
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if !p.sess.Integers.has(name) {
			return nil, &ReferenceError{Pos: p.pos(), Name: name, Kind: "integer", Candidates: p.sess.Integers.names()}
		}
		return ast.NewSetMark(ast.IntegerReferenceNode{Name: name}), nil
	case p.atKeyword("tomark"):
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewToMark(e), nil
	case p.atKeyword("atmark"):
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewAtMark(e), nil
	case p.atKeyword("atlimit"):
		p.advance()
		return ast.NewAtLimit(), nil
	case p.atKeyword("tolimit"):
		p.advance()
		return ast.NewToLimit(), nil
	case p.atKeyword("set"):
		p.advance()
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if !p.sess.Booleans.has(name) {
			return nil, &ReferenceError{Pos: p.pos(), Name: name, Kind: "boolean", Candidates: p.sess.Booleans.names()}
		}
		return ast.NewSet(ast.BooleanReferenceNode{Name: name}), nil
	case p.atKeyword("unset"):
		p.advance()
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if !p.sess.Booleans.has(name) {
			return nil, &ReferenceError{Pos: p.pos(), Name: name, Kind: "boolean", Candidates: p.sess.Booleans.names()}
		}
		return ast.NewUnset(ast.BooleanReferenceNode{Name: name}), nil
	case p.atKeyword("true"):
		p.advance()
		return ast.NewTrueCommand(), nil
	case p.atKeyword("false"):
		p.advance()
		return ast.NewFalseCommand(), nil
	case p.atKeyword("non"):
		p.advance()
		if p.tok == lexer.MinusToken {
			p.advance()
		}
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if !p.sess.Groupings.has(name) {
			return nil, &ReferenceError{Pos: p.pos(), Name: name, Kind: "grouping", Candidates: p.sess.Groupings.names()}
		}
		return ast.NewNon(ast.GroupingReferenceNode{Name: name}), nil
	case p.atKeyword("substring"):
		p.advance()
		return ast.SubstringNode{}, nil
	case p.atKeyword("among"):
		return p.parseAmong()
	case p.atKeyword("setlimit"):
		p.advance()
		bound, err := p.parseUnaryCmd()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("for"); err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.LeftParenToken, "'('"); err != nil {
			return nil, err
		}
		body, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RightParenToken, "')'"); err != nil {
			return nil, err
		}
		return ast.NewSetLimit(bound, body), nil

	case p.tok == lexer.DollarToken:
		p.advance()
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if !p.sess.Integers.has(name) {
			return nil, &ReferenceError{Pos: p.pos(), Name: name, Kind: "integer", Candidates: p.sess.Integers.names()}
		}
		return p.parseIntegerCommand(ast.IntegerReferenceNode{Name: name})

	case p.tok == lexer.IdentifierToken:
		return p.parseReferenceCmd()

	default:
		return nil, p.errorf("expected a command")
	}
}

// parseReferenceCmd parses a bare identifier used as a command: a
// grouping test, a boolean check, a routine call, or a declared string's
// raw characters tested with starts-with. Integer commands are not
// reached here — they require a `$` sigil immediately before their
// target (parsePrimaryCmd's DollarToken case), matching real Snowball
// source's `$p1 = limit` syntax.
func (p *Parser) parseReferenceCmd() (ast.Node, error) {
	name := p.text
	switch {
	case p.sess.Groupings.has(name):
		p.advance()
		return ast.NewGrouping(ast.GroupingReferenceNode{Name: name}), nil
	case p.sess.Booleans.has(name):
		p.advance()
		return ast.NewBooleanCommand(ast.BooleanReferenceNode{Name: name}), nil
	case p.sess.Strings.has(name):
		p.advance()
		return ast.NewStartsWith(ast.CharsReferenceNode{Name: name}), nil
	case p.sess.Routines.has(name):
		p.advance()
		return ast.NewRoutineCall(ast.RoutineReferenceNode{Name: name}), nil
	default:
		all := append(append(append(p.sess.Groupings.names(), p.sess.Booleans.names()...), p.sess.Strings.names()...), p.sess.Routines.names()...)
		return nil, &ReferenceError{Pos: p.pos(), Name: name, Kind: "grouping, boolean, string, or routine", Candidates: all}
	}
}

// parseIntegerCommand parses the operator and right-hand side of an
// integer command (spec §9's resolved open question: assignments set
// r=true, comparisons set r to the outcome).
func (p *Parser) parseIntegerCommand(target ast.Node) (ast.Node, error) {
	op := p.tok
	p.advance()
	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	switch op {
	case lexer.EqualToken:
		return ast.NewIntegerAssign(target, rhs), nil
	case lexer.PlusEqToken:
		return ast.NewIntegerIncrementBy(target, rhs), nil
	case lexer.MinusEqToken:
		return ast.NewIntegerDecrementBy(target, rhs), nil
	case lexer.StarEqToken:
		return ast.NewIntegerMultiplyBy(target, rhs), nil
	case lexer.SlashEqToken:
		return ast.NewIntegerDivideBy(target, rhs), nil
	case lexer.EqEqToken:
		return ast.NewIntegerEqual(target, rhs), nil
	case lexer.NotEqToken:
		return ast.NewIntegerUnequal(target, rhs), nil
	case lexer.GreaterToken:
		return ast.NewIntegerGreater(target, rhs), nil
	case lexer.LessToken:
		return ast.NewIntegerLess(target, rhs), nil
	case lexer.GreaterOrEqualToken:
		return ast.NewIntegerGreaterOrEqual(target, rhs), nil
	case lexer.LessOrEqualToken:
		return ast.NewIntegerLessOrEqual(target, rhs), nil
	default:
		return nil, p.errorf("expected an integer assignment or comparison operator")
	}
}

// parseAmong parses `among ( [commonCmd] arm+ )`, where each arm is one
// or more (string literal, optional guard routine) pairs sharing one
// optional trailing command (spec §4.5).
func (p *Parser) parseAmong() (ast.Node, error) {
	p.advance() // 'among'
	if _, err := p.expect(lexer.LeftParenToken, "'('"); err != nil {
		return nil, err
	}

	var commonCmd ast.Node
	if p.tok == lexer.LeftParenToken {
		p.advance()
		if p.tok != lexer.RightParenToken {
			cmd, err := p.parseConcatenation()
			if err != nil {
				return nil, err
			}
			commonCmd = cmd
		}
		if _, err := p.expect(lexer.RightParenToken, "')'"); err != nil {
			return nil, err
		}
	}

	var entries []ast.AmongEntry
	var commands []ast.Node
	branch := 0
	for p.tok != lexer.RightParenToken {
		if p.tok != lexer.StringLiteralToken {
			return nil, p.errorf("expected a string literal in an among arm")
		}
		for p.tok == lexer.StringLiteralToken {
			pattern := p.sess.scanner.Literal
			p.advance()
			var guard ast.Node
			if p.tok == lexer.IdentifierToken && p.sess.Routines.has(p.text) {
				guard = ast.RoutineReferenceNode{Name: p.text}
				p.advance()
			}
			entries = append(entries, ast.AmongEntry{Pattern: pattern, Guard: guard, Branch: branch})
		}
		var cmd ast.Node
		if p.tok == lexer.LeftParenToken {
			p.advance()
			if p.tok != lexer.RightParenToken {
				c, err := p.parseConcatenation()
				if err != nil {
					return nil, err
				}
				cmd = c
			}
			if _, err := p.expect(lexer.RightParenToken, "')'"); err != nil {
				return nil, err
			}
		}
		commands = append(commands, cmd)
		branch++
	}
	p.advance() // ')'

	if len(entries) == 0 {
		return nil, &SemanticError{Pos: p.pos(), Msg: "among requires at least one arm"}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return len([]rune(entries[i].Pattern)) > len([]rune(entries[j].Pattern))
	})

	return ast.AmongNode{Table: ast.NewAmongTable(entries, commands, commonCmd)}, nil
}

// Package parser builds a syntax tree from Khwarizmi tokens using recursive
// descent for statements and precedence climbing for expressions.
package parser

import (
	"github.com/wildfunctions/khwarizmi/pkg/ast"
	"github.com/wildfunctions/khwarizmi/pkg/diag"
	"github.com/wildfunctions/khwarizmi/pkg/lexer"
)

var precedence = map[lexer.Kind]int{
	lexer.Or:    1,
	lexer.And:   2,
	lexer.Eq:    3,
	lexer.Neq:   3,
	lexer.Lt:    4,
	lexer.Gt:    4,
	lexer.Lte:   4,
	lexer.Gte:   4,
	lexer.Plus:  5,
	lexer.Minus: 5,
	lexer.Mult:  6,
	lexer.Div:   6,
}

var binaryOps = map[lexer.Kind]ast.BinaryOp{
	lexer.Or:    ast.OpOr,
	lexer.And:   ast.OpAnd,
	lexer.Eq:    ast.OpEq,
	lexer.Neq:   ast.OpNeq,
	lexer.Lt:    ast.OpLt,
	lexer.Gt:    ast.OpGt,
	lexer.Lte:   ast.OpLte,
	lexer.Gte:   ast.OpGte,
	lexer.Plus:  ast.OpAdd,
	lexer.Minus: ast.OpSub,
	lexer.Mult:  ast.OpMul,
	lexer.Div:   ast.OpDiv,
}

var declTypes = map[lexer.Kind]ast.DeclType{
	lexer.TypeInt:  ast.TypeInt,
	lexer.TypeBool: ast.TypeBool,
	lexer.TypeEq:   ast.TypeEq,
}

// Parser consumes a token slice.
type Parser struct {
	toks []lexer.Token
	pos  int
}

// Parse lexes and parses a complete program.
func Parse(src string) (*ast.Program, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return New(toks).ParseProgram()
}

// ParseExpr lexes and parses a single expression.
func ParseExpr(src string) (ast.Node, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := New(toks)
	e, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	if _, err := p.expect(lexer.EOF); err != nil {
		return nil, err
	}
	return e, nil
}

// New returns a parser over toks, which must end with an EOF token.
func New(toks []lexer.Token) *Parser {
	return &Parser{toks: toks}
}

func (p *Parser) peek() lexer.Token {
	return p.toks[p.pos]
}

func (p *Parser) next() lexer.Token {
	tok := p.toks[p.pos]
	if tok.Kind != lexer.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(k lexer.Kind) (lexer.Token, error) {
	tok := p.peek()
	if tok.Kind != k {
		return tok, p.errorf(tok, "expected %s, got %s", k, tok)
	}
	return p.next(), nil
}

func (p *Parser) errorf(tok lexer.Token, format string, args ...interface{}) error {
	return diag.At(diag.SyntaxError, tok.Line, tok.Col, format, args...)
}

func (p *Parser) skipNewlines() {
	for p.peek().Kind == lexer.Newline {
		p.next()
	}
}

// peekPastNewlines returns the first token that is not a newline without
// consuming anything.
func (p *Parser) peekPastNewlines() lexer.Token {
	i := p.pos
	for p.toks[i].Kind == lexer.Newline {
		i++
	}
	return p.toks[i]
}

// ParseProgram parses BEGIN statements END.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	p.skipNewlines()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	if _, err := p.expect(lexer.EOF); err != nil {
		return nil, err
	}
	return &ast.Program{Body: body}, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	if _, err := p.expect(lexer.Begin); err != nil {
		return nil, err
	}
	p.skipNewlines()
	block := &ast.Block{}
	for p.peek().Kind != lexer.End {
		if p.peek().Kind == lexer.EOF {
			return nil, p.errorf(p.peek(), "unexpected end of input, missing END")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)

		switch p.peek().Kind {
		case lexer.Newline:
			p.skipNewlines()
		case lexer.End:
		default:
			return nil, p.errorf(p.peek(), "expected newline after statement, got %s", p.peek())
		}
	}
	p.next()
	return block, nil
}

func (p *Parser) parseStatement() (ast.Node, error) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.TypeInt, lexer.TypeBool, lexer.TypeEq:
		return p.parseVarDec()
	case lexer.Identifier:
		return p.parseAssignment()
	case lexer.If:
		return p.parseIf()
	case lexer.While:
		return p.parseWhile()
	case lexer.Print:
		p.next()
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &ast.PrintCmd{Args: args}, nil
	case lexer.Show:
		p.next()
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &ast.ShowCmd{Args: args}, nil
	case lexer.Solve:
		p.next()
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &ast.SolveCmd{Args: args}, nil
	default:
		return nil, p.errorf(tok, "unexpected %s at start of statement", tok)
	}
}

func (p *Parser) parseVarDec() (ast.Node, error) {
	typ := declTypes[p.next().Kind]
	name, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	dec := &ast.VarDec{Type: typ, Name: name.Text}
	if p.peek().Kind != lexer.Assign {
		return dec, nil
	}
	p.next()
	init, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	if typ == ast.TypeEq {
		init = &ast.Equation{Expr: init}
	}
	dec.Init = init
	return dec, nil
}

func (p *Parser) parseAssignment() (ast.Node, error) {
	name := p.next()
	if _, err := p.expect(lexer.Assign); err != nil {
		return nil, err
	}
	e, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Name: name.Text, Expr: e}, nil
}

func (p *Parser) parseCondBlock() (ast.Node, *ast.Block, error) {
	cond, err := p.parseExpr(1)
	if err != nil {
		return nil, nil, err
	}
	p.skipNewlines()
	body, err := p.parseBlock()
	if err != nil {
		return nil, nil, err
	}
	return cond, body, nil
}

func (p *Parser) parseIf() (ast.Node, error) {
	p.next()
	cond, then, err := p.parseCondBlock()
	if err != nil {
		return nil, err
	}
	node := &ast.If{Cond: cond, Then: then}
	for p.peekPastNewlines().Kind == lexer.Elif {
		p.skipNewlines()
		p.next()
		c, b, err := p.parseCondBlock()
		if err != nil {
			return nil, err
		}
		node.Elifs = append(node.Elifs, ast.Elif{Cond: c, Body: b})
	}
	if p.peekPastNewlines().Kind == lexer.Else {
		p.skipNewlines()
		p.next()
		p.skipNewlines()
		els, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Else = els
	}
	return node, nil
}

func (p *Parser) parseWhile() (ast.Node, error) {
	p.next()
	cond, body, err := p.parseCondBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body}, nil
}

func (p *Parser) parseArgs() (*ast.ArgumentList, error) {
	if _, err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}
	args := &ast.ArgumentList{}
	if p.peek().Kind != lexer.RParen {
		for {
			e, err := p.parseExpr(1)
			if err != nil {
				return nil, err
			}
			args.Exprs = append(args.Exprs, e)
			if p.peek().Kind != lexer.Comma {
				break
			}
			p.next()
		}
	}
	if _, err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	return args, nil
}

// parseExpr implements precedence climbing; all binary operators are
// left-associative.
func (p *Parser) parseExpr(minPrec int) (ast.Node, error) {
	lhs, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		prec, ok := precedence[tok.Kind]
		if !ok || prec < minPrec {
			return lhs, nil
		}
		p.next()
		rhs, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinOp{Op: binaryOps[tok.Kind], Left: lhs, Right: rhs}
	}
}

func (p *Parser) parseFactor() (ast.Node, error) {
	tok := p.next()
	switch tok.Kind {
	case lexer.Minus, lexer.Not:
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		op := ast.OpNeg
		if tok.Kind == lexer.Not {
			op = ast.OpNot
		}
		return &ast.UnOp{Op: op, Operand: operand}, nil
	case lexer.IntLiteral:
		return &ast.IntLiteral{Val: tok.Int}, nil
	case lexer.BoolLiteral:
		return &ast.BoolLiteral{Val: tok.Bool}, nil
	case lexer.Identifier:
		return &ast.Identifier{Name: tok.Text}, nil
	case lexer.LParen:
		e, err := p.parseExpr(1)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return e, nil
	case lexer.Input:
		if _, err := p.expect(lexer.LParen); err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return &ast.Input{}, nil
	default:
		return nil, p.errorf(tok, "unexpected %s in expression", tok)
	}
}

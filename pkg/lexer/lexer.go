// Package lexer turns Khwarizmi source text into tokens.
package lexer

import (
	"strconv"

	"github.com/wildfunctions/khwarizmi/pkg/diag"
)

var twoCharOps = map[string]Kind{
	"==": Eq,
	"!=": Neq,
	"<=": Lte,
	">=": Gte,
	"&&": And,
	"||": Or,
}

var oneCharOps = map[byte]Kind{
	'=': Assign,
	'!': Not,
	'<': Lt,
	'>': Gt,
	'+': Plus,
	'-': Minus,
	'*': Mult,
	'/': Div,
	'(': LParen,
	')': RParen,
	',': Comma,
}

// Lexer produces tokens on demand.
type Lexer struct {
	src  string
	pos  int
	line int
	col  int
}

// New returns a lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Tokenize lexes the whole input, ending with an EOF token.
func Tokenize(src string) ([]Token, error) {
	lx := New(src)
	var toks []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

func (lx *Lexer) advance(n int) {
	lx.pos += n
	lx.col += n
}

// Next returns the next token.
func (lx *Lexer) Next() (Token, error) {
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		line, col := lx.line, lx.col

		switch {
		case c == '\n':
			lx.pos++
			lx.line++
			lx.col = 1
			return Token{Kind: Newline, Text: "\n", Line: line, Col: col}, nil

		case c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v':
			lx.advance(1)
			continue

		case c == '/' && lx.peek(1) == '/':
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
				lx.advance(1)
			}
			continue

		case isDigit(c):
			start := lx.pos
			for lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
				lx.advance(1)
			}
			text := lx.src[start:lx.pos]
			n, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return Token{}, diag.At(diag.LexicalError, line, col, "integer literal %s out of range", text)
			}
			return Token{Kind: IntLiteral, Text: text, Int: n, Line: line, Col: col}, nil

		case isIdentStart(c):
			start := lx.pos
			for lx.pos < len(lx.src) && isIdentPart(lx.src[lx.pos]) {
				lx.advance(1)
			}
			text := lx.src[start:lx.pos]
			tok := Token{Kind: Identifier, Text: text, Line: line, Col: col}
			if k, ok := keywords[text]; ok {
				tok.Kind = k
				tok.Bool = text == "true"
			}
			return tok, nil
		}

		if lx.pos+1 < len(lx.src) {
			if k, ok := twoCharOps[lx.src[lx.pos:lx.pos+2]]; ok {
				text := lx.src[lx.pos : lx.pos+2]
				lx.advance(2)
				return Token{Kind: k, Text: text, Line: line, Col: col}, nil
			}
		}
		if k, ok := oneCharOps[c]; ok {
			lx.advance(1)
			return Token{Kind: k, Text: string(c), Line: line, Col: col}, nil
		}
		return Token{}, diag.At(diag.LexicalError, line, col, "unexpected character %q", c)
	}
	return Token{Kind: EOF, Line: lx.line, Col: lx.col}, nil
}

func (lx *Lexer) peek(off int) byte {
	if lx.pos+off < len(lx.src) {
		return lx.src[lx.pos+off]
	}
	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

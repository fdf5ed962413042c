package lexer

import "fmt"

// Kind identifies a token type.
type Kind int

const (
	EOF Kind = iota
	Newline
	IntLiteral
	BoolLiteral
	Identifier

	Begin
	End
	TypeInt
	TypeBool
	TypeEq
	If
	Elif
	Else
	While
	Print
	Show
	Solve
	Input

	Assign // =
	Eq     // ==
	Neq    // !=
	Lt
	Gt
	Lte
	Gte
	And
	Or
	Not
	Plus
	Minus
	Mult
	Div
	LParen
	RParen
	Comma
)

var kindNames = map[Kind]string{
	EOF:         "EOF",
	Newline:     "NEWLINE",
	IntLiteral:  "INT_LITERAL",
	BoolLiteral: "BOOL_LITERAL",
	Identifier:  "IDENTIFIER",
	Begin:       "BEGIN",
	End:         "END",
	TypeInt:     "int",
	TypeBool:    "bool",
	TypeEq:      "eq",
	If:          "if",
	Elif:        "elif",
	Else:        "else",
	While:       "while",
	Print:       "print",
	Show:        "show",
	Solve:       "solve",
	Input:       "input",
	Assign:      "=",
	Eq:          "==",
	Neq:         "!=",
	Lt:          "<",
	Gt:          ">",
	Lte:         "<=",
	Gte:         ">=",
	And:         "&&",
	Or:          "||",
	Not:         "!",
	Plus:        "+",
	Minus:       "-",
	Mult:        "*",
	Div:         "/",
	LParen:      "(",
	RParen:      ")",
	Comma:       ",",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var keywords = map[string]Kind{
	"BEGIN": Begin,
	"END":   End,
	"int":   TypeInt,
	"bool":  TypeBool,
	"eq":    TypeEq,
	"if":    If,
	"elif":  Elif,
	"else":  Else,
	"while": While,
	"print": Print,
	"show":  Show,
	"solve": Solve,
	"input": Input,
	"true":  BoolLiteral,
	"false": BoolLiteral,
}

// Token is one lexical unit with its 1-based source position.
type Token struct {
	Kind Kind
	Text string
	Int  int64
	Bool bool
	Line int
	Col  int
}

func (t Token) String() string {
	switch t.Kind {
	case IntLiteral, BoolLiteral, Identifier:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}

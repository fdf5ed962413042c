// Package ast defines the Khwarizmi syntax tree. The node set is closed: every
// kind is listed in Visitor, and operations over the tree are written as
// Visitor implementations so that a new kind cannot be added without updating
// each of them.
package ast

// Node is the interface for all syntax tree nodes.
// Nodes are never mutated after construction.
type Node interface {
	String() string
	Clone() Node
	node()
}

// DeclType is a declared variable type.
type DeclType int

const (
	TypeInt DeclType = iota
	TypeBool
	TypeEq
)

var declTypeNames = map[DeclType]string{
	TypeInt:  "int",
	TypeBool: "bool",
	TypeEq:   "eq",
}

func (t DeclType) String() string {
	if s, ok := declTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

// UnaryOp identifies a unary operation.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpNot
)

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpAnd
	OpOr
	OpEq
	OpNeq
	OpLt
	OpGt
	OpLte
	OpGte
)

// IsArithmetic reports whether op is one of + - * /.
func (op BinaryOp) IsArithmetic() bool {
	return op >= OpAdd && op <= OpDiv
}

// IsLogical reports whether op is && or ||.
func (op BinaryOp) IsLogical() bool {
	return op == OpAnd || op == OpOr
}

// IsComparison reports whether op is a relational or equality operator.
func (op BinaryOp) IsComparison() bool {
	return op >= OpEq && op <= OpGte
}

// IntLiteral is an integer constant.
type IntLiteral struct {
	Val int64
}

// BoolLiteral is a boolean constant.
type BoolLiteral struct {
	Val bool
}

// Identifier is a reference to a named binding.
type Identifier struct {
	Name string
}

// BinOp applies a binary operation to two child expressions.
type BinOp struct {
	Op          BinaryOp
	Left, Right Node
}

// UnOp applies a unary operation to a child expression.
type UnOp struct {
	Op      UnaryOp
	Operand Node
}

// Equation marks an expression that is kept unevaluated.
type Equation struct {
	Expr Node
}

// Input reads one integer from the program's input.
type Input struct{}

// VarDec declares a variable. Init is nil when there is no initializer.
type VarDec struct {
	Type DeclType
	Name string
	Init Node
}

// Assignment stores the value of Expr into an existing binding.
type Assignment struct {
	Name string
	Expr Node
}

// Block is a sequence of statements.
type Block struct {
	Stmts []Node
}

// Elif is one "elif cond BEGIN ... END" clause of an If.
type Elif struct {
	Cond Node
	Body *Block
}

// If is a conditional with optional elif clauses and else block.
type If struct {
	Cond  Node
	Then  *Block
	Elifs []Elif
	Else  *Block
}

// While repeats Body while Cond evaluates to true.
type While struct {
	Cond Node
	Body *Block
}

// Program is the root of a parsed source file.
type Program struct {
	Body *Block
}

// PrintCmd is print(args).
type PrintCmd struct {
	Args *ArgumentList
}

// ShowCmd is show(args).
type ShowCmd struct {
	Args *ArgumentList
}

// SolveCmd is solve(args).
type SolveCmd struct {
	Args *ArgumentList
}

// ArgumentList holds the arguments of a command.
type ArgumentList struct {
	Exprs []Node
}

func (*IntLiteral) node()   {}
func (*BoolLiteral) node()  {}
func (*Identifier) node()   {}
func (*BinOp) node()        {}
func (*UnOp) node()         {}
func (*Equation) node()     {}
func (*Input) node()        {}
func (*VarDec) node()       {}
func (*Assignment) node()   {}
func (*Block) node()        {}
func (*If) node()           {}
func (*While) node()        {}
func (*Program) node()      {}
func (*PrintCmd) node()     {}
func (*ShowCmd) node()      {}
func (*SolveCmd) node()     {}
func (*ArgumentList) node() {}

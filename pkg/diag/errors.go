// Package diag defines the error kinds reported by the lexer, parser and
// evaluator. Every failure surfaced to the program root is a *Error.
package diag

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	Unknown Kind = iota
	LexicalError
	SyntaxError
	DuplicateNameError
	UnboundNameError
	TypeMismatchError
	OperatorTypeError
	NonBooleanConditionError
	DivisionByZeroError
	UnsupportedSubstitutionError
	UncomparableSymbolicError
	TooManyFreeVariablesError
	EndOfInputError
)

var kindNames = map[Kind]string{
	Unknown:                      "Error",
	LexicalError:                 "LexicalError",
	SyntaxError:                  "SyntaxError",
	DuplicateNameError:           "DuplicateNameError",
	UnboundNameError:             "UnboundNameError",
	TypeMismatchError:            "TypeMismatchError",
	OperatorTypeError:            "OperatorTypeError",
	NonBooleanConditionError:     "NonBooleanConditionError",
	DivisionByZeroError:          "DivisionByZeroError",
	UnsupportedSubstitutionError: "UnsupportedSubstitutionError",
	UncomparableSymbolicError:    "UncomparableSymbolicError",
	TooManyFreeVariablesError:    "TooManyFreeVariablesError",
	EndOfInputError:              "EndOfInputError",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a classified failure. Line and Col are set only for lexical and
// syntax errors; zero means unknown.
type Error struct {
	Kind Kind
	Msg  string
	Line int
	Col  int
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d, column %d: %s", e.Kind, e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Errorf builds an *Error of the given kind.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// At builds a positioned *Error.
func At(kind Kind, line, col int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Line: line, Col: col}
}

// KindOf returns the Kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

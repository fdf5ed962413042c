package diag

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := Errorf(UnboundNameError, "variable %q is not declared", "x")
	assert.Equal(t, `UnboundNameError: variable "x" is not declared`, err.Error())

	pos := At(SyntaxError, 3, 7, "expected %s", "END")
	assert.Equal(t, "SyntaxError: line 3, column 7: expected END", pos.Error())
}

func TestKindThroughWrapping(t *testing.T) {
	base := Errorf(DivisionByZeroError, "division by zero")

	assert.Equal(t, DivisionByZeroError, KindOf(base))
	assert.True(t, Is(fmt.Errorf("run: %w", base), DivisionByZeroError))
	assert.True(t, Is(errors.Wrap(base, "evaluate"), DivisionByZeroError))
	assert.False(t, Is(base, TypeMismatchError))
	assert.False(t, Is(nil, DivisionByZeroError))
	assert.Equal(t, Unknown, KindOf(fmt.Errorf("plain")))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "TooManyFreeVariablesError", TooManyFreeVariablesError.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

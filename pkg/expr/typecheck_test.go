package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWellTypedAcceptsMixedNumeric(t *testing.T) {
	e := NewComparison(Gt, NewLiteral(int64(1), Int64), NewLiteral(1.5, Float64))
	assert.True(t, IsWellTyped(e))
	assert.False(t, IsStrictlyTyped(e))
}

func TestIsWellTypedRejectsLogicalOnNonBool(t *testing.T) {
	bad := NewAnd(NewLiteral(int64(1), Int64), NewLiteral(true, Bool))
	assert.False(t, IsWellTyped(bad))
}

func TestIsStrictlyTypedRequiresExactMatch(t *testing.T) {
	same := NewComparison(Eq, NewLiteral(int64(1), Int64), NewLiteral(int64(2), Int64))
	assert.True(t, IsStrictlyTyped(same))
}

func TestIsWellTypedUnknownFails(t *testing.T) {
	unresolved := NewAttributeRef(1, "x", Unknown, true)
	assert.False(t, IsWellTyped(unresolved))
}

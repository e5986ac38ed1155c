package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameUnwrapsAlias(t *testing.T) {
	a := NewAttributeRef(1, "x", Int64, false)
	aliased := NewAlias(10, "y", a)
	assert.True(t, Same(a, aliased))
}

func TestSameComparesAttributeRefsByID(t *testing.T) {
	a := NewAttributeRef(1, "x", Int64, false)
	b := NewAttributeRef(1, "x_renamed", Int64, false)
	assert.True(t, Same(a, b))

	c := NewAttributeRef(2, "x", Int64, false)
	assert.False(t, Same(a, c))
}

func TestSameStructuralForCompoundExpressions(t *testing.T) {
	left := NewComparison(Gt, NewAttributeRef(1, "a", Int64, false), NewLiteral(int64(1), Int64))
	right := NewComparison(Gt, NewAttributeRef(1, "a", Int64, false), NewLiteral(int64(1), Int64))
	assert.True(t, Same(left, right))

	different := NewComparison(Gt, NewAttributeRef(1, "a", Int64, false), NewLiteral(int64(2), Int64))
	assert.False(t, Same(left, different))
}

func TestSameGeneratedAliasUnwraps(t *testing.T) {
	a := NewAttributeRef(1, "x", Int64, false)
	gen := NewGeneratedAlias(11, "_gen", a)
	assert.True(t, Same(a, gen))
}

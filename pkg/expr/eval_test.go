package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateArithmetic(t *testing.T) {
	e := NewArithmetic(Add, NewLiteral(int64(2), Int64), NewLiteral(int64(3), Int64))
	val, typ, err := Evaluate(e)
	require.NoError(t, err)
	assert.Equal(t, int64(5), val)
	assert.Equal(t, Int64, typ)
}

func TestEvaluateDivisionByZeroIsNull(t *testing.T) {
	e := NewArithmetic(Div, NewLiteral(int64(1), Int64), NewLiteral(int64(0), Int64))
	val, _, err := Evaluate(e)
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestEvaluateComparison(t *testing.T) {
	e := NewComparison(Gt, NewLiteral(int64(5), Int64), NewLiteral(int64(3), Int64))
	val, typ, err := Evaluate(e)
	require.NoError(t, err)
	assert.Equal(t, true, val)
	assert.Equal(t, Bool, typ)
}

func TestEvaluateAndThreeValued(t *testing.T) {
	falseAndNull := NewAnd(NewLiteral(false, Bool), NewLiteral(nil, Bool))
	val, _, err := Evaluate(falseAndNull)
	require.NoError(t, err)
	assert.Equal(t, false, val)

	trueAndNull := NewAnd(NewLiteral(true, Bool), NewLiteral(nil, Bool))
	val, _, err = Evaluate(trueAndNull)
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestEvaluateOrThreeValued(t *testing.T) {
	trueOrNull := NewOr(NewLiteral(true, Bool), NewLiteral(nil, Bool))
	val, _, err := Evaluate(trueOrNull)
	require.NoError(t, err)
	assert.Equal(t, true, val)

	falseOrNull := NewOr(NewLiteral(false, Bool), NewLiteral(nil, Bool))
	val, _, err = Evaluate(falseOrNull)
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestEvaluateCoalesceReturnsFirstNonNull(t *testing.T) {
	c := NewCoalesce(NewLiteral(nil, Int64), NewLiteral(int64(7), Int64), NewLiteral(int64(9), Int64))
	val, _, err := Evaluate(c)
	require.NoError(t, err)
	assert.Equal(t, int64(7), val)
}

func TestEvaluateCoalesceAllNull(t *testing.T) {
	c := NewCoalesce(NewLiteral(nil, Int64), NewLiteral(nil, Int64))
	val, _, err := Evaluate(c)
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestEvaluateCastIntToFloat(t *testing.T) {
	c := NewCast(NewLiteral(int64(4), Int64), Float64)
	val, typ, err := Evaluate(c)
	require.NoError(t, err)
	assert.Equal(t, float64(4), val)
	assert.Equal(t, Float64, typ)
}

func TestEvaluateNonFoldableErrors(t *testing.T) {
	_, _, err := Evaluate(NewAttributeRef(1, "x", Int64, false))
	assert.Error(t, err)
}

func TestEvaluateIsNull(t *testing.T) {
	val, _, err := Evaluate(NewIsNull(NewLiteral(nil, Int64)))
	require.NoError(t, err)
	assert.Equal(t, true, val)

	val, _, err = Evaluate(NewIsNotNull(NewLiteral(int64(1), Int64)))
	require.NoError(t, err)
	assert.Equal(t, true, val)
}

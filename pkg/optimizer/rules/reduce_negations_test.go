package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

func TestReduceNegationsDoubleNegation(t *testing.T) {
	rel := relWithCol(1, "a", expr.Bool)
	f := plan.NewFilter(rel, expr.NewNot(expr.NewNot(rel.Attrs[0])))

	out, changed, err := NewReduceNegations().Apply(f)
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, expr.Expression(rel.Attrs[0]), out.(*plan.Filter).Condition)
}

func TestReduceNegationsDeMorganAnd(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	a := expr.NewComparison(expr.Gt, rel.Attrs[0], expr.NewLiteral(int64(0), expr.Int64))
	b := expr.NewComparison(expr.Lt, rel.Attrs[0], expr.NewLiteral(int64(10), expr.Int64))
	f := plan.NewFilter(rel, expr.NewNot(expr.NewAnd(a, b)))

	out, changed, err := NewReduceNegations().Apply(f)
	require.NoError(t, err)
	require.True(t, changed)

	or := out.(*plan.Filter).Condition.(*expr.Or)
	left := or.Left.(*expr.Not)
	right := or.Right.(*expr.Not)
	assert.Equal(t, expr.Expression(a), left.Child)
	assert.Equal(t, expr.Expression(b), right.Child)
}

func TestReduceNegationsDeMorganOr(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	a := expr.NewComparison(expr.Gt, rel.Attrs[0], expr.NewLiteral(int64(0), expr.Int64))
	b := expr.NewComparison(expr.Lt, rel.Attrs[0], expr.NewLiteral(int64(10), expr.Int64))
	f := plan.NewFilter(rel, expr.NewNot(expr.NewOr(a, b)))

	out, changed, err := NewReduceNegations().Apply(f)
	require.NoError(t, err)
	require.True(t, changed)
	_, ok := out.(*plan.Filter).Condition.(*expr.And)
	assert.True(t, ok)
}

func TestReduceNegationsComparison(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	cmp := expr.NewComparison(expr.Gt, rel.Attrs[0], expr.NewLiteral(int64(0), expr.Int64))
	f := plan.NewFilter(rel, expr.NewNot(cmp))

	out, changed, err := NewReduceNegations().Apply(f)
	require.NoError(t, err)
	require.True(t, changed)

	got := out.(*plan.Filter).Condition.(*expr.Comparison)
	assert.Equal(t, expr.Le, got.Op)
}

func TestReduceNegationsSwapsIfBranchesOnNegatedCondition(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	flag := expr.NewAttributeRef(2, "flag", expr.Bool, false)
	thenVal := expr.NewLiteral(int64(1), expr.Int64)
	elseVal := expr.NewLiteral(int64(2), expr.Int64)
	ifExpr := expr.NewIf(expr.NewNot(flag), thenVal, elseVal)
	proj := plan.NewProject(rel, expr.NewAlias(3, "x", ifExpr))

	out, changed, err := NewReduceNegations().Apply(proj)
	require.NoError(t, err)
	require.True(t, changed)

	alias := out.(*plan.Project).Exprs[0].(*expr.Alias)
	got := alias.Child.(*expr.If)
	assert.Equal(t, expr.Expression(flag), got.Cond)
	assert.Equal(t, expr.Expression(elseVal), got.Then)
	assert.Equal(t, expr.Expression(thenVal), got.Else)
}

func TestReduceNegationsNotIsNull(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	f := plan.NewFilter(rel, expr.NewNot(expr.NewIsNull(rel.Attrs[0])))

	out, changed, err := NewReduceNegations().Apply(f)
	require.NoError(t, err)
	require.True(t, changed)
	_, ok := out.(*plan.Filter).Condition.(*expr.IsNotNull)
	assert.True(t, ok)
}

func TestReduceNegationsNotIsNotNull(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	f := plan.NewFilter(rel, expr.NewNot(expr.NewIsNotNull(rel.Attrs[0])))

	out, changed, err := NewReduceNegations().Apply(f)
	require.NoError(t, err)
	require.True(t, changed)
	_, ok := out.(*plan.Filter).Condition.(*expr.IsNull)
	assert.True(t, ok)
}

func TestReduceNegationsAndWithNegatedSameOperandIsFalse(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	cond := expr.NewComparison(expr.Gt, rel.Attrs[0], expr.NewLiteral(int64(0), expr.Int64))
	f := plan.NewFilter(rel, expr.NewAnd(cond, expr.NewNot(cond)))

	out, changed, err := NewReduceNegations().Apply(f)
	require.NoError(t, err)
	require.True(t, changed)
	lit := out.(*plan.Filter).Condition.(*expr.Literal)
	assert.Equal(t, false, lit.Val)
}

func TestReduceNegationsOrWithNegatedSameOperandIsTrue(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	cond := expr.NewComparison(expr.Gt, rel.Attrs[0], expr.NewLiteral(int64(0), expr.Int64))
	f := plan.NewFilter(rel, expr.NewOr(cond, expr.NewNot(cond)))

	out, changed, err := NewReduceNegations().Apply(f)
	require.NoError(t, err)
	require.True(t, changed)
	lit := out.(*plan.Filter).Condition.(*expr.Literal)
	assert.Equal(t, true, lit.Val)
}

func TestReduceNegationsNoOpOnLeaf(t *testing.T) {
	rel := relWithCol(1, "a", expr.Bool)
	f := plan.NewFilter(rel, rel.Attrs[0])

	_, changed, err := NewReduceNegations().Apply(f)
	require.NoError(t, err)
	assert.False(t, changed)
}

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

func TestCNFConversionDistributesOrOverAnd(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	a := expr.NewComparison(expr.Gt, rel.Attrs[0], expr.NewLiteral(int64(0), expr.Int64))
	b := expr.NewComparison(expr.Lt, rel.Attrs[0], expr.NewLiteral(int64(10), expr.Int64))
	c := expr.NewComparison(expr.Eq, rel.Attrs[0], expr.NewLiteral(int64(5), expr.Int64))

	// a OR (b AND c)  ->  (a OR b) AND (a OR c)
	f := plan.NewFilter(rel, expr.NewOr(a, expr.NewAnd(b, c)))

	out, changed, err := NewCNFConversion().Apply(f)
	require.NoError(t, err)
	require.True(t, changed)

	and := out.(*plan.Filter).Condition.(*expr.And)
	_, leftIsOr := and.Left.(*expr.Or)
	_, rightIsOr := and.Right.(*expr.Or)
	assert.True(t, leftIsOr)
	assert.True(t, rightIsOr)
}

func TestCNFConversionNoOpWhenAlreadyCNF(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	a := expr.NewComparison(expr.Gt, rel.Attrs[0], expr.NewLiteral(int64(0), expr.Int64))
	b := expr.NewComparison(expr.Lt, rel.Attrs[0], expr.NewLiteral(int64(10), expr.Int64))
	f := plan.NewFilter(rel, expr.NewAnd(a, b))

	_, changed, err := NewCNFConversion().Apply(f)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestCNFConversionSkipsNonBoolExpressions(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	p := plan.NewProject(rel, rel.Attrs[0])

	_, changed, err := NewCNFConversion().Apply(p)
	require.NoError(t, err)
	assert.False(t, changed)
}

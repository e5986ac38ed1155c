package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

func relWithCol(id expr.ID, name string, typ expr.DataType) *plan.LocalRelation {
	return plan.NewLocalRelation("t", expr.NewAttributeRef(id, name, typ, false))
}

func TestFoldConstantsCollapsesArithmetic(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	condition := expr.NewComparison(expr.Gt, rel.Attrs[0],
		expr.NewArithmetic(expr.Add, expr.NewLiteral(int64(2), expr.Int64), expr.NewLiteral(int64(3), expr.Int64)))
	f := plan.NewFilter(rel, condition)

	out, changed, err := NewFoldConstants().Apply(f)
	require.NoError(t, err)
	require.True(t, changed)

	got := out.(*plan.Filter).Condition.(*expr.Comparison)
	lit := got.Right.(*expr.Literal)
	assert.Equal(t, int64(5), lit.Val)
}

func TestFoldConstantsLeavesAttributeRefsAlone(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	f := plan.NewFilter(rel, expr.NewComparison(expr.Gt, rel.Attrs[0], expr.NewLiteral(int64(0), expr.Int64)))

	out, changed, err := NewFoldConstants().Apply(f)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Same(t, f, out)
}

func TestFoldConstantsDoesNotCollapseAliasIdentity(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	alias := expr.NewAlias(2, "two", expr.NewArithmetic(expr.Add, expr.NewLiteral(int64(1), expr.Int64), expr.NewLiteral(int64(1), expr.Int64)))
	p := plan.NewProject(rel, alias)

	out, changed, err := NewFoldConstants().Apply(p)
	require.NoError(t, err)
	require.True(t, changed)

	proj := out.(*plan.Project)
	gotAlias, ok := proj.Exprs[0].(*expr.Alias)
	require.True(t, ok)
	assert.Equal(t, expr.ID(2), gotAlias.ID)
	lit, ok := gotAlias.Child.(*expr.Literal)
	require.True(t, ok)
	assert.Equal(t, int64(2), lit.Val)
}

func TestFoldConstantsIsIdempotent(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	f := plan.NewFilter(rel, expr.NewComparison(expr.Gt, rel.Attrs[0],
		expr.NewArithmetic(expr.Add, expr.NewLiteral(int64(2), expr.Int64), expr.NewLiteral(int64(3), expr.Int64))))

	rule := NewFoldConstants()
	out1, _, err := rule.Apply(f)
	require.NoError(t, err)
	out2, changed2, err := rule.Apply(out1)
	require.NoError(t, err)
	assert.False(t, changed2)
	assert.Same(t, out1, out2)
}

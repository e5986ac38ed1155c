package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

func TestReduceCastsRemovesNoOp(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	f := plan.NewFilter(rel, expr.NewComparison(expr.Gt, expr.NewCast(rel.Attrs[0], expr.Int64), expr.NewLiteral(int64(0), expr.Int64)))

	out, changed, err := NewReduceCasts().Apply(f)
	require.NoError(t, err)
	require.True(t, changed)

	got := out.(*plan.Filter).Condition.(*expr.Comparison)
	assert.Equal(t, expr.Expression(rel.Attrs[0]), got.Left)
}

func TestReduceCastsCollapsesNestedWhenStrictlyTyped(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	nested := expr.NewCast(expr.NewCast(rel.Attrs[0], expr.Float64), expr.String)
	p := plan.NewProject(rel, expr.NewAlias(2, "s", nested))

	out, changed, err := NewReduceCasts().Apply(p)
	require.NoError(t, err)
	require.True(t, changed)

	alias := out.(*plan.Project).Exprs[0].(*expr.Alias)
	cast := alias.Child.(*expr.Cast)
	assert.Equal(t, expr.String, cast.Target)
	assert.Equal(t, expr.Expression(rel.Attrs[0]), cast.Child)
}

func TestReduceCastsNoOpWhenNothingToDo(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	f := plan.NewFilter(rel, expr.NewComparison(expr.Gt, rel.Attrs[0], expr.NewLiteral(int64(0), expr.Int64)))

	_, changed, err := NewReduceCasts().Apply(f)
	require.NoError(t, err)
	assert.False(t, changed)
}

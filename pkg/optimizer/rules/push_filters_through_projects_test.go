package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

func TestPushFiltersThroughProjectsInlinesAlias(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	alias := expr.NewAlias(2, "b", expr.NewArithmetic(expr.Mul, rel.Attrs[0], expr.NewLiteral(int64(2), expr.Int64)))
	proj := plan.NewProject(rel, alias)
	bRef := expr.NewAttributeRef(2, "b", expr.Int64, false)
	f := plan.NewFilter(proj, expr.NewComparison(expr.Gt, bRef, expr.NewLiteral(int64(10), expr.Int64)))

	out, changed, err := NewPushFiltersThroughProjects().Apply(f)
	require.NoError(t, err)
	require.True(t, changed)

	outerProj := out.(*plan.Project)
	pushedFilter := outerProj.Child.(*plan.Filter)
	assert.Same(t, rel, pushedFilter.Child)
	cmp := pushedFilter.Condition.(*expr.Comparison)
	_, ok := cmp.Left.(*expr.Arithmetic)
	assert.True(t, ok)
}

func TestPushFiltersThroughProjectsPreservesSchema(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	alias := expr.NewAlias(2, "b", expr.NewArithmetic(expr.Mul, rel.Attrs[0], expr.NewLiteral(int64(2), expr.Int64)))
	proj := plan.NewProject(rel, alias)
	bRef := expr.NewAttributeRef(2, "b", expr.Int64, false)
	f := plan.NewFilter(proj, expr.NewComparison(expr.Gt, bRef, expr.NewLiteral(int64(10), expr.Int64)))

	out, _, err := NewPushFiltersThroughProjects().Apply(f)
	require.NoError(t, err)
	assert.True(t, plan.SchemaEqual(f, out))
}

func TestPushFiltersThroughProjectsNoOpWithoutProject(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	f := plan.NewFilter(rel, expr.NewComparison(expr.Gt, rel.Attrs[0], expr.NewLiteral(int64(0), expr.Int64)))

	_, changed, err := NewPushFiltersThroughProjects().Apply(f)
	require.NoError(t, err)
	assert.False(t, changed)
}

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

func TestEliminateSubqueriesDropsWrapper(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	sub := plan.NewSubquery("s", rel)
	f := plan.NewFilter(sub, expr.NewComparison(expr.Gt, rel.Attrs[0], expr.NewLiteral(int64(0), expr.Int64)))

	out, changed, err := NewEliminateSubqueries().Apply(f)
	require.NoError(t, err)
	require.True(t, changed)
	assert.Same(t, rel, out.(*plan.Filter).Child)
}

func TestEliminateSubqueriesPreservesSchema(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	sub := plan.NewSubquery("s", rel)

	out, _, err := NewEliminateSubqueries().Apply(sub)
	require.NoError(t, err)
	assert.True(t, plan.SchemaEqual(sub, out))
}

func TestEliminateSubqueriesNoOpWithoutWrapper(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	_, changed, err := NewEliminateSubqueries().Apply(rel)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestEliminateSubqueriesClearsQualifier(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	sub := plan.NewSubquery("s", rel)
	qualified := sub.Output()[0].(*expr.AttributeRef)
	require.Equal(t, "s", qualified.Qualifier)

	f := plan.NewFilter(sub, expr.NewComparison(expr.Gt, qualified, expr.NewLiteral(int64(0), expr.Int64)))

	out, changed, err := NewEliminateSubqueries().Apply(f)
	require.NoError(t, err)
	require.True(t, changed)

	got := out.(*plan.Filter).Condition.(*expr.Comparison).Left.(*expr.AttributeRef)
	assert.Empty(t, got.Qualifier)
	assert.Equal(t, qualified.ID, got.ID)
}

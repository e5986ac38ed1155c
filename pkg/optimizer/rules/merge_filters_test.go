package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

func TestMergeFiltersCombinesStackedFilters(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	inner := plan.NewFilter(rel, expr.NewComparison(expr.Gt, rel.Attrs[0], expr.NewLiteral(int64(0), expr.Int64)))
	outer := plan.NewFilter(inner, expr.NewComparison(expr.Lt, rel.Attrs[0], expr.NewLiteral(int64(100), expr.Int64)))

	out, changed, err := NewMergeFilters().Apply(outer)
	require.NoError(t, err)
	require.True(t, changed)

	merged := out.(*plan.Filter)
	assert.Same(t, rel, merged.Child)
	and := merged.Condition.(*expr.And)
	assert.NotNil(t, and)
}

func TestMergeFiltersNoOpOnSingleFilter(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	f := plan.NewFilter(rel, expr.NewComparison(expr.Gt, rel.Attrs[0], expr.NewLiteral(int64(0), expr.Int64)))

	_, changed, err := NewMergeFilters().Apply(f)
	require.NoError(t, err)
	assert.False(t, changed)
}

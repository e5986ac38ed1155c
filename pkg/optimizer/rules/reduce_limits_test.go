package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

func TestReduceLimitsMergesNestedLimits(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	inner := plan.NewLimit(rel, 20, 5)
	outer := plan.NewLimit(inner, 10, 0)

	out, changed, err := NewReduceLimits().Apply(outer)
	require.NoError(t, err)
	require.True(t, changed)

	merged := out.(*plan.Limit)
	assert.Same(t, rel, merged.Child)
	assert.Equal(t, int64(10), merged.Count)
	assert.Equal(t, int64(5), merged.Offset)
}

func TestReduceLimitsClampsToInnerAvailability(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	inner := plan.NewLimit(rel, 5, 0)
	outer := plan.NewLimit(inner, 100, 2)

	out, changed, err := NewReduceLimits().Apply(outer)
	require.NoError(t, err)
	require.True(t, changed)

	merged := out.(*plan.Limit)
	assert.Equal(t, int64(3), merged.Count)
	assert.Equal(t, int64(2), merged.Offset)
}

func TestReduceLimitsNoOpOnSingleLimit(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	l := plan.NewLimit(rel, 10, 0)

	_, changed, err := NewReduceLimits().Apply(l)
	require.NoError(t, err)
	assert.False(t, changed)
}

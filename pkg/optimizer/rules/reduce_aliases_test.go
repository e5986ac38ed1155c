package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

func TestReduceAliasesIdentityRenameCollapses(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	alias := expr.NewAlias(1, "a", rel.Attrs[0])
	p := plan.NewProject(rel, alias)

	out, changed, err := NewReduceAliases().Apply(p)
	require.NoError(t, err)
	require.True(t, changed)

	_, ok := out.(*plan.Project).Exprs[0].(*expr.AttributeRef)
	assert.True(t, ok)
}

func TestReduceAliasesKeepsRenameWithDifferentID(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	alias := expr.NewAlias(2, "b", rel.Attrs[0])
	p := plan.NewProject(rel, alias)

	_, changed, err := NewReduceAliases().Apply(p)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestReduceAliasesCollapsesChain(t *testing.T) {
	rel := relWithCol(1, "a", expr.Int64)
	inner := expr.NewAlias(2, "b", rel.Attrs[0])
	outer := expr.NewAlias(3, "c", inner)
	p := plan.NewProject(rel, outer)

	out, changed, err := NewReduceAliases().Apply(p)
	require.NoError(t, err)
	require.True(t, changed)

	got := out.(*plan.Project).Exprs[0].(*expr.Alias)
	assert.Equal(t, expr.ID(3), got.ID)
	assert.Equal(t, "c", got.Name)
	assert.Equal(t, expr.Expression(rel.Attrs[0]), got.Child)
}

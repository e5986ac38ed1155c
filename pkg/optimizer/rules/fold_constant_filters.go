package rules

import (
	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

// FoldConstantFilters drops a Filter entirely when its (already folded)
// condition is the literal true, and collapses it to an empty LocalRelation
// when the condition is the literal false or null. It is not part of the
// default batch: a caller who wants a filter that always rejects every row
// turned into a concrete empty-relation marker opts in explicitly, since
// collapsing the plan shape this aggressively can surprise a caller relying
// on the Filter node still being present for display or EXPLAIN purposes.
type FoldConstantFilters struct{}

func NewFoldConstantFilters() FoldConstantFilters { return FoldConstantFilters{} }

func (FoldConstantFilters) Name() string { return "FoldConstantFilters" }

func (FoldConstantFilters) Apply(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
	changed := false
	out, err := plan.TransformUp(p, func(lp plan.LogicalPlan) (plan.LogicalPlan, error) {
		filter, ok := lp.(*plan.Filter)
		if !ok {
			return lp, nil
		}
		lit, ok := filter.Condition.(*expr.Literal)
		if !ok {
			return lp, nil
		}

		if lit.Val != nil && lit.Val.(bool) {
			changed = true
			return filter.Child, nil
		}

		changed = true
		output := filter.Output()
		attrs := make([]*expr.AttributeRef, len(output))
		for i, n := range output {
			attrs[i] = expr.NewAttributeRef(n.ExprID(), n.ExprName(), n.DataType(), n.IsNullable())
		}
		return plan.NewLocalRelation("__empty", attrs...), nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

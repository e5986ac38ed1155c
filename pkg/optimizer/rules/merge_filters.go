package rules

import (
	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

// MergeFilters combines two directly-stacked Filters into one, ANDing their
// conditions: Filter(Filter(x, c1), c2) -> Filter(x, c1 AND c2).
type MergeFilters struct{}

func NewMergeFilters() MergeFilters { return MergeFilters{} }

func (MergeFilters) Name() string { return "MergeFilters" }

func (MergeFilters) Apply(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
	changed := false
	out, err := plan.TransformUp(p, func(lp plan.LogicalPlan) (plan.LogicalPlan, error) {
		outer, ok := lp.(*plan.Filter)
		if !ok {
			return lp, nil
		}
		inner, ok := outer.Child.(*plan.Filter)
		if !ok {
			return lp, nil
		}
		changed = true
		return plan.NewFilter(inner.Child, expr.NewAnd(inner.Condition, outer.Condition)), nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

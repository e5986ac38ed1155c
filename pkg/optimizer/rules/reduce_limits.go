package rules

import "github.com/optiqdb/optiq/pkg/plan"

// ReduceLimits merges two directly-stacked Limits into one:
// Limit(Limit(x, c1, o1), c2, o2) -> Limit(x, c', o1+o2), where c' is the
// smaller of c2 and max(c1-o2, 0) — the inner limit can supply at most
// c1-o2 rows once o2 of them are skipped by the outer offset, and the outer
// count can never ask for more than c2 regardless.
type ReduceLimits struct{}

func NewReduceLimits() ReduceLimits { return ReduceLimits{} }

func (ReduceLimits) Name() string { return "ReduceLimits" }

func (ReduceLimits) Apply(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
	changed := false
	out, err := plan.TransformUp(p, func(lp plan.LogicalPlan) (plan.LogicalPlan, error) {
		outer, ok := lp.(*plan.Limit)
		if !ok {
			return lp, nil
		}
		inner, ok := outer.Child.(*plan.Limit)
		if !ok {
			return lp, nil
		}

		available := inner.Count - outer.Offset
		if available < 0 {
			available = 0
		}
		count := outer.Count
		if available < count {
			count = available
		}

		changed = true
		return plan.NewLimit(inner.Child, count, inner.Offset+outer.Offset), nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

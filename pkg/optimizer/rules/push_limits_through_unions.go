package rules

import "github.com/optiqdb/optiq/pkg/plan"

// PushLimitsThroughUnions pushes a copy of a Limit(count, offset=0) sitting
// above a Union down onto every branch, while keeping the original outer
// Limit in place: Limit(Union(b1, b2, ...), count, 0) ->
// Limit(Union(Limit(b1, count, 0), Limit(b2, count, 0), ...), count, 0). No
// branch can contribute more than count rows to a union capped at count, so
// each branch may stop producing rows once it has that many, without
// changing the final result. Only applies when Offset is zero: a non-zero
// offset means the first Offset rows of the *combined* union are skipped,
// and no per-branch count short of the full branch reliably preserves that
// once branch order and row counts vary.
type PushLimitsThroughUnions struct{}

func NewPushLimitsThroughUnions() PushLimitsThroughUnions { return PushLimitsThroughUnions{} }

func (PushLimitsThroughUnions) Name() string { return "PushLimitsThroughUnions" }

func (PushLimitsThroughUnions) Apply(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
	changed := false
	out, err := plan.TransformUp(p, func(lp plan.LogicalPlan) (plan.LogicalPlan, error) {
		limit, ok := lp.(*plan.Limit)
		if !ok || limit.Offset != 0 {
			return lp, nil
		}
		union, ok := limit.Child.(*plan.Union)
		if !ok {
			return lp, nil
		}

		alreadyPushed := true
		for _, b := range union.Branches {
			bl, ok := b.(*plan.Limit)
			if !ok || bl.Count != limit.Count || bl.Offset != 0 {
				alreadyPushed = false
				break
			}
		}
		if alreadyPushed {
			return lp, nil
		}

		newBranches := make([]plan.LogicalPlan, len(union.Branches))
		for i, b := range union.Branches {
			newBranches[i] = plan.NewLimit(b, limit.Count, 0)
		}

		changed = true
		return plan.NewLimit(plan.NewUnion(newBranches...), limit.Count, 0), nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

package rules

import "github.com/optiqdb/optiq/pkg/plan"

// PushProjectsThroughLimits moves a Project below a Limit it sits on top of:
// Project(Limit(x, count, offset), exprs) -> Limit(Project(x, exprs), count,
// offset). Limit's row cap is unaffected by which columns are present, so
// this is always safe, and lets a later pass apply
// PushFiltersThroughProjects or MergeProjects to x without Limit standing in
// the way.
type PushProjectsThroughLimits struct{}

func NewPushProjectsThroughLimits() PushProjectsThroughLimits {
	return PushProjectsThroughLimits{}
}

func (PushProjectsThroughLimits) Name() string { return "PushProjectsThroughLimits" }

func (PushProjectsThroughLimits) Apply(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
	changed := false
	out, err := plan.TransformUp(p, func(lp plan.LogicalPlan) (plan.LogicalPlan, error) {
		proj, ok := lp.(*plan.Project)
		if !ok {
			return lp, nil
		}
		limit, ok := proj.Child.(*plan.Limit)
		if !ok {
			return lp, nil
		}
		changed = true
		return plan.NewLimit(plan.NewProject(limit.Child, proj.Exprs...), limit.Count, limit.Offset), nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

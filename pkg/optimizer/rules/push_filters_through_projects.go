package rules

import "github.com/optiqdb/optiq/pkg/plan"

// PushFiltersThroughProjects moves a Filter below a Project it sits on top
// of, rewriting the filter condition in terms of the Project's input
// attributes: Filter(Project(x, exprs), cond) -> Project(Filter(x,
// cond-with-exprs-inlined), exprs). Filtering rows before evaluating every
// projected expression avoids computing projections for rows that will be
// discarded anyway.
type PushFiltersThroughProjects struct{}

func NewPushFiltersThroughProjects() PushFiltersThroughProjects {
	return PushFiltersThroughProjects{}
}

func (PushFiltersThroughProjects) Name() string { return "PushFiltersThroughProjects" }

func (PushFiltersThroughProjects) Apply(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
	changed := false
	out, err := plan.TransformUp(p, func(lp plan.LogicalPlan) (plan.LogicalPlan, error) {
		filter, ok := lp.(*plan.Filter)
		if !ok {
			return lp, nil
		}
		proj, ok := filter.Child.(*plan.Project)
		if !ok {
			return lp, nil
		}

		bindings := BindingsFromProject(proj)
		pushedCond, err := InlineAliases(filter.Condition, bindings)
		if err != nil {
			return nil, err
		}

		changed = true
		return plan.NewProject(plan.NewFilter(proj.Child, pushedCond), proj.Exprs...), nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

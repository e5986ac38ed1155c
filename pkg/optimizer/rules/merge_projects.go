package rules

import (
	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

// MergeProjects combines two directly-stacked Projects into one by inlining
// the inner Project's expressions into the outer's: Project(Project(x,
// inner), outer) -> Project(x, outer-with-inner-inlined). Only applies when
// every inner expression is pure, so inlining cannot duplicate a
// side-effecting or non-deterministic evaluation (this algebra has none
// today, but the guard documents the precondition the rule actually
// depends on rather than assuming it). It also drops a Project whose list
// is exactly its child's output (same IDs, same names, same order), since
// such a Project changes nothing about the plan it sits over.
type MergeProjects struct{}

func NewMergeProjects() MergeProjects { return MergeProjects{} }

func (MergeProjects) Name() string { return "MergeProjects" }

func (MergeProjects) Apply(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
	changed := false
	out, err := plan.TransformUp(p, func(lp plan.LogicalPlan) (plan.LogicalPlan, error) {
		outer, ok := lp.(*plan.Project)
		if !ok {
			return lp, nil
		}
		if isIdentityProjection(outer.Exprs, outer.Child.Output()) {
			changed = true
			return outer.Child, nil
		}

		inner, ok := outer.Child.(*plan.Project)
		if !ok {
			return lp, nil
		}
		for _, e := range inner.Exprs {
			if !e.IsPure() {
				return lp, nil
			}
		}

		bindings := BindingsFromProject(inner)
		newExprs := make([]expr.Named, len(outer.Exprs))
		for i, e := range outer.Exprs {
			inlined, err := InlineAliases(e, bindings)
			if err != nil {
				return nil, err
			}
			named, ok := inlined.(expr.Named)
			if !ok {
				return lp, nil
			}
			newExprs[i] = named
		}

		changed = true
		return plan.NewProject(inner.Child, newExprs...), nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

// isIdentityProjection reports whether list is exactly output, element for
// element: same ExprID and same display name in the same order. A Project
// with this list contributes nothing beyond what its child already exposes.
func isIdentityProjection(list []expr.Named, output []expr.Named) bool {
	if len(list) != len(output) {
		return false
	}
	for i, e := range list {
		if e.ExprID() != output[i].ExprID() || e.ExprName() != output[i].ExprName() {
			return false
		}
	}
	return true
}

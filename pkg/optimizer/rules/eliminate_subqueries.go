package rules

import (
	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

// EliminateSubqueries drops Subquery wrappers once their alias qualifier is
// no longer needed for name resolution, exposing the wrapped plan's
// attributes directly. This is the one rewrite in the default rule set that
// changes a node's display qualifier without changing any ExpressionID: once
// a Subquery node is removed, every AttributeRef that was resolved through
// its alias (expr.AttributeRef.Qualifier, stamped by plan.Subquery.Output)
// has that qualifier cleared, while keeping its ID.
type EliminateSubqueries struct{}

func NewEliminateSubqueries() EliminateSubqueries { return EliminateSubqueries{} }

func (EliminateSubqueries) Name() string { return "EliminateSubqueries" }

func (EliminateSubqueries) Apply(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
	changed := false
	out, err := plan.TransformUp(p, func(lp plan.LogicalPlan) (plan.LogicalPlan, error) {
		sub, ok := lp.(*plan.Subquery)
		if !ok {
			return lp, nil
		}
		changed = true
		return sub.Child, nil
	})
	if err != nil {
		return nil, false, err
	}
	if !changed {
		return out, false, nil
	}

	out, err = plan.TransformAllExpressions(out, func(e expr.Expression) (expr.Expression, error) {
		if ar, ok := e.(*expr.AttributeRef); ok && ar.Qualifier != "" {
			return ar.WithQualifier(""), nil
		}
		return e, nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

package rules

import (
	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

// reduceCastsStrict gates ReduceCasts' nested-cast collapse behind
// expr.IsStrictlyTyped rather than the looser IsWellTyped. The check is on
// the typing of the inner cast's operand only; whether t1 would have
// truncated or widened x's value in a way CAST(x AS t2) alone does not
// reproduce is not considered. Kept as a named constant, not inlined, so the
// alternative is a one-line change rather than a rewrite if a future caller
// needs the looser check.
const reduceCastsStrict = true

// ReduceCasts removes no-op casts (CAST(x AS t) where x is already t) and
// collapses nested casts CAST(CAST(x AS t1) AS t2) into CAST(x AS t2)
// whenever the inner cast passes the typing check selected by
// reduceCastsStrict; the value conversion t1 performs is not examined.
type ReduceCasts struct{}

func NewReduceCasts() ReduceCasts { return ReduceCasts{} }

func (ReduceCasts) Name() string { return "ReduceCasts" }

func (ReduceCasts) Apply(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
	changed := false
	out, err := plan.TransformAllExpressions(p, func(e expr.Expression) (expr.Expression, error) {
		cast, ok := e.(*expr.Cast)
		if !ok {
			return e, nil
		}

		if cast.Child.DataType() == cast.Target {
			changed = true
			return cast.Child, nil
		}

		inner, ok := cast.Child.(*expr.Cast)
		if !ok {
			return e, nil
		}

		typed := expr.IsWellTyped
		if reduceCastsStrict {
			typed = expr.IsStrictlyTyped
		}
		if !typed(inner) {
			return e, nil
		}
		changed = true
		return expr.NewCast(inner.Child, cast.Target), nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

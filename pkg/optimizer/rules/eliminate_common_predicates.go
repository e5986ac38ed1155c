package rules

import (
	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

// EliminateCommonPredicates removes duplicate conjuncts from a Filter or
// Join condition, comparing conjuncts with expr.Same so that an attribute
// referenced under two different display names (e.g. before and after
// EliminateSubqueries clears a qualifier) still dedupes correctly. It also
// simplifies two related redundancy shapes that can appear anywhere in an
// expression tree, not just at a container's top level:
//
//	a OR b, a same b          -> a
//	If(c, y, n), y same n     -> Coalesce(c, y)
//
// The If rewrite relies on pkg/expr's Coalesce evaluator running c's
// evaluation first and returning the first non-null argument, which is
// exactly If's own short-circuit contract.
type EliminateCommonPredicates struct{}

func NewEliminateCommonPredicates() EliminateCommonPredicates { return EliminateCommonPredicates{} }

func (EliminateCommonPredicates) Name() string { return "EliminateCommonPredicates" }

func (EliminateCommonPredicates) Apply(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
	changed := false

	out, err := plan.TransformAllExpressions(p, func(e expr.Expression) (expr.Expression, error) {
		switch v := e.(type) {
		case *expr.Or:
			if expr.Same(v.Left, v.Right) {
				changed = true
				return v.Left, nil
			}
		case *expr.If:
			if expr.Same(v.Then, v.Else) {
				changed = true
				return expr.NewCoalesce(v.Cond, v.Then), nil
			}
		}
		return e, nil
	})
	if err != nil {
		return nil, false, err
	}

	out, err = plan.TransformUp(out, func(lp plan.LogicalPlan) (plan.LogicalPlan, error) {
		ec, ok := lp.(plan.ExpressionContainer)
		if !ok {
			return lp, nil
		}
		exprs := ec.Expressions()
		if len(exprs) != 1 {
			return lp, nil
		}
		if exprs[0].DataType() != expr.Bool {
			return lp, nil
		}

		conjuncts := SplitConjunction(exprs[0])
		deduped := make([]expr.Expression, 0, len(conjuncts))
		for _, c := range conjuncts {
			dup := false
			for _, kept := range deduped {
				if expr.Same(c, kept) {
					dup = true
					break
				}
			}
			if !dup {
				deduped = append(deduped, c)
			}
		}
		if len(deduped) == len(conjuncts) {
			return lp, nil
		}

		changed = true
		return ec.WithExpressions([]expr.Expression{JoinConjunction(deduped)})
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

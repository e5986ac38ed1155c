package rules

import (
	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

// FoldLogicalPredicates simplifies AND/OR/If nodes that have a literal
// boolean test, independent of whether the other operand is foldable:
// AND(x, true) -> x, AND(x, false) -> false, OR(x, true) -> true,
// OR(x, false) -> x, If(true, t, f) -> t, If(false, t, f) -> f. This catches
// cases FoldConstants cannot, since x, t, or f itself may reference
// attributes and never become foldable on its own.
type FoldLogicalPredicates struct{}

func NewFoldLogicalPredicates() FoldLogicalPredicates { return FoldLogicalPredicates{} }

func (FoldLogicalPredicates) Name() string { return "FoldLogicalPredicates" }

func (FoldLogicalPredicates) Apply(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
	changed := false
	out, err := plan.TransformAllExpressions(p, func(e expr.Expression) (expr.Expression, error) {
		switch v := e.(type) {
		case *expr.And:
			if lit, ok := asBoolLiteral(v.Left); ok {
				changed = true
				if lit {
					return v.Right, nil
				}
				return expr.NewLiteral(false, expr.Bool), nil
			}
			if lit, ok := asBoolLiteral(v.Right); ok {
				changed = true
				if lit {
					return v.Left, nil
				}
				return expr.NewLiteral(false, expr.Bool), nil
			}
		case *expr.Or:
			if lit, ok := asBoolLiteral(v.Left); ok {
				changed = true
				if lit {
					return expr.NewLiteral(true, expr.Bool), nil
				}
				return v.Right, nil
			}
			if lit, ok := asBoolLiteral(v.Right); ok {
				changed = true
				if lit {
					return expr.NewLiteral(true, expr.Bool), nil
				}
				return v.Left, nil
			}
		case *expr.If:
			if lit, ok := asBoolLiteral(v.Cond); ok {
				changed = true
				if lit {
					return v.Then, nil
				}
				return v.Else, nil
			}
		}
		return e, nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

func asBoolLiteral(e expr.Expression) (bool, bool) {
	lit, ok := e.(*expr.Literal)
	if !ok || lit.Val == nil {
		return false, false
	}
	b, ok := lit.Val.(bool)
	return b, ok
}

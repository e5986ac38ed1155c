package rules

import (
	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

// ReduceNegations pushes NOT toward the leaves via De Morgan's laws and
// eliminates double negation, so later rules (CNFConversion,
// EliminateCommonPredicates) see predicates already in negation-normal
// form:
//
//	NOT(NOT x)           -> x
//	NOT(a AND b)         -> NOT a OR NOT b
//	NOT(a OR b)          -> NOT a AND NOT b
//	NOT(a <op> b)        -> a <negated op> b
//	If(NOT c, t, f)      -> If(c, f, t)
//	NOT(IsNull(x))       -> IsNotNull(x)
//	NOT(IsNotNull(x))    -> IsNull(x)
//	a AND NOT b, a same b -> FALSE
//	a OR NOT b, a same b  -> TRUE
type ReduceNegations struct{}

func NewReduceNegations() ReduceNegations { return ReduceNegations{} }

func (ReduceNegations) Name() string { return "ReduceNegations" }

func (ReduceNegations) Apply(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
	changed := false
	out, err := plan.TransformAllExpressions(p, func(e expr.Expression) (expr.Expression, error) {
		switch n := e.(type) {
		case *expr.Not:
			switch child := n.Child.(type) {
			case *expr.Not:
				changed = true
				return child.Child, nil
			case *expr.And:
				changed = true
				return expr.NewOr(expr.NewNot(child.Left), expr.NewNot(child.Right)), nil
			case *expr.Or:
				changed = true
				return expr.NewAnd(expr.NewNot(child.Left), expr.NewNot(child.Right)), nil
			case *expr.Comparison:
				changed = true
				return expr.NewComparison(child.Op.Negated(), child.Left, child.Right), nil
			case *expr.IsNull:
				changed = true
				return expr.NewIsNotNull(child.Child), nil
			case *expr.IsNotNull:
				changed = true
				return expr.NewIsNull(child.Child), nil
			default:
				return e, nil
			}

		case *expr.If:
			if not, ok := n.Cond.(*expr.Not); ok {
				changed = true
				return expr.NewIf(not.Child, n.Else, n.Then), nil
			}
			return e, nil

		case *expr.And:
			if negatesSame(n.Left, n.Right) {
				changed = true
				return expr.NewLiteral(false, expr.Bool), nil
			}
			return e, nil

		case *expr.Or:
			if negatesSame(n.Left, n.Right) {
				changed = true
				return expr.NewLiteral(true, expr.Bool), nil
			}
			return e, nil

		default:
			return e, nil
		}
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

// negatesSame reports whether one of left/right is the logical negation of
// the other. Two shapes count: an explicit NOT wrapping the other operand
// (expr.Same ignoring alias wrapping), and a pair of Comparisons over the
// same operands whose operators are exact negations of one another — the
// form a <op> x ends up in once this same rule has already turned a
// sibling NOT(a <op> x) into a negated Comparison within the same
// bottom-up sweep.
func negatesSame(left, right expr.Expression) bool {
	if not, ok := right.(*expr.Not); ok && expr.Same(left, not.Child) {
		return true
	}
	if not, ok := left.(*expr.Not); ok && expr.Same(right, not.Child) {
		return true
	}
	lc, lok := left.(*expr.Comparison)
	rc, rok := right.(*expr.Comparison)
	if lok && rok && rc.Op == lc.Op.Negated() && expr.Same(lc.Left, rc.Left) && expr.Same(lc.Right, rc.Right) {
		return true
	}
	return false
}

package rules

import (
	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

// ReduceAliases collapses an alias that renames an attribute to its own
// existing name back into a bare AttributeRef, and collapses a chain of two
// aliases (Alias wrapping another Alias or GeneratedAlias) into a single
// alias around the innermost child, keeping the outer ID and name since that
// is the one later plan nodes may already reference.
type ReduceAliases struct{}

func NewReduceAliases() ReduceAliases { return ReduceAliases{} }

func (ReduceAliases) Name() string { return "ReduceAliases" }

func (ReduceAliases) Apply(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
	changed := false
	out, err := plan.TransformAllExpressions(p, func(e expr.Expression) (expr.Expression, error) {
		switch v := e.(type) {
		case *expr.Alias:
			if ref, ok := v.Child.(*expr.AttributeRef); ok && ref.ID == v.ID && ref.Name == v.Name {
				changed = true
				return ref, nil
			}
			if inner, ok := v.Child.(*expr.Alias); ok {
				changed = true
				return expr.NewAlias(v.ID, v.Name, inner.Child), nil
			}
			if inner, ok := v.Child.(*expr.GeneratedAlias); ok {
				changed = true
				return expr.NewAlias(v.ID, v.Name, inner.Child), nil
			}
		case *expr.GeneratedAlias:
			if inner, ok := v.Child.(*expr.Alias); ok {
				changed = true
				return expr.NewGeneratedAlias(v.ID, v.Name, inner.Child), nil
			}
			if inner, ok := v.Child.(*expr.GeneratedAlias); ok {
				changed = true
				return expr.NewGeneratedAlias(v.ID, v.Name, inner.Child), nil
			}
		}
		return e, nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

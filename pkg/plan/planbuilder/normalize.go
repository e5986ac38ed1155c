package planbuilder

import (
	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
	"github.com/optiqdb/optiq/pkg/tree"
)

// NormalizeIDs renumbers every expr.ID reachable from p to a canonical
// sequence assigned in first-encounter order: first over the expressions of
// every node, bottom-up (plan nodes post-order, each expression tree
// post-order), then over LocalRelation columns, so two plans that are
// structurally identical except for which concrete IDs an earlier analysis
// pass happened to assign compare equal with tree.Equal. This is the
// renumbering the testable-properties suite (ID hygiene ignoring concrete
// values) relies on.
func NormalizeIDs(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	remap := make(map[expr.ID]expr.ID)
	var nextID expr.ID = 1

	assign := func(id expr.ID) expr.ID {
		if mapped, ok := remap[id]; ok {
			return mapped
		}
		remap[id] = nextID
		nextID++
		return remap[id]
	}

	out, err := plan.TransformAllExpressions(p, func(e expr.Expression) (expr.Expression, error) {
		switch v := e.(type) {
		case *expr.AttributeRef:
			return expr.NewAttributeRef(assign(v.ID), v.Name, v.Typ, v.Nullable), nil
		case *expr.Alias:
			return expr.NewAlias(assign(v.ID), v.Name, v.Child), nil
		case *expr.GeneratedAlias:
			return expr.NewGeneratedAlias(assign(v.ID), v.Name, v.Child), nil
		case *expr.GeneratedAttribute:
			return expr.NewGeneratedAttribute(assign(v.ID), v.Name, v.Typ, v.Nullable), nil
		default:
			return e, nil
		}
	})
	if err != nil {
		return nil, err
	}

	return plan.TransformUp(out, func(lp plan.LogicalPlan) (plan.LogicalPlan, error) {
		rel, ok := lp.(*plan.LocalRelation)
		if !ok {
			return lp, nil
		}
		attrs := make([]*expr.AttributeRef, len(rel.Attrs))
		for i, a := range rel.Attrs {
			attrs[i] = expr.NewAttributeRef(assign(a.ID), a.Name, a.Typ, a.Nullable)
		}
		return plan.NewLocalRelation(rel.Name, attrs...), nil
	})
}

// Equal reports whether a and b are structurally identical after
// independently normalizing each one's IDs.
func Equal(a, b plan.LogicalPlan) (bool, error) {
	na, err := NormalizeIDs(a)
	if err != nil {
		return false, err
	}
	nb, err := NormalizeIDs(b)
	if err != nil {
		return false, err
	}
	return tree.Equal(na, nb), nil
}

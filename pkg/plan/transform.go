package plan

import (
	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/tree"
)

// TransformUp rewrites every LogicalPlan node in p bottom-up, type-asserting
// tree.TransformUp's generic result back to LogicalPlan. f is never asked to
// handle a non-plan node since plan's Children() never returns expression
// nodes.
func TransformUp(p LogicalPlan, f func(LogicalPlan) (LogicalPlan, error)) (LogicalPlan, error) {
	out, err := tree.TransformUp(p, func(n tree.Node) (tree.Node, error) {
		lp, err := planChild(n)
		if err != nil {
			return nil, err
		}
		rewritten, err := f(lp)
		if err != nil {
			return nil, err
		}
		return rewritten, nil
	})
	if err != nil || out == nil {
		return nil, err
	}
	return out.(LogicalPlan), nil
}

// TransformDown mirrors TransformUp, applying f pre-order.
func TransformDown(p LogicalPlan, f func(LogicalPlan) (LogicalPlan, error)) (LogicalPlan, error) {
	out, err := tree.TransformDown(p, func(n tree.Node) (tree.Node, error) {
		lp, err := planChild(n)
		if err != nil {
			return nil, err
		}
		return f(lp)
	})
	if err != nil || out == nil {
		return nil, err
	}
	return out.(LogicalPlan), nil
}

// TransformAllExpressions rewrites, via tree.TransformUp, every expression
// owned by every ExpressionContainer reachable in p, bottom-up on the
// expression tree first and then node-by-node over the plan. This is the
// primitive rules like FoldConstants and ReduceAliases build on: they pass f
// once and it fires on every expression node in the plan regardless of which
// container owns it.
func TransformAllExpressions(p LogicalPlan, f func(expr.Expression) (expr.Expression, error)) (LogicalPlan, error) {
	return TransformUp(p, func(lp LogicalPlan) (LogicalPlan, error) {
		ec, ok := lp.(ExpressionContainer)
		if !ok {
			return lp, nil
		}
		exprs := ec.Expressions()
		newExprs := make([]expr.Expression, len(exprs))
		changed := false
		for i, e := range exprs {
			rewritten, err := tree.TransformUp(e, func(n tree.Node) (tree.Node, error) {
				ex, ok := n.(expr.Expression)
				if !ok {
					return n, nil
				}
				return f(ex)
			})
			if err != nil {
				return nil, err
			}
			newExprs[i] = rewritten.(expr.Expression)
			if newExprs[i] != e {
				changed = true
			}
		}
		if !changed {
			return lp, nil
		}
		return ec.WithExpressions(newExprs)
	})
}

// CollectFromAllExpressions gathers every expression node across every
// ExpressionContainer reachable in p for which pf reports true.
func CollectFromAllExpressions(p LogicalPlan, pf func(expr.Expression) bool) []expr.Expression {
	var out []expr.Expression
	for _, n := range tree.Collect(p, func(n tree.Node) bool {
		_, ok := n.(ExpressionContainer)
		return ok
	}) {
		ec := n.(ExpressionContainer)
		for _, e := range ec.Expressions() {
			for _, found := range tree.Collect(e, func(n tree.Node) bool {
				ex, ok := n.(expr.Expression)
				return ok && pf(ex)
			}) {
				out = append(out, found.(expr.Expression))
			}
		}
	}
	return out
}

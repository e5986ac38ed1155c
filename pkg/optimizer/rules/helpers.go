// Package rules implements the default rule library the executor sweeps
// over a resolved logical plan: constant folding, predicate normalization,
// alias/cast reduction, CNF conversion, common-subexpression and filter/
// project merging, subquery elimination, and the pushdown family.
package rules

import (
	"fmt"

	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
	"github.com/optiqdb/optiq/pkg/tree"
)

var errNonExpressionChild = fmt.Errorf("rules: expected an Expression child while inlining")

// SplitConjunction flattens a right- or left-leaning chain of ANDs into its
// leaf conjuncts, in left-to-right order. A non-And expression is returned
// as a single-element slice.
func SplitConjunction(e expr.Expression) []expr.Expression {
	and, ok := e.(*expr.And)
	if !ok {
		return []expr.Expression{e}
	}
	return append(SplitConjunction(and.Left), SplitConjunction(and.Right)...)
}

// JoinConjunction rebuilds a single expression ANDing together every element
// of conjuncts, left-associatively. An empty conjuncts slice yields the
// literal TRUE (an empty conjunction is a constant-true filter, which callers
// typically want to drop the Filter node for rather than construct).
func JoinConjunction(conjuncts []expr.Expression) expr.Expression {
	if len(conjuncts) == 0 {
		return expr.NewLiteral(true, expr.Bool)
	}
	out := conjuncts[0]
	for _, c := range conjuncts[1:] {
		out = expr.NewAnd(out, c)
	}
	return out
}

// InlineAliases substitutes every AttributeRef in e that refers to an alias
// recorded in bindings with that alias's underlying expression, recursively.
// PushFiltersThroughProjects and MergeProjects use this to rewrite a
// predicate or projection expressed against a Project's output columns into
// one expressed against the Project's input.
func InlineAliases(e expr.Expression, bindings map[expr.ID]expr.Expression) (expr.Expression, error) {
	out, err := inlineRecursive(e, bindings)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func inlineRecursive(e expr.Expression, bindings map[expr.ID]expr.Expression) (expr.Expression, error) {
	if ref, ok := e.(*expr.AttributeRef); ok {
		if bound, ok := bindings[ref.ID]; ok {
			return bound, nil
		}
		return e, nil
	}

	children := e.Children()
	if len(children) == 0 {
		return e, nil
	}
	newChildren := make([]expr.Expression, len(children))
	changed := false
	for i, c := range children {
		ce, ok := c.(expr.Expression)
		if !ok {
			return nil, errNonExpressionChild
		}
		rewritten, err := inlineRecursive(ce, bindings)
		if err != nil {
			return nil, err
		}
		newChildren[i] = rewritten
		if rewritten != ce {
			changed = true
		}
	}
	if !changed {
		return e, nil
	}
	treeNodes := make([]tree.Node, len(newChildren))
	for i, c := range newChildren {
		treeNodes[i] = c
	}
	rebuilt, err := e.WithChildren(treeNodes)
	if err != nil {
		return nil, err
	}
	return rebuilt.(expr.Expression), nil
}

// ToCNF rewrites a boolean expression (with negations already pushed to the
// leaves, as ReduceNegations leaves them) into conjunctive normal form by
// distributing OR over AND. Sub-results are memoized by sub-expression
// identity so a predicate with repeated shared sub-terms is not re-expanded
// once per occurrence, which is what keeps this from blowing up
// exponentially on realistic predicates.
func ToCNF(e expr.Expression) expr.Expression {
	cache := make(map[expr.Expression]expr.Expression)
	return toCNF(e, cache)
}

func toCNF(e expr.Expression, cache map[expr.Expression]expr.Expression) expr.Expression {
	if cached, ok := cache[e]; ok {
		return cached
	}
	var out expr.Expression
	switch v := e.(type) {
	case *expr.And:
		out = expr.NewAnd(toCNF(v.Left, cache), toCNF(v.Right, cache))
	case *expr.Or:
		out = distributeOr(toCNF(v.Left, cache), toCNF(v.Right, cache))
	default:
		out = e
	}
	cache[e] = out
	return out
}

func distributeOr(l, r expr.Expression) expr.Expression {
	if land, ok := l.(*expr.And); ok {
		return expr.NewAnd(distributeOr(land.Left, r), distributeOr(land.Right, r))
	}
	if rand, ok := r.(*expr.And); ok {
		return expr.NewAnd(distributeOr(l, rand.Left), distributeOr(l, rand.Right))
	}
	return expr.NewOr(l, r)
}

// BindingsFromProject builds an ID -> underlying-expression map from a
// Project's output columns, for use with InlineAliases.
func BindingsFromProject(p *plan.Project) map[expr.ID]expr.Expression {
	out := make(map[expr.ID]expr.Expression, len(p.Exprs))
	for _, e := range p.Exprs {
		switch v := e.(type) {
		case *expr.Alias:
			out[v.ID] = v.Child
		case *expr.GeneratedAlias:
			out[v.ID] = v.Child
		case *expr.AttributeRef:
			out[v.ID] = v
		}
	}
	return out
}

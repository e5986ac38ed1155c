package rules

import (
	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

// FoldConstants collapses every foldable expression subtree (one with no
// AttributeRef reachable from it) into a single Literal, evaluated once up
// front rather than on every row at execution time.
type FoldConstants struct{}

func NewFoldConstants() FoldConstants { return FoldConstants{} }

func (FoldConstants) Name() string { return "FoldConstants" }

func (FoldConstants) Apply(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
	changed := false
	out, err := plan.TransformAllExpressions(p, func(e expr.Expression) (expr.Expression, error) {
		if _, isLit := e.(*expr.Literal); isLit {
			return e, nil
		}
		if _, isNamed := e.(expr.Named); isNamed {
			// Aliases and attribute references carry identity (ID, Name)
			// that a Literal cannot express; only their children fold.
			return e, nil
		}
		if !e.IsFoldable() {
			return e, nil
		}
		val, typ, err := expr.Evaluate(e)
		if err != nil {
			return e, nil
		}
		changed = true
		return expr.NewLiteral(val, typ), nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

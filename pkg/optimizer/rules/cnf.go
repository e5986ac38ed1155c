package rules

import (
	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
	"github.com/optiqdb/optiq/pkg/tree"
)

// CNFConversion rewrites every Filter and Join condition into conjunctive
// normal form via ToCNF, so PushFiltersThroughJoins and
// EliminateCommonPredicates can operate on independent conjuncts rather than
// an arbitrarily nested AND/OR tree.
type CNFConversion struct{}

func NewCNFConversion() CNFConversion { return CNFConversion{} }

func (CNFConversion) Name() string { return "CNFConversion" }

func (CNFConversion) Apply(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
	changed := false
	out, err := plan.TransformUp(p, func(lp plan.LogicalPlan) (plan.LogicalPlan, error) {
		ec, ok := lp.(plan.ExpressionContainer)
		if !ok {
			return lp, nil
		}
		exprs := ec.Expressions()
		newExprs := make([]expr.Expression, len(exprs))
		localChanged := false
		for i, e := range exprs {
			if e.DataType() != expr.Bool {
				newExprs[i] = e
				continue
			}
			cnf := ToCNF(e)
			newExprs[i] = cnf
			if !tree.Equal(cnf, e) {
				localChanged = true
			}
		}
		if !localChanged {
			return lp, nil
		}
		changed = true
		return ec.WithExpressions(newExprs)
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

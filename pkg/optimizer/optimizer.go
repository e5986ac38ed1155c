// Package optimizer implements the fixed-point rule executor that rewrites
// a resolved logical plan into an equivalent, cheaper-to-execute one.
package optimizer

import "github.com/optiqdb/optiq/pkg/plan"

// DefaultBatches returns the single unlimited fixed-point batch the spec
// calls "Optimizations", containing every default rule in the order the
// spec lists them: constant and logical folding first, then negations and
// casts normalized, aliasing cleaned up, predicates put in CNF and
// deduplicated, filter/project shapes merged, subqueries eliminated, and
// finally the pushdown and limit family. The batch runs to a fixed point,
// but the order still matters: where two rules rewrite the same
// subexpression differently (If(TRUE, y, y) folds to y under
// FoldLogicalPredicates but becomes Coalesce(TRUE, y) under
// EliminateCommonPredicates), the rule that runs first decides which fixed
// point is reached.
func DefaultBatches() []RuleBatch {
	return []RuleBatch{defaultOptimizationsBatch()}
}

// Optimize is the package's single entry point: build an executor with the
// given options (or the defaults) and run it once over plan.
func Optimize(p plan.LogicalPlan, opts ...Option) (plan.LogicalPlan, error) {
	return NewRulesExecutor(opts...).Execute(p)
}

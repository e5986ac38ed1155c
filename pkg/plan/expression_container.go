package plan

import "github.com/optiqdb/optiq/pkg/expr"

// ExpressionContainer is implemented by plan nodes that own one or more
// top-level expressions (Project, Filter, Join with a condition). Rules that
// rewrite expressions uniformly across the plan (FoldConstants,
// ReduceAliases, CNFConversion, ...) operate through this interface instead
// of type-switching over every node kind that happens to hold expressions.
type ExpressionContainer interface {
	LogicalPlan

	// Expressions returns this node's own expressions, not its children's.
	Expressions() []expr.Expression

	// WithExpressions returns a copy of this node with its own expressions
	// replaced, in the same order returned by Expressions. The arity must
	// match; a mismatch returns an error.
	WithExpressions(exprs []expr.Expression) (LogicalPlan, error)
}

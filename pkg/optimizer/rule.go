package optimizer

import "github.com/optiqdb/optiq/pkg/plan"

// Rule is a single named rewrite. Apply receives the whole plan (not a
// single node) and returns either the unchanged input (when the rule found
// nothing to do, changed=false) or a rewritten plan (changed=true). Rules
// are responsible for their own traversal, typically via plan.TransformUp or
// plan.TransformAllExpressions, so a rule that only fires on a single node
// shape still sees the whole tree.
type Rule interface {
	// Name identifies the rule in logs, metrics, and RuleConvergenceExceeded
	// diagnostics.
	Name() string

	// Apply attempts the rewrite once. changed reports whether the returned
	// plan differs from p; when false the executor may skip re-checking
	// invariants for this application.
	Apply(p plan.LogicalPlan) (out plan.LogicalPlan, changed bool, err error)
}

// RuleFunc adapts a plain function to the Rule interface, the way the
// teacher's BaseRule lets simple rules skip hand-writing a struct.
type RuleFunc struct {
	RuleName string
	Fn       func(plan.LogicalPlan) (plan.LogicalPlan, bool, error)
}

func (r RuleFunc) Name() string { return r.RuleName }
func (r RuleFunc) Apply(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
	return r.Fn(p)
}

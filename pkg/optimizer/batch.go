package optimizer

// Convergence controls how many times a RuleBatch's rules are swept over
// the plan before the executor moves to the next batch.
type Convergence int

const (
	// Once sweeps every rule in the batch exactly one time, in order,
	// regardless of whether any rule reported a change.
	Once Convergence = iota

	// FixedPoint sweeps the batch repeatedly until a full sweep produces no
	// change from any rule, or MaxIterations is reached (0 means unlimited).
	FixedPoint
)

// RuleBatch groups rules that should be swept together under one
// convergence policy. The executor runs batches in the order supplied to
// NewRulesExecutor.
type RuleBatch struct {
	Name          string
	Rules         []Rule
	Convergence   Convergence
	MaxIterations int // 0 means unlimited, only meaningful for FixedPoint
}

// NewOnceBatch builds a Once batch.
func NewOnceBatch(name string, rules ...Rule) RuleBatch {
	return RuleBatch{Name: name, Rules: rules, Convergence: Once}
}

// NewFixedPointBatch builds a FixedPoint batch. maxIterations of 0 means
// unlimited (the executor keeps sweeping until nothing changes).
func NewFixedPointBatch(name string, maxIterations int, rules ...Rule) RuleBatch {
	return RuleBatch{Name: name, Rules: rules, Convergence: FixedPoint, MaxIterations: maxIterations}
}

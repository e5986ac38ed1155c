package optimizer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/optiqdb/optiq/pkg/plan"
	"github.com/optiqdb/optiq/pkg/tree"
)

// MetricsSink receives advisory counters from the executor. pkg/metrics.Collector
// implements this; it is defined here rather than imported so the executor
// has no hard dependency on the Prometheus client when metrics are unused.
type MetricsSink interface {
	ObserveRuleApplied(batch, rule string)
	ObserveBatchIteration(batch string, iterations int)
	ObserveConvergenceExceeded(batch string)
}

// AbortFunc is polled between rule applications; returning true stops the
// executor early with whatever plan it currently holds, as a cooperative
// cancellation point for a caller-side timeout or context cancellation.
type AbortFunc func() bool

// RulesExecutor sweeps a sequence of RuleBatches over a logical plan to a
// fixed point.
type RulesExecutor struct {
	batches []RuleBatch
	logger  *zap.Logger
	metrics MetricsSink
	abort   AbortFunc
}

// Option configures a RulesExecutor.
type Option func(*RulesExecutor)

// WithBatches overrides the default batch list.
func WithBatches(batches ...RuleBatch) Option {
	return func(e *RulesExecutor) { e.batches = batches }
}

// WithLogger sets the *zap.Logger used for per-iteration diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(e *RulesExecutor) { e.logger = logger }
}

// WithMetrics sets the sink that receives rule-firing and convergence
// counters. A nil sink (the default) disables metrics entirely.
func WithMetrics(m MetricsSink) Option {
	return func(e *RulesExecutor) { e.metrics = m }
}

// WithAbort sets the cooperative-cancellation predicate.
func WithAbort(abort AbortFunc) Option {
	return func(e *RulesExecutor) { e.abort = abort }
}

// NewRulesExecutor builds a RulesExecutor with DefaultBatches unless
// overridden via WithBatches.
func NewRulesExecutor(opts ...Option) *RulesExecutor {
	e := &RulesExecutor{
		batches: DefaultBatches(),
		logger:  zap.NewNop(),
		abort:   func() bool { return false },
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.abort == nil {
		e.abort = func() bool { return false }
	}
	return e
}

// Execute runs every configured batch over p in order and returns the final
// plan. A non-nil *OptimizerError is always either Unresolved or
// InternalInvariantViolation (fatal) or RuleConvergenceExceeded (non-fatal,
// returned alongside the last plan produced).
func (e *RulesExecutor) Execute(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	if !p.IsResolved() {
		return nil, newUnresolvedError(fmt.Errorf("input plan is not fully resolved"))
	}

	originalSchema := p
	current := p
	var convergenceErr *OptimizerError

	for _, batch := range e.batches {
		next, err := e.runBatch(batch, current)
		if err != nil {
			if oerr, ok := err.(*OptimizerError); ok && oerr.Kind == RuleConvergenceExceeded {
				convergenceErr = oerr
				current = next
				continue
			}
			return nil, err
		}
		current = next

		if !plan.SchemaEqual(originalSchema, current) {
			return nil, newInvariantError(batch.Name, "", fmt.Errorf("batch changed output schema"))
		}
		if !current.IsResolved() {
			return nil, newInvariantError(batch.Name, "", fmt.Errorf("batch produced an unresolved plan"))
		}
	}

	if convergenceErr != nil {
		return current, convergenceErr
	}
	return current, nil
}

func (e *RulesExecutor) runBatch(batch RuleBatch, p plan.LogicalPlan) (plan.LogicalPlan, error) {
	current := p
	iterations := 0
	maxIter := batch.MaxIterations
	if batch.Convergence == Once {
		maxIter = 1
	}

	for {
		iterations++
		changedInSweep := false

		for _, rule := range batch.Rules {
			if e.abort() {
				e.logger.Warn("optimizer: aborted mid-batch", zap.String("batch", batch.Name))
				return current, nil
			}

			out, changed, err := rule.Apply(current)
			if err != nil {
				return nil, newInvariantError(batch.Name, rule.Name(), err)
			}
			if changed {
				changedInSweep = true
				current = out
				if e.metrics != nil {
					e.metrics.ObserveRuleApplied(batch.Name, rule.Name())
				}
				e.logger.Debug("optimizer: rule applied",
					zap.String("batch", batch.Name),
					zap.String("rule", rule.Name()),
					zap.String("plan", tree.PrettyTree(current)))
			}
		}

		done := batch.Convergence == Once || !changedInSweep || (maxIter > 0 && iterations >= maxIter)
		if e.metrics != nil && done {
			e.metrics.ObserveBatchIteration(batch.Name, iterations)
		}

		if batch.Convergence == Once {
			return current, nil
		}
		if !changedInSweep {
			return current, nil
		}
		if maxIter > 0 && iterations >= maxIter {
			if e.metrics != nil {
				e.metrics.ObserveConvergenceExceeded(batch.Name)
			}
			e.logger.Warn("optimizer: rule convergence exceeded",
				zap.String("batch", batch.Name), zap.Int("iterations", iterations))
			return current, newConvergenceError(batch.Name, fmt.Errorf("batch %q did not converge within %d iterations", batch.Name, maxIter))
		}
	}
}

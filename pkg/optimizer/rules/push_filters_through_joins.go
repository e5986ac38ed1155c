package rules

import (
	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

// PushFiltersThroughJoins moves each conjunct of a Filter sitting above a
// Join down to whichever side's child it exclusively references. Conjuncts
// that reference both sides (or neither) are folded into the join's own
// condition instead, and the outer Filter is removed entirely: its
// semantics are fully absorbed into the join. Outer joins are left alone:
// pushing a predicate below a LeftOuterJoin/RightOuterJoin/FullOuterJoin can
// change which rows the join itself produces (a predicate that looks like a
// filter on the preserved side can reject rows the outer join would
// otherwise pad with nulls), so only InnerJoin is eligible.
type PushFiltersThroughJoins struct{}

func NewPushFiltersThroughJoins() PushFiltersThroughJoins { return PushFiltersThroughJoins{} }

func (PushFiltersThroughJoins) Name() string { return "PushFiltersThroughJoins" }

func (PushFiltersThroughJoins) Apply(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
	changed := false
	out, err := plan.TransformUp(p, func(lp plan.LogicalPlan) (plan.LogicalPlan, error) {
		filter, ok := lp.(*plan.Filter)
		if !ok {
			return lp, nil
		}
		join, ok := filter.Child.(*plan.Join)
		if !ok || join.JType != plan.InnerJoin {
			return lp, nil
		}

		leftIDs := plan.OutputIDSet(join.Left)
		rightIDs := plan.OutputIDSet(join.Right)

		var toLeft, toRight, remaining []expr.Expression
		for _, c := range SplitConjunction(filter.Condition) {
			refs := expr.ReferenceIDs(c)
			onlyLeft, onlyRight := true, true
			for _, id := range refs {
				if _, ok := leftIDs[id]; !ok {
					onlyLeft = false
				}
				if _, ok := rightIDs[id]; !ok {
					onlyRight = false
				}
			}
			switch {
			case len(refs) > 0 && onlyLeft:
				toLeft = append(toLeft, c)
			case len(refs) > 0 && onlyRight:
				toRight = append(toRight, c)
			default:
				remaining = append(remaining, c)
			}
		}

		newLeft := join.Left
		if len(toLeft) > 0 {
			newLeft = plan.NewFilter(join.Left, JoinConjunction(toLeft))
		}
		newRight := join.Right
		if len(toRight) > 0 {
			newRight = plan.NewFilter(join.Right, JoinConjunction(toRight))
		}
		newCondition := join.Condition
		if len(remaining) > 0 {
			if join.Condition == nil {
				newCondition = JoinConjunction(remaining)
			} else {
				newCondition = JoinConjunction(append(SplitConjunction(join.Condition), remaining...))
			}
		}

		changed = true
		return plan.NewJoin(join.JType, newLeft, newRight, newCondition), nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

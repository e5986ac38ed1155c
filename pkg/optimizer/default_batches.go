package optimizer

import "github.com/optiqdb/optiq/pkg/optimizer/rules"

func defaultOptimizationsBatch() RuleBatch {
	return NewFixedPointBatch("Optimizations", 0,
		rules.NewFoldConstants(),
		rules.NewFoldLogicalPredicates(),
		rules.NewReduceNegations(),
		rules.NewReduceCasts(),
		rules.NewReduceAliases(),
		rules.NewCNFConversion(),
		rules.NewEliminateCommonPredicates(),
		rules.NewMergeFilters(),
		rules.NewMergeProjects(),
		rules.NewEliminateSubqueries(),
		rules.NewPushFiltersThroughProjects(),
		rules.NewPushFiltersThroughJoins(),
		rules.NewPushProjectsThroughLimits(),
		rules.NewReduceLimits(),
		rules.NewPushLimitsThroughUnions(),
	)
}

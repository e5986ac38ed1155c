package plan

import "github.com/optiqdb/optiq/pkg/expr"

// SchemaEqual reports whether a and b produce the same output schema: same
// length, same names, types and nullability in order, ignoring
// ExpressionIDs. Rules must
// never change a plan's observable schema; tests use this to check that
// property without being sensitive to ID renumbering.
func SchemaEqual(a, b LogicalPlan) bool {
	ao, bo := a.Output(), b.Output()
	if len(ao) != len(bo) {
		return false
	}
	for i := range ao {
		if ao[i].ExprName() != bo[i].ExprName() {
			return false
		}
		if ao[i].DataType() != bo[i].DataType() {
			return false
		}
		if ao[i].IsNullable() != bo[i].IsNullable() {
			return false
		}
	}
	return true
}

// OutputMultiset returns the multiset of output attribute IDs as a
// count-by-ID map, used to verify ID hygiene: a rule must preserve every
// existing ID it doesn't explicitly retire, never invent new ones in its
// place.
func OutputMultiset(p LogicalPlan) map[expr.ID]int {
	out := make(map[expr.ID]int)
	for _, n := range p.Output() {
		out[n.ExprID()]++
	}
	return out
}

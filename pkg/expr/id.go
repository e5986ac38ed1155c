package expr

import "fmt"

// ID is a globally unique, stable identifier assigned to every resolved
// attribute-producing expression (AttributeRef, Alias, GeneratedAlias,
// GeneratedAttribute). Rules must never invent new IDs except when
// EliminateSubqueries clears a qualifier on re-exposed attributes; the ID
// itself is preserved even then.
type ID uint64

func (id ID) String() string {
	return fmt.Sprintf("#%d", uint64(id))
}

// Named is implemented by every expression that produces a named, addressable
// output column: AttributeRef, Alias, GeneratedAlias, GeneratedAttribute.
type Named interface {
	Expression
	ExprID() ID
	ExprName() string
}

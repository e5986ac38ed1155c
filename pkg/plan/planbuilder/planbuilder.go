// Package planbuilder provides a fixture builder for hand-constructed
// resolved logical plans, for use in tests that would otherwise need the
// (out of scope) analyzer to assign ExpressionIDs.
package planbuilder

import (
	"crypto/sha1"

	"github.com/google/uuid"

	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/plan"
)

// IDGen mints distinct, stable expr.IDs for a test fixture. IDs are derived
// deterministically from a namespace UUID and a monotonic counter, so two
// runs of the same test build the identical plan byte-for-byte without
// reaching for math/rand or a package-level mutable counter shared across
// tests.
type IDGen struct {
	namespace uuid.UUID
	next      uint64
}

// NewIDGen returns a generator seeded from seed, so distinct fixtures (or
// subtests) that want non-colliding ID spaces can pass distinct seeds.
func NewIDGen(seed string) *IDGen {
	return &IDGen{namespace: uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))}
}

// Next returns the next ID in this generator's sequence.
func (g *IDGen) Next() expr.ID {
	g.next++
	buf := append([]byte{}, g.namespace[:]...)
	for shift := 56; shift >= 0; shift -= 8 {
		buf = append(buf, byte(g.next>>uint(shift)))
	}
	h := sha1.Sum(buf)
	var v uint64
	for _, b := range h[:8] {
		v = v<<8 | uint64(b)
	}
	return expr.ID(v%1_000_000_000 + 1)
}

// Relation builds a resolved LocalRelation named name with the given
// (name, type, nullable) column triples, minting a fresh ID per column.
func (g *IDGen) Relation(name string, cols ...Column) *plan.LocalRelation {
	attrs := make([]*expr.AttributeRef, len(cols))
	for i, c := range cols {
		attrs[i] = expr.NewAttributeRef(g.Next(), c.Name, c.Type, c.Nullable)
	}
	return plan.NewLocalRelation(name, attrs...)
}

// Column describes one column of a fixture relation.
type Column struct {
	Name     string
	Type     expr.DataType
	Nullable bool
}

// Col is a terse constructor for Column, defaulting Nullable to false.
func Col(name string, typ expr.DataType) Column { return Column{Name: name, Type: typ} }

// NullableCol is Col with Nullable set to true.
func NullableCol(name string, typ expr.DataType) Column {
	return Column{Name: name, Type: typ, Nullable: true}
}

// Alias wraps child under a fresh ID and name, mirroring what the analyzer
// would assign to a user-written "AS" clause.
func (g *IDGen) Alias(name string, child expr.Expression) *expr.Alias {
	return expr.NewAlias(g.Next(), name, child)
}

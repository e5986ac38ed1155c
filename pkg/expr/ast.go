// Package expr implements the expression algebra: the scalar-valued half of
// the tree family described by pkg/tree. Expression nodes never know about
// pkg/plan; a plan references expressions only through the
// plan.ExpressionContainer contract.
package expr

import (
	"fmt"
	"strings"

	"github.com/optiqdb/optiq/pkg/tree"
)

// Expression is the contract every scalar node satisfies. It embeds tree.Node
// so the generic transform/collect/equal primitives apply uniformly.
type Expression interface {
	tree.Node

	// DataType reports the static type this expression evaluates to.
	// Unknown for expressions involving an unresolved attribute.
	DataType() DataType

	// IsNullable reports whether this expression's value may be null at
	// runtime.
	IsNullable() bool

	// IsFoldable reports whether this expression contains no attribute
	// references, i.e. it can be collapsed to a Literal by Evaluate.
	IsFoldable() bool

	// IsPure reports whether repeated evaluation with the same inputs always
	// produces the same output and has no side effects. Every expression in
	// this algebra is pure; the method exists so rules can be written against
	// the general contract rather than assuming it.
	IsPure() bool

	// IsResolved reports whether every AttributeRef reachable from this node
	// carries a concrete, non-Unknown DataType.
	IsResolved() bool

	String() string
}

// ReferenceIDs returns the IDs of every Named sub-expression reachable from
// e, in the order encountered, including duplicates.
func ReferenceIDs(e Expression) []ID {
	var out []ID
	for _, n := range tree.Collect(e, func(n tree.Node) bool {
		_, ok := n.(Named)
		return ok
	}) {
		out = append(out, n.(Named).ExprID())
	}
	return out
}

// childExpr narrows a tree.Node into an Expression, returning an error
// rather than panicking on a programmer error (a family member handed a
// foreign node type); WithChildren call sites pass that error on.
func childExpr(n tree.Node) (Expression, error) {
	e, ok := n.(Expression)
	if !ok {
		return nil, fmt.Errorf("expr: expected Expression child, got %T", n)
	}
	return e, nil
}

// ---- Literal ----

// Literal is a constant value of a fixed type. A Go nil Val represents SQL
// NULL of the given Typ.
type Literal struct {
	Val interface{}
	Typ DataType
}

func NewLiteral(val interface{}, typ DataType) *Literal { return &Literal{Val: val, Typ: typ} }

func (l *Literal) Children() []tree.Node { return nil }
func (l *Literal) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 0 {
		return nil, fmt.Errorf("expr: Literal takes no children, got %d", len(children))
	}
	return l, nil
}
func (l *Literal) NodeEqual(other tree.Node) bool {
	o, ok := other.(*Literal)
	return ok && o.Typ == l.Typ && o.Val == l.Val
}
func (l *Literal) DataType() DataType { return l.Typ }
func (l *Literal) IsNullable() bool   { return l.Val == nil }
func (l *Literal) IsFoldable() bool   { return true }
func (l *Literal) IsPure() bool       { return true }
func (l *Literal) IsResolved() bool   { return l.Typ != Unknown }
func (l *Literal) String() string {
	if l.Val == nil {
		return "NULL"
	}
	if l.Typ == String {
		return fmt.Sprintf("%q", l.Val)
	}
	return fmt.Sprintf("%v", l.Val)
}

// ---- AttributeRef ----

// AttributeRef references an attribute produced upstream in the plan by ID.
// Two AttributeRefs are the same reference iff their IDs match; Name and
// Qualifier are carried only for display and are not part of equality.
// Qualifier holds the table/subquery alias a reference was resolved through
// (e.g. "s" in "s.a"); EliminateSubqueries clears it once the owning
// Subquery node is removed, since the alias no longer resolves anything.
type AttributeRef struct {
	ID        ID
	Name      string
	Typ       DataType
	Nullable  bool
	Qualifier string
}

func NewAttributeRef(id ID, name string, typ DataType, nullable bool) *AttributeRef {
	return &AttributeRef{ID: id, Name: name, Typ: typ, Nullable: nullable}
}

// WithQualifier returns a copy of a with Qualifier set to q, leaving the
// reference's ID (and therefore its equality under NodeEqual/Same) untouched.
func (a *AttributeRef) WithQualifier(q string) *AttributeRef {
	cp := *a
	cp.Qualifier = q
	return &cp
}

func (a *AttributeRef) Children() []tree.Node { return nil }
func (a *AttributeRef) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 0 {
		return nil, fmt.Errorf("expr: AttributeRef takes no children, got %d", len(children))
	}
	return a, nil
}
func (a *AttributeRef) NodeEqual(other tree.Node) bool {
	o, ok := other.(*AttributeRef)
	return ok && o.ID == a.ID
}
func (a *AttributeRef) DataType() DataType { return a.Typ }
func (a *AttributeRef) IsNullable() bool   { return a.Nullable }
func (a *AttributeRef) IsFoldable() bool   { return false }
func (a *AttributeRef) IsPure() bool       { return true }
func (a *AttributeRef) IsResolved() bool   { return a.Typ != Unknown }
func (a *AttributeRef) ExprID() ID         { return a.ID }
func (a *AttributeRef) ExprName() string   { return a.Name }
func (a *AttributeRef) String() string {
	if a.Qualifier != "" {
		return fmt.Sprintf("%s.%s%s", a.Qualifier, a.Name, a.ID)
	}
	return fmt.Sprintf("%s%s", a.Name, a.ID)
}

// ---- Alias ----

// Alias names the result of evaluating Child, assigning it a stable ID so
// later plan nodes can reference it by AttributeRef. User-written (as
// opposed to rule-generated) aliases use this type.
type Alias struct {
	ID    ID
	Name  string
	Child Expression
}

func NewAlias(id ID, name string, child Expression) *Alias {
	return &Alias{ID: id, Name: name, Child: child}
}

func (a *Alias) Children() []tree.Node { return []tree.Node{a.Child} }
func (a *Alias) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 1 {
		return nil, fmt.Errorf("expr: Alias takes exactly one child, got %d", len(children))
	}
	c, err := childExpr(children[0])
	if err != nil {
		return nil, err
	}
	return &Alias{ID: a.ID, Name: a.Name, Child: c}, nil
}
func (a *Alias) NodeEqual(other tree.Node) bool {
	o, ok := other.(*Alias)
	return ok && o.ID == a.ID && o.Name == a.Name
}
func (a *Alias) DataType() DataType { return a.Child.DataType() }
func (a *Alias) IsNullable() bool   { return a.Child.IsNullable() }
func (a *Alias) IsFoldable() bool   { return a.Child.IsFoldable() }
func (a *Alias) IsPure() bool       { return a.Child.IsPure() }
func (a *Alias) IsResolved() bool   { return a.Child.IsResolved() }
func (a *Alias) ExprID() ID         { return a.ID }
func (a *Alias) ExprName() string   { return a.Name }
func (a *Alias) String() string     { return fmt.Sprintf("%s AS %s%s", a.Child, a.Name, a.ID) }

// ---- GeneratedAlias ----

// GeneratedAlias is structurally identical to Alias but marks an alias
// introduced by a rewrite rather than one the original query text wrote. No
// rule in pkg/optimizer/rules introduces one; ReduceAliases only rebuilds an
// existing GeneratedAlias when collapsing an alias chain.
// Keeping it a distinct type lets rules and tests tell the two apart without
// a boolean flag on every Alias.
type GeneratedAlias struct {
	ID    ID
	Name  string
	Child Expression
}

func NewGeneratedAlias(id ID, name string, child Expression) *GeneratedAlias {
	return &GeneratedAlias{ID: id, Name: name, Child: child}
}

func (a *GeneratedAlias) Children() []tree.Node { return []tree.Node{a.Child} }
func (a *GeneratedAlias) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 1 {
		return nil, fmt.Errorf("expr: GeneratedAlias takes exactly one child, got %d", len(children))
	}
	c, err := childExpr(children[0])
	if err != nil {
		return nil, err
	}
	return &GeneratedAlias{ID: a.ID, Name: a.Name, Child: c}, nil
}
func (a *GeneratedAlias) NodeEqual(other tree.Node) bool {
	o, ok := other.(*GeneratedAlias)
	return ok && o.ID == a.ID && o.Name == a.Name
}
func (a *GeneratedAlias) DataType() DataType { return a.Child.DataType() }
func (a *GeneratedAlias) IsNullable() bool   { return a.Child.IsNullable() }
func (a *GeneratedAlias) IsFoldable() bool   { return a.Child.IsFoldable() }
func (a *GeneratedAlias) IsPure() bool       { return a.Child.IsPure() }
func (a *GeneratedAlias) IsResolved() bool   { return a.Child.IsResolved() }
func (a *GeneratedAlias) ExprID() ID         { return a.ID }
func (a *GeneratedAlias) ExprName() string   { return a.Name }
func (a *GeneratedAlias) String() string {
	return fmt.Sprintf("%s AS %s%s [generated]", a.Child, a.Name, a.ID)
}

// ---- GeneratedAttribute ----

// GeneratedAttribute is an AttributeRef-shaped leaf with no underlying
// expression, standing in for an output column produced directly rather than
// by evaluating a child expression. The plan nodes in pkg/plan do not emit
// it: LocalRelation exposes its columns as AttributeRefs.
type GeneratedAttribute struct {
	ID       ID
	Name     string
	Typ      DataType
	Nullable bool
}

func NewGeneratedAttribute(id ID, name string, typ DataType, nullable bool) *GeneratedAttribute {
	return &GeneratedAttribute{ID: id, Name: name, Typ: typ, Nullable: nullable}
}

func (a *GeneratedAttribute) Children() []tree.Node { return nil }
func (a *GeneratedAttribute) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 0 {
		return nil, fmt.Errorf("expr: GeneratedAttribute takes no children, got %d", len(children))
	}
	return a, nil
}
func (a *GeneratedAttribute) NodeEqual(other tree.Node) bool {
	o, ok := other.(*GeneratedAttribute)
	return ok && o.ID == a.ID
}
func (a *GeneratedAttribute) DataType() DataType { return a.Typ }
func (a *GeneratedAttribute) IsNullable() bool   { return a.Nullable }
func (a *GeneratedAttribute) IsFoldable() bool   { return false }
func (a *GeneratedAttribute) IsPure() bool       { return true }
func (a *GeneratedAttribute) IsResolved() bool   { return a.Typ != Unknown }
func (a *GeneratedAttribute) ExprID() ID         { return a.ID }
func (a *GeneratedAttribute) ExprName() string   { return a.Name }
func (a *GeneratedAttribute) String() string      { return fmt.Sprintf("%s%s", a.Name, a.ID) }

// ---- Cast ----

// Cast converts Child's value to Target at runtime.
type Cast struct {
	Child  Expression
	Target DataType
}

func NewCast(child Expression, target DataType) *Cast { return &Cast{Child: child, Target: target} }

func (c *Cast) Children() []tree.Node { return []tree.Node{c.Child} }
func (c *Cast) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 1 {
		return nil, fmt.Errorf("expr: Cast takes exactly one child, got %d", len(children))
	}
	ch, err := childExpr(children[0])
	if err != nil {
		return nil, err
	}
	return &Cast{Child: ch, Target: c.Target}, nil
}
func (c *Cast) NodeEqual(other tree.Node) bool {
	o, ok := other.(*Cast)
	return ok && o.Target == c.Target
}
func (c *Cast) DataType() DataType { return c.Target }
func (c *Cast) IsNullable() bool   { return c.Child.IsNullable() }
func (c *Cast) IsFoldable() bool   { return c.Child.IsFoldable() }
func (c *Cast) IsPure() bool       { return c.Child.IsPure() }
func (c *Cast) IsResolved() bool   { return c.Child.IsResolved() }
func (c *Cast) String() string     { return fmt.Sprintf("CAST(%s AS %s)", c.Child, c.Target) }

// ---- Arithmetic ----

// ArithOp enumerates the binary arithmetic operators.
type ArithOp int

const (
	Add ArithOp = iota
	Sub
	Mul
	Div
	Mod
)

func (op ArithOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	default:
		return "?"
	}
}

// Arithmetic is a binary arithmetic expression over two numeric operands.
type Arithmetic struct {
	Op          ArithOp
	Left, Right Expression
}

func NewArithmetic(op ArithOp, left, right Expression) *Arithmetic {
	return &Arithmetic{Op: op, Left: left, Right: right}
}

func (a *Arithmetic) Children() []tree.Node { return []tree.Node{a.Left, a.Right} }
func (a *Arithmetic) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 2 {
		return nil, fmt.Errorf("expr: Arithmetic takes exactly two children, got %d", len(children))
	}
	l, err := childExpr(children[0])
	if err != nil {
		return nil, err
	}
	r, err := childExpr(children[1])
	if err != nil {
		return nil, err
	}
	return &Arithmetic{Op: a.Op, Left: l, Right: r}, nil
}
func (a *Arithmetic) NodeEqual(other tree.Node) bool {
	o, ok := other.(*Arithmetic)
	return ok && o.Op == a.Op
}
func (a *Arithmetic) DataType() DataType {
	if a.Left.DataType() == Float64 || a.Right.DataType() == Float64 {
		return Float64
	}
	return Int64
}
func (a *Arithmetic) IsNullable() bool { return a.Left.IsNullable() || a.Right.IsNullable() }
func (a *Arithmetic) IsFoldable() bool { return a.Left.IsFoldable() && a.Right.IsFoldable() }
func (a *Arithmetic) IsPure() bool     { return a.Left.IsPure() && a.Right.IsPure() }
func (a *Arithmetic) IsResolved() bool { return a.Left.IsResolved() && a.Right.IsResolved() }
func (a *Arithmetic) String() string {
	return fmt.Sprintf("(%s %s %s)", a.Left, a.Op, a.Right)
}

// ---- Comparison ----

// CompareOp enumerates the binary comparison operators.
type CompareOp int

const (
	Eq CompareOp = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

func (op CompareOp) String() string {
	switch op {
	case Eq:
		return "="
	case Ne:
		return "<>"
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return "?"
	}
}

// Negated returns the comparison operator that holds exactly when op does
// not, used by ReduceNegations when pushing Not through a Comparison.
func (op CompareOp) Negated() CompareOp {
	switch op {
	case Eq:
		return Ne
	case Ne:
		return Eq
	case Lt:
		return Ge
	case Le:
		return Gt
	case Gt:
		return Le
	case Ge:
		return Lt
	default:
		return op
	}
}

// Comparison is a binary comparison expression, always Bool-typed.
type Comparison struct {
	Op          CompareOp
	Left, Right Expression
}

func NewComparison(op CompareOp, left, right Expression) *Comparison {
	return &Comparison{Op: op, Left: left, Right: right}
}

func (c *Comparison) Children() []tree.Node { return []tree.Node{c.Left, c.Right} }
func (c *Comparison) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 2 {
		return nil, fmt.Errorf("expr: Comparison takes exactly two children, got %d", len(children))
	}
	l, err := childExpr(children[0])
	if err != nil {
		return nil, err
	}
	r, err := childExpr(children[1])
	if err != nil {
		return nil, err
	}
	return &Comparison{Op: c.Op, Left: l, Right: r}, nil
}
func (c *Comparison) NodeEqual(other tree.Node) bool {
	o, ok := other.(*Comparison)
	return ok && o.Op == c.Op
}
func (c *Comparison) DataType() DataType { return Bool }
func (c *Comparison) IsNullable() bool   { return c.Left.IsNullable() || c.Right.IsNullable() }
func (c *Comparison) IsFoldable() bool   { return c.Left.IsFoldable() && c.Right.IsFoldable() }
func (c *Comparison) IsPure() bool       { return c.Left.IsPure() && c.Right.IsPure() }
func (c *Comparison) IsResolved() bool   { return c.Left.IsResolved() && c.Right.IsResolved() }
func (c *Comparison) String() string {
	return fmt.Sprintf("(%s %s %s)", c.Left, c.Op, c.Right)
}

// ---- And / Or ----

// And is true iff both operands are true, with standard SQL three-valued
// short-circuit semantics left to the evaluator, not encoded in the type.
type And struct{ Left, Right Expression }

func NewAnd(left, right Expression) *And { return &And{Left: left, Right: right} }

func (a *And) Children() []tree.Node { return []tree.Node{a.Left, a.Right} }
func (a *And) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 2 {
		return nil, fmt.Errorf("expr: And takes exactly two children, got %d", len(children))
	}
	l, err := childExpr(children[0])
	if err != nil {
		return nil, err
	}
	r, err := childExpr(children[1])
	if err != nil {
		return nil, err
	}
	return &And{Left: l, Right: r}, nil
}
func (a *And) NodeEqual(other tree.Node) bool { _, ok := other.(*And); return ok }
func (a *And) DataType() DataType             { return Bool }
func (a *And) IsNullable() bool               { return a.Left.IsNullable() || a.Right.IsNullable() }
func (a *And) IsFoldable() bool               { return a.Left.IsFoldable() && a.Right.IsFoldable() }
func (a *And) IsPure() bool                   { return a.Left.IsPure() && a.Right.IsPure() }
func (a *And) IsResolved() bool               { return a.Left.IsResolved() && a.Right.IsResolved() }
func (a *And) String() string                 { return fmt.Sprintf("(%s AND %s)", a.Left, a.Right) }

// Or is true iff either operand is true.
type Or struct{ Left, Right Expression }

func NewOr(left, right Expression) *Or { return &Or{Left: left, Right: right} }

func (o *Or) Children() []tree.Node { return []tree.Node{o.Left, o.Right} }
func (o *Or) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 2 {
		return nil, fmt.Errorf("expr: Or takes exactly two children, got %d", len(children))
	}
	l, err := childExpr(children[0])
	if err != nil {
		return nil, err
	}
	r, err := childExpr(children[1])
	if err != nil {
		return nil, err
	}
	return &Or{Left: l, Right: r}, nil
}
func (o *Or) NodeEqual(other tree.Node) bool { _, ok := other.(*Or); return ok }
func (o *Or) DataType() DataType             { return Bool }
func (o *Or) IsNullable() bool               { return o.Left.IsNullable() || o.Right.IsNullable() }
func (o *Or) IsFoldable() bool               { return o.Left.IsFoldable() && o.Right.IsFoldable() }
func (o *Or) IsPure() bool                   { return o.Left.IsPure() && o.Right.IsPure() }
func (o *Or) IsResolved() bool               { return o.Left.IsResolved() && o.Right.IsResolved() }
func (o *Or) String() string                 { return fmt.Sprintf("(%s OR %s)", o.Left, o.Right) }

// ---- Not ----

// Not negates a boolean-typed child.
type Not struct{ Child Expression }

func NewNot(child Expression) *Not { return &Not{Child: child} }

func (n *Not) Children() []tree.Node { return []tree.Node{n.Child} }
func (n *Not) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 1 {
		return nil, fmt.Errorf("expr: Not takes exactly one child, got %d", len(children))
	}
	c, err := childExpr(children[0])
	if err != nil {
		return nil, err
	}
	return &Not{Child: c}, nil
}
func (n *Not) NodeEqual(other tree.Node) bool { _, ok := other.(*Not); return ok }
func (n *Not) DataType() DataType             { return Bool }
func (n *Not) IsNullable() bool               { return n.Child.IsNullable() }
func (n *Not) IsFoldable() bool               { return n.Child.IsFoldable() }
func (n *Not) IsPure() bool                   { return n.Child.IsPure() }
func (n *Not) IsResolved() bool               { return n.Child.IsResolved() }
func (n *Not) String() string                 { return fmt.Sprintf("NOT %s", n.Child) }

// ---- If ----

// If evaluates to Then when Cond is true, Else otherwise (and Else when Cond
// is null or false alike — there is no separate null branch in this
// algebra).
type If struct{ Cond, Then, Else Expression }

func NewIf(cond, then, els Expression) *If { return &If{Cond: cond, Then: then, Else: els} }

func (i *If) Children() []tree.Node { return []tree.Node{i.Cond, i.Then, i.Else} }
func (i *If) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 3 {
		return nil, fmt.Errorf("expr: If takes exactly three children, got %d", len(children))
	}
	cond, err := childExpr(children[0])
	if err != nil {
		return nil, err
	}
	then, err := childExpr(children[1])
	if err != nil {
		return nil, err
	}
	els, err := childExpr(children[2])
	if err != nil {
		return nil, err
	}
	return &If{Cond: cond, Then: then, Else: els}, nil
}
func (i *If) NodeEqual(other tree.Node) bool { _, ok := other.(*If); return ok }
func (i *If) DataType() DataType             { return i.Then.DataType() }
func (i *If) IsNullable() bool               { return i.Then.IsNullable() || i.Else.IsNullable() }
func (i *If) IsFoldable() bool {
	return i.Cond.IsFoldable() && i.Then.IsFoldable() && i.Else.IsFoldable()
}
func (i *If) IsPure() bool { return i.Cond.IsPure() && i.Then.IsPure() && i.Else.IsPure() }
func (i *If) IsResolved() bool {
	return i.Cond.IsResolved() && i.Then.IsResolved() && i.Else.IsResolved()
}
func (i *If) String() string {
	return fmt.Sprintf("IF(%s, %s, %s)", i.Cond, i.Then, i.Else)
}

// ---- Coalesce ----

// Coalesce evaluates Args left to right and returns the first non-null
// result, or null if every argument is null. Evaluation order is part of the
// contract: EliminateCommonPredicates relies on the first argument being
// evaluated before any other.
type Coalesce struct{ Args []Expression }

func NewCoalesce(args ...Expression) *Coalesce { return &Coalesce{Args: args} }

func (c *Coalesce) Children() []tree.Node {
	out := make([]tree.Node, len(c.Args))
	for i, a := range c.Args {
		out[i] = a
	}
	return out
}
func (c *Coalesce) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != len(c.Args) {
		return nil, fmt.Errorf("expr: Coalesce takes %d children, got %d", len(c.Args), len(children))
	}
	args := make([]Expression, len(children))
	for i, ch := range children {
		e, err := childExpr(ch)
		if err != nil {
			return nil, err
		}
		args[i] = e
	}
	return &Coalesce{Args: args}, nil
}
func (c *Coalesce) NodeEqual(other tree.Node) bool {
	o, ok := other.(*Coalesce)
	return ok && len(o.Args) == len(c.Args)
}
func (c *Coalesce) DataType() DataType {
	if len(c.Args) == 0 {
		return Unknown
	}
	return c.Args[0].DataType()
}
func (c *Coalesce) IsNullable() bool {
	for _, a := range c.Args {
		if !a.IsNullable() {
			return false
		}
	}
	return true
}
func (c *Coalesce) IsFoldable() bool {
	for _, a := range c.Args {
		if !a.IsFoldable() {
			return false
		}
	}
	return true
}
func (c *Coalesce) IsPure() bool {
	for _, a := range c.Args {
		if !a.IsPure() {
			return false
		}
	}
	return true
}
func (c *Coalesce) IsResolved() bool {
	for _, a := range c.Args {
		if !a.IsResolved() {
			return false
		}
	}
	return true
}
func (c *Coalesce) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("COALESCE(%s)", strings.Join(parts, ", "))
}

// ---- IsNull / IsNotNull ----

// IsNull is true iff Child evaluates to null.
type IsNull struct{ Child Expression }

func NewIsNull(child Expression) *IsNull { return &IsNull{Child: child} }

func (n *IsNull) Children() []tree.Node { return []tree.Node{n.Child} }
func (n *IsNull) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 1 {
		return nil, fmt.Errorf("expr: IsNull takes exactly one child, got %d", len(children))
	}
	c, err := childExpr(children[0])
	if err != nil {
		return nil, err
	}
	return &IsNull{Child: c}, nil
}
func (n *IsNull) NodeEqual(other tree.Node) bool { _, ok := other.(*IsNull); return ok }
func (n *IsNull) DataType() DataType             { return Bool }
func (n *IsNull) IsNullable() bool               { return false }
func (n *IsNull) IsFoldable() bool               { return n.Child.IsFoldable() }
func (n *IsNull) IsPure() bool                   { return n.Child.IsPure() }
func (n *IsNull) IsResolved() bool               { return n.Child.IsResolved() }
func (n *IsNull) String() string                 { return fmt.Sprintf("%s IS NULL", n.Child) }

// IsNotNull is true iff Child evaluates to a non-null value.
type IsNotNull struct{ Child Expression }

func NewIsNotNull(child Expression) *IsNotNull { return &IsNotNull{Child: child} }

func (n *IsNotNull) Children() []tree.Node { return []tree.Node{n.Child} }
func (n *IsNotNull) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 1 {
		return nil, fmt.Errorf("expr: IsNotNull takes exactly one child, got %d", len(children))
	}
	c, err := childExpr(children[0])
	if err != nil {
		return nil, err
	}
	return &IsNotNull{Child: c}, nil
}
func (n *IsNotNull) NodeEqual(other tree.Node) bool { _, ok := other.(*IsNotNull); return ok }
func (n *IsNotNull) DataType() DataType             { return Bool }
func (n *IsNotNull) IsNullable() bool               { return false }
func (n *IsNotNull) IsFoldable() bool               { return n.Child.IsFoldable() }
func (n *IsNotNull) IsPure() bool                   { return n.Child.IsPure() }
func (n *IsNotNull) IsResolved() bool               { return n.Child.IsResolved() }
func (n *IsNotNull) String() string                 { return fmt.Sprintf("%s IS NOT NULL", n.Child) }

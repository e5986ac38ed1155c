// Package plan implements the logical-plan algebra: the relational half of
// the tree family described by pkg/tree. Plan nodes reference pkg/expr
// expressions through the ExpressionContainer contract but expr never
// references plan.
package plan

import (
	"fmt"
	"strings"

	"github.com/optiqdb/optiq/pkg/expr"
	"github.com/optiqdb/optiq/pkg/tree"
)

// LogicalPlan is the contract every relational node satisfies.
type LogicalPlan interface {
	tree.Node

	// Output returns the ordered list of attributes this node produces.
	Output() []expr.Named

	// IsResolved reports whether every expression and attribute reachable
	// from this node (including its children) is resolved: no
	// UnresolvedRelation remains, and every AttributeRef/expression carries
	// a concrete DataType.
	IsResolved() bool

	// IsWellTyped reports whether every expression attached to this node
	// (not children) passes expr.IsWellTyped.
	IsWellTyped() bool

	String() string
}

// OutputIDSet returns the set of attribute IDs p outputs, for membership
// tests like "does this predicate only reference attributes in scope".
func OutputIDSet(p LogicalPlan) map[expr.ID]struct{} {
	out := make(map[expr.ID]struct{})
	for _, n := range p.Output() {
		out[n.ExprID()] = struct{}{}
	}
	return out
}

func planChild(n tree.Node) (LogicalPlan, error) {
	p, ok := n.(LogicalPlan)
	if !ok {
		return nil, fmt.Errorf("plan: expected LogicalPlan child, got %T", n)
	}
	return p, nil
}

// ---- UnresolvedRelation ----

// UnresolvedRelation is a placeholder for a relation the analyzer has not
// yet bound to a concrete schema. No rule in this module ever produces or
// consumes one; it exists only so IsResolved has something concrete to
// report false for when a test wants to exercise the unresolved path.
type UnresolvedRelation struct {
	Name string
}

func (u *UnresolvedRelation) Children() []tree.Node { return nil }
func (u *UnresolvedRelation) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 0 {
		return nil, fmt.Errorf("plan: UnresolvedRelation takes no children, got %d", len(children))
	}
	return u, nil
}
func (u *UnresolvedRelation) NodeEqual(other tree.Node) bool {
	o, ok := other.(*UnresolvedRelation)
	return ok && o.Name == u.Name
}
func (u *UnresolvedRelation) Output() []expr.Named { return nil }
func (u *UnresolvedRelation) IsResolved() bool      { return false }
func (u *UnresolvedRelation) IsWellTyped() bool     { return false }
func (u *UnresolvedRelation) String() string        { return fmt.Sprintf("UnresolvedRelation(%s)", u.Name) }

// ---- LocalRelation ----

// LocalRelation is a resolved, schema-bound leaf: a base table or an
// in-memory row set. Attrs are the columns it exposes.
type LocalRelation struct {
	Name  string
	Attrs []*expr.AttributeRef
}

func NewLocalRelation(name string, attrs ...*expr.AttributeRef) *LocalRelation {
	return &LocalRelation{Name: name, Attrs: attrs}
}

func (r *LocalRelation) Children() []tree.Node { return nil }
func (r *LocalRelation) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 0 {
		return nil, fmt.Errorf("plan: LocalRelation takes no children, got %d", len(children))
	}
	return r, nil
}
func (r *LocalRelation) NodeEqual(other tree.Node) bool {
	o, ok := other.(*LocalRelation)
	return ok && o.Name == r.Name && len(o.Attrs) == len(r.Attrs)
}
func (r *LocalRelation) Output() []expr.Named {
	out := make([]expr.Named, len(r.Attrs))
	for i, a := range r.Attrs {
		out[i] = a
	}
	return out
}
func (r *LocalRelation) IsResolved() bool {
	for _, a := range r.Attrs {
		if !a.IsResolved() {
			return false
		}
	}
	return true
}
func (r *LocalRelation) IsWellTyped() bool { return r.IsResolved() }
func (r *LocalRelation) String() string {
	names := make([]string, len(r.Attrs))
	for i, a := range r.Attrs {
		names[i] = a.String()
	}
	return fmt.Sprintf("LocalRelation(%s)[%s]", r.Name, strings.Join(names, ", "))
}

// ---- Project ----

// Project evaluates Exprs (each a Named expression) against Child's rows.
type Project struct {
	Exprs []expr.Named
	Child LogicalPlan
}

func NewProject(child LogicalPlan, exprs ...expr.Named) *Project {
	return &Project{Exprs: exprs, Child: child}
}

func (p *Project) Children() []tree.Node { return []tree.Node{p.Child} }
func (p *Project) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 1 {
		return nil, fmt.Errorf("plan: Project takes exactly one child, got %d", len(children))
	}
	c, err := planChild(children[0])
	if err != nil {
		return nil, err
	}
	return &Project{Exprs: p.Exprs, Child: c}, nil
}
func (p *Project) NodeEqual(other tree.Node) bool {
	o, ok := other.(*Project)
	return ok && len(o.Exprs) == len(p.Exprs)
}
func (p *Project) Output() []expr.Named { return p.Exprs }
func (p *Project) IsResolved() bool {
	if !p.Child.IsResolved() {
		return false
	}
	for _, e := range p.Exprs {
		if !e.IsResolved() {
			return false
		}
	}
	return true
}
func (p *Project) IsWellTyped() bool {
	for _, e := range p.Exprs {
		if !expr.IsWellTyped(e) {
			return false
		}
	}
	return true
}
func (p *Project) String() string {
	names := make([]string, len(p.Exprs))
	for i, e := range p.Exprs {
		names[i] = e.String()
	}
	return fmt.Sprintf("Project[%s]", strings.Join(names, ", "))
}

// Expressions implements ExpressionContainer.
func (p *Project) Expressions() []expr.Expression {
	out := make([]expr.Expression, len(p.Exprs))
	for i, e := range p.Exprs {
		out[i] = e
	}
	return out
}

// WithExpressions implements ExpressionContainer.
func (p *Project) WithExpressions(exprs []expr.Expression) (LogicalPlan, error) {
	if len(exprs) != len(p.Exprs) {
		return nil, fmt.Errorf("plan: Project.WithExpressions arity mismatch: have %d, want %d", len(exprs), len(p.Exprs))
	}
	named := make([]expr.Named, len(exprs))
	for i, e := range exprs {
		n, ok := e.(expr.Named)
		if !ok {
			return nil, fmt.Errorf("plan: Project requires Named expressions, got %T at %d", e, i)
		}
		named[i] = n
	}
	return &Project{Exprs: named, Child: p.Child}, nil
}

// ---- Filter ----

// Filter retains only the rows of Child for which Condition evaluates true.
type Filter struct {
	Condition expr.Expression
	Child     LogicalPlan
}

func NewFilter(child LogicalPlan, condition expr.Expression) *Filter {
	return &Filter{Condition: condition, Child: child}
}

func (f *Filter) Children() []tree.Node { return []tree.Node{f.Child} }
func (f *Filter) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 1 {
		return nil, fmt.Errorf("plan: Filter takes exactly one child, got %d", len(children))
	}
	c, err := planChild(children[0])
	if err != nil {
		return nil, err
	}
	return &Filter{Condition: f.Condition, Child: c}, nil
}
func (f *Filter) NodeEqual(other tree.Node) bool { _, ok := other.(*Filter); return ok }
func (f *Filter) Output() []expr.Named           { return f.Child.Output() }
func (f *Filter) IsResolved() bool               { return f.Child.IsResolved() && f.Condition.IsResolved() }
func (f *Filter) IsWellTyped() bool              { return expr.IsWellTyped(f.Condition) }
func (f *Filter) String() string                 { return fmt.Sprintf("Filter[%s]", f.Condition) }

func (f *Filter) Expressions() []expr.Expression { return []expr.Expression{f.Condition} }
func (f *Filter) WithExpressions(exprs []expr.Expression) (LogicalPlan, error) {
	if len(exprs) != 1 {
		return nil, fmt.Errorf("plan: Filter.WithExpressions takes exactly one expression, got %d", len(exprs))
	}
	return &Filter{Condition: exprs[0], Child: f.Child}, nil
}

// ---- Join ----

// JoinType enumerates the supported join kinds.
type JoinType int

const (
	InnerJoin JoinType = iota
	LeftOuterJoin
	RightOuterJoin
	FullOuterJoin
)

func (t JoinType) String() string {
	switch t {
	case InnerJoin:
		return "Inner"
	case LeftOuterJoin:
		return "LeftOuter"
	case RightOuterJoin:
		return "RightOuter"
	case FullOuterJoin:
		return "FullOuter"
	default:
		return "?"
	}
}

// Join combines Left and Right row-wise, keeping pairs for which Condition
// holds (or a nil Condition, an unconditional cross join).
type Join struct {
	JType       JoinType
	Condition   expr.Expression
	Left, Right LogicalPlan
}

func NewJoin(jtype JoinType, left, right LogicalPlan, condition expr.Expression) *Join {
	return &Join{JType: jtype, Condition: condition, Left: left, Right: right}
}

func (j *Join) Children() []tree.Node { return []tree.Node{j.Left, j.Right} }
func (j *Join) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 2 {
		return nil, fmt.Errorf("plan: Join takes exactly two children, got %d", len(children))
	}
	l, err := planChild(children[0])
	if err != nil {
		return nil, err
	}
	r, err := planChild(children[1])
	if err != nil {
		return nil, err
	}
	return &Join{JType: j.JType, Condition: j.Condition, Left: l, Right: r}, nil
}
func (j *Join) NodeEqual(other tree.Node) bool {
	o, ok := other.(*Join)
	return ok && o.JType == j.JType
}
func (j *Join) Output() []expr.Named {
	return append(append([]expr.Named{}, j.Left.Output()...), j.Right.Output()...)
}
func (j *Join) IsResolved() bool {
	if !j.Left.IsResolved() || !j.Right.IsResolved() {
		return false
	}
	return j.Condition == nil || j.Condition.IsResolved()
}
func (j *Join) IsWellTyped() bool {
	if j.Condition == nil {
		return true
	}
	return expr.IsWellTyped(j.Condition) && j.Condition.DataType() == expr.Bool
}
func (j *Join) String() string { return fmt.Sprintf("Join[%s, on=%s]", j.JType, j.Condition) }

func (j *Join) Expressions() []expr.Expression {
	if j.Condition == nil {
		return nil
	}
	return []expr.Expression{j.Condition}
}
func (j *Join) WithExpressions(exprs []expr.Expression) (LogicalPlan, error) {
	switch len(exprs) {
	case 0:
		return &Join{JType: j.JType, Condition: nil, Left: j.Left, Right: j.Right}, nil
	case 1:
		return &Join{JType: j.JType, Condition: exprs[0], Left: j.Left, Right: j.Right}, nil
	default:
		return nil, fmt.Errorf("plan: Join.WithExpressions takes zero or one expression, got %d", len(exprs))
	}
}

// ---- Limit ----

// Limit caps Child's output to at most Count rows, skipping Offset first.
type Limit struct {
	Count  int64
	Offset int64
	Child  LogicalPlan
}

func NewLimit(child LogicalPlan, count, offset int64) *Limit {
	return &Limit{Count: count, Offset: offset, Child: child}
}

func (l *Limit) Children() []tree.Node { return []tree.Node{l.Child} }
func (l *Limit) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 1 {
		return nil, fmt.Errorf("plan: Limit takes exactly one child, got %d", len(children))
	}
	c, err := planChild(children[0])
	if err != nil {
		return nil, err
	}
	return &Limit{Count: l.Count, Offset: l.Offset, Child: c}, nil
}
func (l *Limit) NodeEqual(other tree.Node) bool {
	o, ok := other.(*Limit)
	return ok && o.Count == l.Count && o.Offset == l.Offset
}
func (l *Limit) Output() []expr.Named { return l.Child.Output() }
func (l *Limit) IsResolved() bool     { return l.Child.IsResolved() }
func (l *Limit) IsWellTyped() bool    { return true }
func (l *Limit) String() string       { return fmt.Sprintf("Limit[count=%d, offset=%d]", l.Count, l.Offset) }

// ---- Union ----

// Union concatenates the rows of every branch, which must share a
// column-compatible schema (enforced by the analyzer, not this type).
type Union struct {
	Branches []LogicalPlan
}

func NewUnion(branches ...LogicalPlan) *Union { return &Union{Branches: branches} }

func (u *Union) Children() []tree.Node {
	out := make([]tree.Node, len(u.Branches))
	for i, b := range u.Branches {
		out[i] = b
	}
	return out
}
func (u *Union) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != len(u.Branches) {
		return nil, fmt.Errorf("plan: Union takes %d children, got %d", len(u.Branches), len(children))
	}
	branches := make([]LogicalPlan, len(children))
	for i, c := range children {
		p, err := planChild(c)
		if err != nil {
			return nil, err
		}
		branches[i] = p
	}
	return &Union{Branches: branches}, nil
}
func (u *Union) NodeEqual(other tree.Node) bool {
	o, ok := other.(*Union)
	return ok && len(o.Branches) == len(u.Branches)
}
func (u *Union) Output() []expr.Named {
	if len(u.Branches) == 0 {
		return nil
	}
	return u.Branches[0].Output()
}
func (u *Union) IsResolved() bool {
	for _, b := range u.Branches {
		if !b.IsResolved() {
			return false
		}
	}
	return true
}
func (u *Union) IsWellTyped() bool { return true }
func (u *Union) String() string    { return fmt.Sprintf("Union[branches=%d]", len(u.Branches)) }

// ---- Subquery ----

// Subquery wraps Child, exposing its output under Alias-qualified names.
// EliminateSubqueries removes these wrappers once they no longer carry
// semantic weight, clearing the qualifier on re-exposed attributes (the one
// case where ID stability is about clearing a display qualifier, not
// inventing a new ID).
type Subquery struct {
	Alias string
	Child LogicalPlan
}

func NewSubquery(alias string, child LogicalPlan) *Subquery {
	return &Subquery{Alias: alias, Child: child}
}

func (s *Subquery) Children() []tree.Node { return []tree.Node{s.Child} }
func (s *Subquery) WithChildren(children []tree.Node) (tree.Node, error) {
	if len(children) != 1 {
		return nil, fmt.Errorf("plan: Subquery takes exactly one child, got %d", len(children))
	}
	c, err := planChild(children[0])
	if err != nil {
		return nil, err
	}
	return &Subquery{Alias: s.Alias, Child: c}, nil
}
func (s *Subquery) NodeEqual(other tree.Node) bool {
	o, ok := other.(*Subquery)
	return ok && o.Alias == s.Alias
}
func (s *Subquery) Output() []expr.Named {
	childOut := s.Child.Output()
	out := make([]expr.Named, len(childOut))
	for i, n := range childOut {
		if ar, ok := n.(*expr.AttributeRef); ok {
			out[i] = ar.WithQualifier(s.Alias)
			continue
		}
		out[i] = n
	}
	return out
}
func (s *Subquery) IsResolved() bool  { return s.Child.IsResolved() }
func (s *Subquery) IsWellTyped() bool { return true }
func (s *Subquery) String() string    { return fmt.Sprintf("Subquery[as %s]", s.Alias) }

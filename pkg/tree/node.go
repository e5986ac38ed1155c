// Package tree implements the generic rooted-tree algebra shared by the
// expression and logical-plan families: uniform child access, structural
// replacement, and pre-/post-order rewrite.
package tree

import (
	"fmt"
	"strings"
)

// Node is the contract every member of a tree family (expression or plan)
// satisfies. Families never know about each other; traversal operates only
// through this interface.
type Node interface {
	// Children returns the ordered child sequence.
	Children() []Node

	// WithChildren returns a structurally identical node with its children
	// replaced by newChildren. The arity of newChildren must match
	// len(Children()); a mismatch is a caller bug and returns an error
	// rather than panicking, so callers driving an optimizer loop can turn
	// it into an InternalInvariantViolation.
	WithChildren(newChildren []Node) (Node, error)
}

// Equaler is implemented by nodes that know how to compare their own
// (non-child) attributes. Equal uses it to build whole-tree structural
// equality without any family knowing about the other.
type Equaler interface {
	Node
	NodeEqual(other Node) bool
}

// Equal reports whether a and b are structurally identical: same concrete
// shape, same own attributes (via NodeEqual), and equal children pairwise.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ae, ok := a.(Equaler)
	if !ok {
		return false
	}
	if !ae.NodeEqual(b) {
		return false
	}
	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !Equal(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

// TransformDown applies f to n, then recurses into the children of the
// result (pre-order). If the recursion produces no change in any child, the
// node returned by f is returned unmodified (structure sharing); otherwise
// WithChildren is used to rebuild it with the rewritten children.
func TransformDown(n Node, f func(Node) (Node, error)) (Node, error) {
	if n == nil {
		return nil, nil
	}
	rewritten, err := f(n)
	if err != nil {
		return nil, err
	}
	children := rewritten.Children()
	if len(children) == 0 {
		return rewritten, nil
	}
	newChildren := make([]Node, len(children))
	changed := false
	for i, c := range children {
		nc, err := TransformDown(c, f)
		if err != nil {
			return nil, err
		}
		newChildren[i] = nc
		if nc != c {
			changed = true
		}
	}
	if !changed {
		return rewritten, nil
	}
	return rewritten.WithChildren(newChildren)
}

// TransformUp mirrors TransformDown with children rewritten first
// (post-order): f sees a node whose children are already in their final
// form.
func TransformUp(n Node, f func(Node) (Node, error)) (Node, error) {
	if n == nil {
		return nil, nil
	}
	children := n.Children()
	if len(children) == 0 {
		return f(n)
	}
	newChildren := make([]Node, len(children))
	changed := false
	for i, c := range children {
		nc, err := TransformUp(c, f)
		if err != nil {
			return nil, err
		}
		newChildren[i] = nc
		if nc != c {
			changed = true
		}
	}
	cur := n
	if changed {
		rebuilt, err := n.WithChildren(newChildren)
		if err != nil {
			return nil, err
		}
		cur = rebuilt
	}
	return f(cur)
}

// Collect walks n in document (pre-)order and returns every node for which
// pf reports true, in the order encountered.
func Collect(n Node, pf func(Node) bool) []Node {
	var out []Node
	var walk func(Node)
	walk = func(n Node) {
		if n == nil {
			return
		}
		if pf(n) {
			out = append(out, n)
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(n)
	return out
}

// stringer is satisfied by any node with a human-readable one-line form;
// nodes that don't implement it fall back to their Go type name.
type stringer interface {
	String() string
}

// PrettyTree renders n as an indented, multi-line diagnostic string. Equal
// trees always render identically; ExpressionIDs are part of each node's
// String() and so are NOT normalized here — callers comparing pretty trees
// across ID-renumbering should normalize first.
func PrettyTree(n Node) string {
	var sb strings.Builder
	prettyTree(&sb, n, 0)
	return sb.String()
}

func prettyTree(sb *strings.Builder, n Node, depth int) {
	if n == nil {
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))
	if s, ok := n.(stringer); ok {
		sb.WriteString(s.String())
	} else {
		fmt.Fprintf(sb, "%T", n)
	}
	sb.WriteString("\n")
	for _, c := range n.Children() {
		prettyTree(sb, c, depth+1)
	}
}

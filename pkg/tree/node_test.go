package tree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leaf and unary are minimal Node implementations used to exercise the
// traversal primitives without pulling in the expr or plan families.
type leaf struct{ val int }

func (l *leaf) Children() []Node                        { return nil }
func (l *leaf) WithChildren(children []Node) (Node, error) {
	if len(children) != 0 {
		return nil, fmt.Errorf("leaf takes no children, got %d", len(children))
	}
	return l, nil
}
func (l *leaf) NodeEqual(other Node) bool {
	o, ok := other.(*leaf)
	return ok && o.val == l.val
}
func (l *leaf) String() string { return fmt.Sprintf("leaf(%d)", l.val) }

type unary struct {
	name  string
	child Node
}

func (u *unary) Children() []Node { return []Node{u.child} }
func (u *unary) WithChildren(children []Node) (Node, error) {
	if len(children) != 1 {
		return nil, fmt.Errorf("unary takes exactly one child, got %d", len(children))
	}
	return &unary{name: u.name, child: children[0]}, nil
}
func (u *unary) NodeEqual(other Node) bool {
	o, ok := other.(*unary)
	return ok && o.name == u.name
}
func (u *unary) String() string { return u.name }

func TestTransformDownAppliesPreOrder(t *testing.T) {
	tr := &unary{name: "outer", child: &leaf{val: 1}}

	var order []string
	_, err := TransformDown(tr, func(n Node) (Node, error) {
		order = append(order, fmt.Sprintf("%T", n))
		return n, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"*tree.unary", "*tree.leaf"}, order)
}

func TestTransformUpAppliesPostOrder(t *testing.T) {
	tr := &unary{name: "outer", child: &leaf{val: 1}}

	var order []string
	_, err := TransformUp(tr, func(n Node) (Node, error) {
		order = append(order, fmt.Sprintf("%T", n))
		return n, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"*tree.leaf", "*tree.unary"}, order)
}

func TestTransformDownStructureSharingWhenUnchanged(t *testing.T) {
	child := &leaf{val: 1}
	tr := &unary{name: "outer", child: child}

	out, err := TransformDown(tr, func(n Node) (Node, error) { return n, nil })
	require.NoError(t, err)
	assert.Same(t, tr, out)
}

func TestTransformDownRebuildsOnChange(t *testing.T) {
	tr := &unary{name: "outer", child: &leaf{val: 1}}

	out, err := TransformDown(tr, func(n Node) (Node, error) {
		if l, ok := n.(*leaf); ok {
			return &leaf{val: l.val + 1}, nil
		}
		return n, nil
	})
	require.NoError(t, err)
	require.NotSame(t, tr, out)
	assert.Equal(t, 2, out.Children()[0].(*leaf).val)
	// original untouched
	assert.Equal(t, 1, tr.child.(*leaf).val)
}

func TestTransformPropagatesError(t *testing.T) {
	tr := &unary{name: "outer", child: &leaf{val: 1}}
	boom := fmt.Errorf("boom")

	_, err := TransformDown(tr, func(n Node) (Node, error) {
		if _, ok := n.(*leaf); ok {
			return nil, boom
		}
		return n, nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestEqualStructural(t *testing.T) {
	a := &unary{name: "x", child: &leaf{val: 1}}
	b := &unary{name: "x", child: &leaf{val: 1}}
	c := &unary{name: "x", child: &leaf{val: 2}}

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(a, nil))
}

func TestCollect(t *testing.T) {
	tr := &unary{name: "a", child: &unary{name: "b", child: &leaf{val: 1}}}

	found := Collect(tr, func(n Node) bool {
		_, ok := n.(*unary)
		return ok
	})
	require.Len(t, found, 2)
	assert.Equal(t, "a", found[0].(*unary).name)
	assert.Equal(t, "b", found[1].(*unary).name)
}

func TestPrettyTree(t *testing.T) {
	tr := &unary{name: "outer", child: &leaf{val: 1}}
	out := PrettyTree(tr)
	assert.Equal(t, "outer\n  leaf(1)\n", out)
}

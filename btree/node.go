package btree

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.leaf
}

// Len returns the number of keys in the node.
func (n *Node) Len() int {
	return len(n.keys)
}

// Keys returns a copy of the node's sorted keys.
func (n *Node) Keys() []int {
	if len(n.keys) == 0 {
		return nil
	}
	out := make([]int, len(n.keys))
	copy(out, n.keys)
	return out
}

// Children returns a copy of the child list, nil for leaves.
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// WalkFunc is called for each node visited; returning false stops the walk.
type WalkFunc func(n *Node, depth int) bool

func (n *Node) walk(depth int, fn WalkFunc) bool {
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.children {
		if !child.walk(depth+1, fn) {
			return false
		}
	}
	return true
}

// Root returns the root node. An empty tree has an empty leaf root.
func (tree *Tree) Root() *Node {
	return tree.root
}

// Len returns the number of keys in the tree, one per Insert call.
func (tree *Tree) Len() int {
	return tree.size
}

// Height returns the number of levels.
func (tree *Tree) Height() int {
	return tree.height
}

// Capacity returns the maximum keys per node.
func (tree *Tree) Capacity() int {
	return tree.capacity
}

// Walk visits nodes in pre-order, children left to right, with the root at
// depth 0.
func (tree *Tree) Walk(fn WalkFunc) {
	tree.root.walk(0, fn)
}

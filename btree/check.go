package btree

import "fmt"

// InvariantError describes the first node that breaks a tree invariant. Path
// holds the child indexes leading to it from the root.
type InvariantError struct {
	Path   []int
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("btree: node %v: %s", e.Path, e.Reason)
}

// bound is the inclusive key range of a subtree; nil means unbounded.
type bound struct {
	lo, hi *int
}

func (b bound) contains(key int) bool {
	if b.lo != nil && key < *b.lo {
		return false
	}
	if b.hi != nil && key > *b.hi {
		return false
	}
	return true
}

type checker struct {
	capacity  int
	leafDepth int
	count     int
}

// Check verifies node capacity, key order, child counts, subtree ranges, leaf
// depth and the total key count.
func (tree *Tree) Check() error {
	c := &checker{capacity: tree.capacity, leafDepth: -1}
	if err := c.check(tree.root, nil, 0, bound{}); err != nil {
		return err
	}
	if c.count != tree.size {
		return &InvariantError{
			Path:   []int{},
			Reason: fmt.Sprintf("tree holds %d keys, %d inserted", c.count, tree.size),
		}
	}
	if c.leafDepth+1 != tree.height {
		return &InvariantError{
			Path:   []int{},
			Reason: fmt.Sprintf("leaves at depth %d, height %d", c.leafDepth, tree.height),
		}
	}
	return nil
}

func (c *checker) check(n *Node, path []int, depth int, b bound) error {
	fail := func(format string, args ...interface{}) error {
		return &InvariantError{
			Path:   append([]int{}, path...),
			Reason: fmt.Sprintf(format, args...),
		}
	}

	if len(n.keys) > c.capacity {
		return fail("%d keys exceeds capacity %d", len(n.keys), c.capacity)
	}
	for i, key := range n.keys {
		if i > 0 && key < n.keys[i-1] {
			return fail("key %d at %d is less than %d", key, i, n.keys[i-1])
		}
		if !b.contains(key) {
			return fail("key %d is out of the parent's range", key)
		}
	}
	c.count += len(n.keys)

	if n.leaf {
		if len(n.children) != 0 {
			return fail("leaf has %d children", len(n.children))
		}
		if c.leafDepth < 0 {
			c.leafDepth = depth
		} else if c.leafDepth != depth {
			return fail("leaf at depth %d, expected %d", depth, c.leafDepth)
		}
		return nil
	}

	if len(n.children) != len(n.keys)+1 {
		return fail("%d children for %d keys", len(n.children), len(n.keys))
	}
	for i, child := range n.children {
		cb := b
		if i > 0 {
			cb.lo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			cb.hi = &n.keys[i]
		}
		if err := c.check(child, append(path, i), depth+1, cb); err != nil {
			return err
		}
	}
	return nil
}

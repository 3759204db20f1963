// Package btree is an in-memory B-tree of int keys that splits full nodes
// on the way down during insertion.
package btree

import (
	"errors"
	"log/slog"
	"sort"
)

const (
	// DefaultCapacity is the number of keys a node holds before it must split.
	DefaultCapacity = 4
	// MinCapacity is the smallest capacity whose splits leave keys on both sides.
	MinCapacity = 3
)

// ErrInvalidCapacity is returned by NewBTree for capacities below MinCapacity.
var ErrInvalidCapacity = errors.New("btree: capacity must be at least 3")

// Keys are the sorted keys of a node.
type Keys []int

// find returns the index of the first key greater than key, so equal keys
// land to the right of existing ones.
func (keys Keys) find(key int) int {
	return sort.Search(len(keys), func(i int) bool {
		return key < keys[i]
	})
}

// insertAt inserts key at index, shifting the rest right.
func (keys *Keys) insertAt(index int, key int) {
	*keys = append(*keys, 0)
	if index < len(*keys) {
		copy((*keys)[index+1:], (*keys)[index:])
	}
	(*keys)[index] = key
}

type children []*Node

func (s *children) insertAt(index int, n *Node) {
	*s = append(*s, nil)
	copy((*s)[index+1:], (*s)[index:])
	(*s)[index] = n
}

// Node is a tree vertex, owned exclusively by its parent or by the Tree.
type Node struct {
	leaf     bool
	keys     Keys
	children children // empty for leaves
}

// Tree owns the root and the insertion algorithm. It is not safe for
// concurrent use; callers must serialize Insert.
type Tree struct {
	capacity int
	root     *Node
	size     int // keys across the whole tree
	height   int // levels, 1 for a single leaf
	logger   *slog.Logger
}

// Option configures a Tree in NewBTree.
type Option func(*Tree)

// WithCapacity sets the maximum keys per node.
func WithCapacity(capacity int) Option {
	return func(tree *Tree) {
		tree.capacity = capacity
	}
}

// WithLogger sets the logger that receives split events at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(tree *Tree) {
		tree.logger = logger
	}
}

// NewBTree returns an empty tree whose root is an empty leaf.
func NewBTree(opts ...Option) (*Tree, error) {
	tree := &Tree{
		capacity: DefaultCapacity,
		root:     &Node{leaf: true},
		height:   1,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(tree)
	}
	if tree.capacity < MinCapacity {
		return nil, ErrInvalidCapacity
	}
	if tree.logger == nil {
		tree.logger = slog.Default()
	}
	tree.logger = tree.logger.With("component", "btree")
	return tree, nil
}

// splitIndex is the index of the separator promoted out of a full node. The
// left half keeps splitIndex keys and the right half gets the rest.
func (tree *Tree) splitIndex() int {
	return tree.capacity / 2
}

func (tree *Tree) full(n *Node) bool {
	return len(n.keys) >= tree.capacity
}

// Insert adds key to the tree. It always succeeds and duplicates are kept.
func (tree *Tree) Insert(key int) {
	// A full root becomes the only child of a new root and is split under it.
	// This is the only place the tree grows in height.
	if tree.full(tree.root) {
		old := tree.root
		tree.root = &Node{children: children{old}}
		tree.splitChild(tree.root, 0)
		tree.height++
		tree.logger.Debug("root grew", "height", tree.height, "separator", tree.root.keys[0])
	}

	tree.insertNonFull(tree.root, key)
	tree.size++
}

// insertNonFull adds key below n, which is not full. A full child is split
// before descending into it, so every node reached has room.
func (tree *Tree) insertNonFull(n *Node, key int) {
	index := n.keys.find(key)
	if n.leaf {
		n.keys.insertAt(index, key)
		return
	}

	if tree.full(n.children[index]) {
		tree.splitChild(n, index)
		// keys greater than the promoted separator belong to the new sibling
		if key > n.keys[index] {
			index++
		}
	}

	tree.insertNonFull(n.children[index], key)
}

// splitChild splits the full parent.children[i]. The lower keys stay put, the
// middle key moves to parent.keys[i] and the upper keys go to a new sibling at
// parent.children[i+1].
func (tree *Tree) splitChild(parent *Node, i int) {
	y := parent.children[i]
	mid := tree.splitIndex()
	if len(y.keys) <= mid {
		panic("btree: split of a non-full node")
	}

	separator := y.keys[mid]
	z := &Node{leaf: y.leaf}
	z.keys = append(z.keys, y.keys[mid+1:]...)
	y.keys = y.keys[:mid]

	// the left half keeps one more child than keys
	if !y.leaf {
		z.children = append(z.children, y.children[mid+1:]...)
		for j := mid + 1; j < len(y.children); j++ {
			y.children[j] = nil
		}
		y.children = y.children[:mid+1]
	}

	parent.keys.insertAt(i, separator)
	parent.children.insertAt(i+1, z)
	parent.leaf = false

	tree.logger.Debug("split node",
		"separator", separator,
		"left", len(y.keys),
		"right", len(z.keys),
		"leaf", y.leaf,
	)
}

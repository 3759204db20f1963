package render

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongker/btree-simulator/btree"
)

func init() {
	color.NoColor = true
}

func sample(t *testing.T, keys ...int) btree.Snapshot {
	t.Helper()
	tree, err := btree.NewBTree()
	require.NoError(t, err)
	for _, key := range keys {
		tree.Insert(key)
	}
	return tree.Snapshot()
}

func TestBox(t *testing.T) {
	assert.Equal(t, "[]", Box(nil))
	assert.Equal(t, "[7]", Box([]int{7}))
	assert.Equal(t, "[-3 0 12]", Box([]int{-3, 0, 12}))
}

func TestOutline(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	require.NoError(t, r.Outline(sample(t)))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	keys := []int{10, 20, 5, 6, 12, 30, 40, 50, 1, 2, 3}
	require.NoError(t, r.Outline(sample(t, keys...)))
	assert.Equal(t, ""+
		"[5 10 30]\n"+
		"├── [1 2 3]\n"+
		"├── [6]\n"+
		"├── [12 20]\n"+
		"└── [40 50]\n", buf.String())
}

func TestOutlineNested(t *testing.T) {
	var buf bytes.Buffer
	keys := make([]int, 0, 20)
	for key := 1; key <= 20; key++ {
		keys = append(keys, key)
	}
	require.NoError(t, New(&buf).Outline(sample(t, keys...)))
	assert.Equal(t, ""+
		"[9]\n"+
		"├── [3 6]\n"+
		"│   ├── [1 2]\n"+
		"│   ├── [4 5]\n"+
		"│   └── [7 8]\n"+
		"└── [12 15 18]\n"+
		"    ├── [10 11]\n"+
		"    ├── [13 14]\n"+
		"    ├── [16 17]\n"+
		"    └── [19 20]\n", buf.String())
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).Levels(sample(t, 10, 20, 5, 6, 12)))
	assert.Equal(t, "L0 [10]\nL1 [5 6] [12 20]\n", buf.String())
}

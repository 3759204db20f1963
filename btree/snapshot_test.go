package btree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinylib/msgp/msgp"
)

func TestSnapshotIsCopy(t *testing.T) {
	tree := newTree(t)
	for _, key := range []int{10, 20, 5, 6, 12} {
		tree.Insert(key)
	}

	snap := tree.Snapshot()
	assert.Equal(t, 5, snap.Count())

	tree.Insert(30)
	tree.Insert(40)
	assert.Equal(t, []int{12, 20}, snap.Children[1].Keys)
	assert.Equal(t, 7, tree.Snapshot().Count())
}

func TestSnapshotEmpty(t *testing.T) {
	tree := newTree(t)
	snap := tree.Snapshot()
	assert.Equal(t, Snapshot{Leaf: true}, snap)

	bts, err := snap.MarshalMsg(nil)
	require.NoError(t, err)

	var out Snapshot
	left, err := out.UnmarshalMsg(bts)
	require.NoError(t, err)
	assert.Empty(t, left)
	assert.Equal(t, snap, out)
}

func TestSnapshotMsgp(t *testing.T) {
	tree := newTree(t)
	for key := -20; key < 60; key += 3 {
		tree.Insert(key)
	}
	snap := tree.Snapshot()

	bts, err := snap.MarshalMsg(nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(bts), snap.Msgsize())

	// trailing bytes are handed back
	out := Snapshot{Keys: []int{99}, Children: []Snapshot{{Leaf: true}}}
	left, err := out.UnmarshalMsg(append(bts, 0xc0))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xc0}, left)
	assert.Equal(t, snap, out)
}

func TestSnapshotSkipsUnknownFields(t *testing.T) {
	bts := msgp.AppendMapHeader(nil, 3)
	bts = msgp.AppendString(bts, "leaf")
	bts = msgp.AppendBool(bts, true)
	bts = msgp.AppendString(bts, "label")
	bts = msgp.AppendString(bts, "root")
	bts = msgp.AppendString(bts, "keys")
	bts = msgp.AppendArrayHeader(bts, 2)
	bts = msgp.AppendInt(bts, 1)
	bts = msgp.AppendInt(bts, 2)

	var out Snapshot
	_, err := out.UnmarshalMsg(bts)
	require.NoError(t, err)
	assert.Equal(t, Snapshot{Leaf: true, Keys: []int{1, 2}}, out)
}

func TestSnapshotTruncated(t *testing.T) {
	tree := newTree(t)
	for key := 0; key < 10; key++ {
		tree.Insert(key)
	}
	snap := tree.Snapshot()
	bts, err := snap.MarshalMsg(nil)
	require.NoError(t, err)

	var out Snapshot
	_, err = out.UnmarshalMsg(bts[:len(bts)-1])
	assert.Error(t, err)
}

func TestSnapshotRejectsOversizedArrays(t *testing.T) {
	for _, field := range []string{"keys", "children"} {
		bts := msgp.AppendMapHeader(nil, 1)
		bts = msgp.AppendString(bts, field)
		bts = msgp.AppendArrayHeader(bts, math.MaxUint32)
		bts = msgp.AppendInt(bts, 1)

		var out Snapshot
		_, err := out.UnmarshalMsg(bts)
		assert.Error(t, err, field)
		assert.Nil(t, out.Keys, field)
		assert.Nil(t, out.Children, field)
	}
}

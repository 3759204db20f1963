package btree

import (
	"github.com/tinylib/msgp/msgp"
)

// Snapshot is a value copy of a tree's shape handed to renderers. It is never
// turned back into a Tree.
type Snapshot struct {
	Leaf     bool       `msg:"leaf"`
	Keys     []int      `msg:"keys"`
	Children []Snapshot `msg:"children"`
}

// Snapshot copies the current shape of the tree.
func (tree *Tree) Snapshot() Snapshot {
	return tree.root.snapshot()
}

func (n *Node) snapshot() Snapshot {
	s := Snapshot{
		Leaf: n.leaf,
		Keys: n.Keys(),
	}
	if len(n.children) > 0 {
		s.Children = make([]Snapshot, len(n.children))
		for i, child := range n.children {
			s.Children[i] = child.snapshot()
		}
	}
	return s
}

// Count returns the number of keys in the snapshot.
func (s Snapshot) Count() int {
	count := len(s.Keys)
	for _, child := range s.Children {
		count += child.Count()
	}
	return count
}

// The codec below is written by hand against the msgp runtime rather than
// generated. It encodes a Snapshot as a map with the fields leaf, keys and
// children.

// MarshalMsg implements msgp.Marshaler
func (z *Snapshot) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	o = msgp.AppendMapHeader(o, 3)
	o = msgp.AppendString(o, "leaf")
	o = msgp.AppendBool(o, z.Leaf)
	o = msgp.AppendString(o, "keys")
	o = msgp.AppendArrayHeader(o, uint32(len(z.Keys)))
	for _, key := range z.Keys {
		o = msgp.AppendInt(o, key)
	}
	o = msgp.AppendString(o, "children")
	o = msgp.AppendArrayHeader(o, uint32(len(z.Children)))
	for i := range z.Children {
		o, err = z.Children[i].MarshalMsg(o)
		if err != nil {
			err = msgp.WrapError(err, "Children", i)
			return
		}
	}
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *Snapshot) UnmarshalMsg(bts []byte) (o []byte, err error) {
	*z = Snapshot{}

	var field []byte
	var fields uint32
	fields, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		err = msgp.WrapError(err)
		return
	}
	for fields > 0 {
		fields--
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			err = msgp.WrapError(err)
			return
		}
		switch msgp.UnsafeString(field) {
		case "leaf":
			z.Leaf, bts, err = msgp.ReadBoolBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Leaf")
				return
			}
		case "keys":
			var n uint32
			n, bts, err = msgp.ReadArrayHeaderBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Keys")
				return
			}
			// every element takes at least one byte
			if uint64(n) > uint64(len(bts)) {
				err = msgp.WrapError(msgp.ErrShortBytes, "Keys")
				return
			}
			z.Keys = nil
			if n > 0 {
				z.Keys = make([]int, n)
			}
			for i := range z.Keys {
				z.Keys[i], bts, err = msgp.ReadIntBytes(bts)
				if err != nil {
					err = msgp.WrapError(err, "Keys", i)
					return
				}
			}
		case "children":
			var n uint32
			n, bts, err = msgp.ReadArrayHeaderBytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "Children")
				return
			}
			if uint64(n) > uint64(len(bts)) {
				err = msgp.WrapError(msgp.ErrShortBytes, "Children")
				return
			}
			z.Children = nil
			if n > 0 {
				z.Children = make([]Snapshot, n)
			}
			for i := range z.Children {
				bts, err = z.Children[i].UnmarshalMsg(bts)
				if err != nil {
					err = msgp.WrapError(err, "Children", i)
					return
				}
			}
		default:
			bts, err = msgp.Skip(bts)
			if err != nil {
				err = msgp.WrapError(err)
				return
			}
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *Snapshot) Msgsize() (s int) {
	s = msgp.MapHeaderSize +
		msgp.StringPrefixSize + len("leaf") + msgp.BoolSize +
		msgp.StringPrefixSize + len("keys") + msgp.ArrayHeaderSize + len(z.Keys)*msgp.IntSize +
		msgp.StringPrefixSize + len("children") + msgp.ArrayHeaderSize
	for i := range z.Children {
		s += z.Children[i].Msgsize()
	}
	return
}

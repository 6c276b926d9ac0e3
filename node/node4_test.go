package node

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNode4(t *testing.T) {
	Convey("Given a Node4", t, func() {
		n := &Node4[int]{}

		Convey("When checking basic properties", func() {
			So(n.Type(), ShouldEqual, TypeNode4)
			So(n.Full(), ShouldBeFalse)
			So(n.NumChildren(), ShouldEqual, 0)
		})

		Convey("When adding children", func() {
			child1 := NewLeaf([]byte("a"), 1)
			child2 := NewLeaf([]byte("b"), 2)
			child3 := NewLeaf([]byte("c"), 3)
			child4 := NewLeaf([]byte("d"), 4)

			Convey("Adding first child", func() {
				n.AddChild('a', child1)
				So(n.NumChildren(), ShouldEqual, 1)
				So(n.Keys[0], ShouldEqual, byte('a'))
				So(n.Children[0], ShouldEqual, Node[int](child1))
			})

			Convey("Adding children out of order keeps them sorted", func() {
				n.AddChild('c', child3)
				n.AddChild('a', child1)
				n.AddChild('b', child2)

				So(n.NumChildren(), ShouldEqual, 3)
				So(n.Keys[0], ShouldEqual, byte('a'))
				So(n.Keys[1], ShouldEqual, byte('b'))
				So(n.Keys[2], ShouldEqual, byte('c'))
			})

			Convey("Adding a fourth child fills the node", func() {
				n.AddChild('d', child4)
				n.AddChild('b', child2)
				n.AddChild('a', child1)
				n.AddChild('c', child3)

				So(n.NumChildren(), ShouldEqual, 4)
				So(n.Full(), ShouldBeTrue)
			})
		})

		Convey("When finding children", func() {
			child1 := NewLeaf([]byte("a"), 1)
			child2 := NewLeaf([]byte("b"), 2)

			n.AddChild('a', child1)
			n.AddChild('b', child2)

			Convey("Finding an existing child", func() {
				found := n.FindChild('a')
				So(found, ShouldNotBeNil)
				So(*found, ShouldEqual, Node[int](child1))
			})

			Convey("Finding a missing child", func() {
				found := n.FindChild('z')
				So(found, ShouldBeNil)
			})

			Convey("Finding the terminator before it is set", func() {
				found := n.FindChild(-1)
				So(found, ShouldNotBeNil)
				So(*found, ShouldBeNil)
			})
		})

		Convey("When growing to Node16", func() {
			for i := 0; i < 4; i++ {
				n.AddChild(int('a'+i), NewLeaf([]byte{byte('a' + i)}, i))
			}

			grown := n.Grow()
			So(grown.Type(), ShouldEqual, TypeNode16)
			So(grown.NumChildren(), ShouldEqual, 4)
		})

		Convey("When shrinking a single-child node", func() {
			n.SetPrefix([]byte("pre"))
			child := NewLeaf([]byte("prexvalue"), 42)
			n.AddChild('x', child)

			replacement, shrank := n.Shrink(0)

			Convey("it merges itself into its only child", func() {
				So(shrank, ShouldBeTrue)
				So(replacement, ShouldEqual, Node[int](child))
			})
		})

		Convey("When the node has a terminator and a single byte child, it does not collapse", func() {
			n.SetPrefix(nil)
			n.AddChild(-1, NewLeaf([]byte("p"), 1))
			n.AddChild('x', NewLeaf([]byte("px"), 2))

			_, shrank := n.Shrink(0)
			So(shrank, ShouldBeFalse)
		})

		Convey("When the byte child is removed, leaving only the terminator, it collapses to that leaf", func() {
			n.SetPrefix(nil)
			term := NewLeaf([]byte("p"), 1)
			n.AddChild(-1, term)
			n.AddChild('x', NewLeaf([]byte("px"), 2))

			n.RemoveChild('x')
			replacement, shrank := n.Shrink(0)

			So(shrank, ShouldBeTrue)
			So(replacement, ShouldEqual, Node[int](term))
		})

		Convey("When getting minimum and maximum", func() {
			Convey("an empty node has neither", func() {
				So(n.Minimum(), ShouldBeNil)
				So(n.Maximum(), ShouldBeNil)
			})

			Convey("a populated node orders by key byte", func() {
				child1 := NewLeaf([]byte("a"), 1)
				child3 := NewLeaf([]byte("c"), 3)

				n.AddChild('c', child3)
				n.AddChild('a', child1)

				So(n.Minimum(), ShouldEqual, child1)
				So(n.Maximum(), ShouldEqual, child3)
			})

			Convey("a terminator is always the minimum", func() {
				term := NewLeaf([]byte("p"), 0)
				n.AddChild(-1, term)
				n.AddChild('x', NewLeaf([]byte("px"), 1))

				So(n.Minimum(), ShouldEqual, term)
			})
		})
	})
}

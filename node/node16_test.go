package node

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNode16(t *testing.T) {
	Convey("Given a Node16", t, func() {
		n := &Node16[int]{}

		Convey("When checking basic properties", func() {
			So(n.Type(), ShouldEqual, TypeNode16)
			So(n.Full(), ShouldBeFalse)
		})

		Convey("When filling it to capacity", func() {
			for i := 0; i < 16; i++ {
				n.AddChild(i, NewLeaf([]byte{byte(i)}, i))
			}
			So(n.NumChildren(), ShouldEqual, 16)
			So(n.Full(), ShouldBeTrue)

			Convey("every key is findable and sorted", func() {
				for i := 0; i < 16; i++ {
					found := n.FindChild(i)
					So(found, ShouldNotBeNil)
				}
				for i := 1; i < 16; i++ {
					So(n.Keys[i-1], ShouldBeLessThan, n.Keys[i])
				}
			})

			Convey("growing produces a Node48 with the same children", func() {
				grown := n.Grow()
				So(grown.Type(), ShouldEqual, TypeNode48)
				So(grown.NumChildren(), ShouldEqual, 16)
				for i := 0; i < 16; i++ {
					So(grown.FindChild(i), ShouldNotBeNil)
				}
			})
		})

		Convey("When removing a child", func() {
			for i := 0; i < 5; i++ {
				n.AddChild(i, NewLeaf([]byte{byte(i)}, i))
			}
			n.RemoveChild(2)

			So(n.NumChildren(), ShouldEqual, 4)
			So(n.FindChild(2), ShouldBeNil)

			Convey("dropping to 3 children shrinks to Node4", func() {
				n.RemoveChild(3)
				replacement, shrank := n.Shrink(0)
				So(shrank, ShouldBeTrue)
				So(replacement.Type(), ShouldEqual, TypeNode4)
				So(replacement.NumChildren(), ShouldEqual, 3)
			})
		})
	})
}

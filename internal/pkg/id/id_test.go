package id

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestID(t *testing.T) {
	Convey("id 生成", t, func() {
		Convey("New 生成合法且不重复的 UUID", func() {
			a, b := New(), New()
			So(IsValid(a), ShouldBeTrue)
			So(a, ShouldNotEqual, b)
		})

		Convey("NewRequestID 为8位十六进制", func() {
			rid := NewRequestID()
			So(len(rid), ShouldEqual, 8)
			So(rid, ShouldNotContainSubstring, "-")
		})

		Convey("IsValid 拒绝非 UUID", func() {
			So(IsValid("not-a-uuid"), ShouldBeFalse)
		})
	})
}

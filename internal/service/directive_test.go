package service

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseDirective(t *testing.T) {
	Convey("ParseDirective 从 model 字段解析语言对", t, func() {
		Convey("三段: 前缀-源语言-目标语言", func() {
			d, err := ParseDirective("x-en-fr")
			So(err, ShouldBeNil)
			So(d, ShouldResemble, Directive{Source: "en", Target: "fr"})
		})

		Convey("两段: 源语言为空表示自动检测", func() {
			d, err := ParseDirective("x-fr")
			So(err, ShouldBeNil)
			So(d, ShouldResemble, Directive{Source: "", Target: "fr"})
		})

		Convey("不校验语言代码", func() {
			d, err := ParseDirective("deepl-??-klingon")
			So(err, ShouldBeNil)
			So(d.Target, ShouldEqual, "klingon")
		})

		Convey("其他段数均为格式错误", func() {
			for _, m := range []string{"", "gpt4", "gpt-4-turbo-preview", "a-b-c-d", "x-en-fr-"} {
				_, err := ParseDirective(m)
				So(err, ShouldEqual, ErrInvalidModelFormat)
			}
		})
	})
}

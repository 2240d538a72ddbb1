package model

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMessageContent_UnmarshalJSON(t *testing.T) {
	Convey("content 按 JSON 形态解码", t, func() {
		Convey("字符串", func() {
			var m Message
			So(json.Unmarshal([]byte(`{"role":"user","content":"Hello"}`), &m), ShouldBeNil)
			So(m.Content.Kind, ShouldEqual, ContentText)
			So(m.Content.PlainText(), ShouldEqual, "Hello")
		})

		Convey("字符串数组只取第一个元素", func() {
			var m Message
			So(json.Unmarshal([]byte(`{"role":"user","content":["first","second"]}`), &m), ShouldBeNil)
			So(m.Content.Kind, ShouldEqual, ContentParts)
			So(m.Content.PlainText(), ShouldEqual, "first")
		})

		Convey("对象数组取第一个元素的 text", func() {
			var m Message
			So(json.Unmarshal([]byte(`{"role":"user","content":[{"type":"text","text":"Hi"},{"type":"text","text":"there"}]}`), &m), ShouldBeNil)
			So(m.Content.PlainText(), ShouldEqual, "Hi")
		})

		Convey("缺失、null 与空数组均为空文本", func() {
			for _, raw := range []string{`{"role":"user"}`, `{"role":"user","content":null}`, `{"role":"user","content":[]}`} {
				var m Message
				So(json.Unmarshal([]byte(raw), &m), ShouldBeNil)
				So(m.Content.PlainText(), ShouldEqual, "")
			}
		})

		Convey("数字等其他形态报错", func() {
			var m Message
			So(json.Unmarshal([]byte(`{"role":"user","content":42}`), &m), ShouldNotBeNil)
		})

		Convey("数组元素既非字符串也非对象时报错且不暴露内部类型", func() {
			for _, raw := range []string{`{"role":"user","content":[42]}`, `{"role":"user","content":[{"text":5}]}`} {
				var m Message
				err := json.Unmarshal([]byte(raw), &m)
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldStartWith, "content part must be a string or an object")
				So(err.Error(), ShouldNotContainSubstring, "alias")
			}
		})
	})
}

func TestMessageContent_MarshalJSON(t *testing.T) {
	Convey("content 编码保留原始形态", t, func() {
		data, err := json.Marshal(Message{Role: RoleUser, Content: TextContent("Hello")})
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, `{"role":"user","content":"Hello"}`)

		data, err = json.Marshal(Message{Role: RoleUser, Content: PartsContent(TextPart("a"), ContentPart{Type: "text", Text: "b"})})
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, `{"role":"user","content":["a",{"type":"text","text":"b"}]}`)

		data, err = json.Marshal(Message{Role: RoleUser})
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, `{"role":"user","content":null}`)
	})
}

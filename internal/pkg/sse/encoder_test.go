package sse

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"transgate/internal/model"
	"transgate/internal/pkg/id"
)

func TestEncode(t *testing.T) {
	Convey("Encode 产生一个数据帧和一个结束帧", t, func() {
		chunk := NewChunk("x-en-fr", "Bonjour")
		events := Encode(chunk)
		So(len(events), ShouldEqual, 2)

		Convey("数据帧为合法的 chat.completion.chunk", func() {
			frame := string(events[0])
			So(strings.HasPrefix(frame, "data: "), ShouldBeTrue)
			So(strings.HasSuffix(frame, "\n\n"), ShouldBeTrue)

			var got map[string]any
			So(json.Unmarshal([]byte(strings.TrimSuffix(strings.TrimPrefix(frame, "data: "), "\n\n")), &got), ShouldBeNil)
			So(got["object"], ShouldEqual, model.ChunkObject)
			So(got["model"], ShouldEqual, "x-en-fr")
			So(id.IsValid(got["id"].(string)), ShouldBeTrue)

			choice := got["choices"].([]any)[0].(map[string]any)
			So(choice["index"], ShouldEqual, float64(0))
			So(choice["finish_reason"], ShouldBeNil)
			So(choice["delta"].(map[string]any)["content"], ShouldEqual, "Bonjour")
		})

		Convey("结束帧固定为 [DONE]", func() {
			So(string(events[1]), ShouldEqual, "data: [DONE]\n\n")
		})
	})

	Convey("相同输入除 id 与 created 外输出一致", t, func() {
		a, b := NewChunk("x-fr", "Salut"), NewChunk("x-fr", "Salut")
		So(a.ID, ShouldNotEqual, b.ID)
		b.ID, b.Created = a.ID, a.Created
		So(bytes.Equal(Encode(a)[0], Encode(b)[0]), ShouldBeTrue)
	})
}

func TestStream(t *testing.T) {
	Convey("Stream 按顺序写出所有帧", t, func() {
		var buf bytes.Buffer
		So(Stream(&buf, Encode(NewChunk("x-fr", "Salut"))), ShouldBeNil)

		out := buf.String()
		So(strings.Count(out, "data: "), ShouldEqual, 2)
		So(strings.HasSuffix(out, DoneFrame), ShouldBeTrue)
	})
}

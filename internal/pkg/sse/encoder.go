package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"transgate/internal/model"
	"transgate/internal/pkg/id"
)

// DoneFrame 流结束标记
const DoneFrame = "data: [DONE]\n\n"

// Event 一帧 SSE 数据，已包含 "data: " 前缀和结尾空行
type Event []byte

// NewChunk 构造包含完整译文的单个 chat.completion.chunk
func NewChunk(modelName, content string) *model.CompletionChunk {
	return &model.CompletionChunk{
		ID:      id.New(),
		Object:  model.ChunkObject,
		Created: float64(time.Now().UnixNano()) / float64(time.Second),
		Model:   modelName,
		Choices: []model.ChunkChoice{
			{
				Index: 0,
				Delta: model.ChunkDelta{Content: content},
			},
		},
	}
}

// Encode 将 chunk 编码为两帧：数据帧与 [DONE] 结束帧
// 序列化失败属于程序错误，直接 panic
func Encode(chunk *model.CompletionChunk) []Event {
	data, err := json.Marshal(chunk)
	if err != nil {
		panic(fmt.Sprintf("sse: marshal completion chunk: %v", err))
	}
	return []Event{
		Event("data: " + string(data) + "\n\n"),
		Event(DoneFrame),
	}
}

// Stream 按顺序写出所有帧，每帧写完后 flush
func Stream(w io.Writer, events []Event) error {
	flusher, _ := w.(http.Flusher)
	for _, ev := range events {
		if _, err := w.Write(ev); err != nil {
			return fmt.Errorf("write sse event: %w", err)
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
	return nil
}

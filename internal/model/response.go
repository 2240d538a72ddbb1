package model

// ChunkObject chat.completion.chunk 对象类型
const ChunkObject = "chat.completion.chunk"

// CompletionChunk 流式响应片段，每个请求只构造一个
type CompletionChunk struct {
	ID      string        `json:"id"`
	Object  string        `json:"object"`
	Created float64       `json:"created"` // 秒级时间戳，保留小数
	Model   string        `json:"model"`
	Choices []ChunkChoice `json:"choices"`
}

// ChunkChoice 片段中的候选
type ChunkChoice struct {
	Index        int        `json:"index"`
	Delta        ChunkDelta `json:"delta"`
	FinishReason *string    `json:"finish_reason"`
}

// ChunkDelta 增量内容
type ChunkDelta struct {
	Content string `json:"content"`
}

// ModelList /v1/models 响应
type ModelList struct {
	Object string      `json:"object"`
	Data   []ModelCard `json:"data"`
}

// ModelCard 单个模型描述
type ModelCard struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

package model

// ChatRequest OpenAI chat completions 请求
// 三个字段均为必填；Stream 被接受但不参与分支，响应始终为 SSE
type ChatRequest struct {
	Messages []Message `json:"messages" binding:"required"`
	Stream   *bool     `json:"stream" binding:"required"`
	Model    string    `json:"model" binding:"required"`
}

// Message 对话消息
type Message struct {
	Role    string         `json:"role"`
	Content MessageContent `json:"content"`
}

// 消息角色
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

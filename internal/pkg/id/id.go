package id

import (
	"strings"

	"github.com/google/uuid"
)

// New 生成新的UUID（string格式），用作 chat.completion.chunk 的 id
func New() string {
	return uuid.New().String()
}

// NewRequestID 生成8位请求ID，用于日志关联
func NewRequestID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// IsValid 验证UUID格式是否有效
func IsValid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

package service

import (
	"errors"
	"strings"
)

// DirectiveSeparator model 字段中语言段的分隔符
const DirectiveSeparator = "-"

// ErrInvalidModelFormat model 字段不是 2 段或 3 段
var ErrInvalidModelFormat = errors.New("invalid model format")

// Directive 从 model 字段解析出的语言对
// Source 为空表示由后端自动检测
type Directive struct {
	Source string
	Target string
}

// ParseDirective 解析 model 字段
//   - "prefix-src-dst" -> {src, dst}
//   - "prefix-dst"     -> {"", dst}
//
// 不校验语言代码，由后端决定是否支持
func ParseDirective(model string) (Directive, error) {
	parts := strings.Split(model, DirectiveSeparator)
	switch len(parts) {
	case 3:
		return Directive{Source: parts[1], Target: parts[2]}, nil
	case 2:
		return Directive{Source: "", Target: parts[1]}, nil
	default:
		return Directive{}, ErrInvalidModelFormat
	}
}

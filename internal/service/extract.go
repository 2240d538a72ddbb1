package service

import (
	"errors"

	"transgate/internal/model"
)

// ErrNoUserMessage 没有可翻译的用户消息
var ErrNoUserMessage = errors.New("no user message found")

// LastUserText 返回序列中最后一条 user 消息的文本，后出现的覆盖先出现的
func LastUserText(messages []model.Message) string {
	text := ""
	for _, msg := range messages {
		if msg.Role == model.RoleUser {
			text = msg.Content.PlainText()
		}
	}
	return text
}

// ExtractUserText 提取待翻译文本，为空时返回 ErrNoUserMessage
func ExtractUserText(messages []model.Message) (string, error) {
	text := LastUserText(messages)
	if text == "" {
		return "", ErrNoUserMessage
	}
	return text, nil
}

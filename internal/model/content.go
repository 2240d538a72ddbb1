package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ContentKind 消息内容的形态
type ContentKind int

const (
	ContentNone  ContentKind = iota // content 缺失或为 null
	ContentText                     // content 为字符串
	ContentParts                    // content 为数组
)

// ContentPart 多段内容中的一段，可能是字符串或 {"type":"text","text":"..."}
type ContentPart struct {
	Type string `json:"type,omitempty"`
	Text string `json:"text,omitempty"`
	raw  bool   // 原始 JSON 为字符串
}

// MessageContent content 字段: Text(string) | Parts([]ContentPart)
type MessageContent struct {
	Kind  ContentKind
	Text  string
	Parts []ContentPart
}

// TextContent 构造字符串形态的内容
func TextContent(s string) MessageContent {
	return MessageContent{Kind: ContentText, Text: s}
}

// PartsContent 构造数组形态的内容
func PartsContent(parts ...ContentPart) MessageContent {
	return MessageContent{Kind: ContentParts, Parts: parts}
}

// TextPart 构造字符串形态的片段
func TextPart(s string) ContentPart {
	return ContentPart{Text: s, raw: true}
}

// UnmarshalJSON 按 JSON 形态区分字符串与数组
func (c *MessageContent) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = MessageContent{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = TextContent(s)
		return nil
	case '[':
		var parts []ContentPart
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		*c = PartsContent(parts...)
		return nil
	default:
		return fmt.Errorf("content must be a string or an array, got %s", data)
	}
}

// MarshalJSON 还原为原始形态
func (c MessageContent) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case ContentText:
		return json.Marshal(c.Text)
	case ContentParts:
		return json.Marshal(c.Parts)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON 片段可以是字符串或对象
func (p *ContentPart) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = TextPart(s)
		return nil
	}

	if len(data) == 0 || data[0] != '{' {
		return fmt.Errorf("content part must be a string or an object, got %s", data)
	}

	type alias ContentPart
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return errors.New("content part must be a string or an object with string fields")
	}
	*p = ContentPart(a)
	return nil
}

// MarshalJSON 字符串片段按字符串输出
func (p ContentPart) MarshalJSON() ([]byte, error) {
	if p.raw {
		return json.Marshal(p.Text)
	}
	type alias ContentPart
	return json.Marshal(alias(p))
}

// PlainText 返回内容对应的文本：字符串直接使用，数组只取第一个元素
func (c MessageContent) PlainText() string {
	switch c.Kind {
	case ContentText:
		return c.Text
	case ContentParts:
		if len(c.Parts) == 0 {
			return ""
		}
		return c.Parts[0].Text
	default:
		return ""
	}
}

package deeplx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"transgate/internal/pkg/ctxutil"
)

// codeOK 后端响应体中表示成功的 code
const codeOK = 200

// Result 翻译结果
type Result struct {
	TargetLang string
	Text       string
}

// Client DeepLX 风格翻译后端客户端
// 每次调用只发起一次请求，不重试
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// Option 客户端选项
type Option func(*Client)

// WithHTTPClient 使用自定义 http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient 创建翻译客户端，timeout 为 0 时不设置超时
func NewClient(apiURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIURL 返回后端地址
func (c *Client) APIURL() string {
	return c.apiURL
}

// CloseIdleConnections 关闭空闲连接
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// Translate 翻译文本，sourceLang 为空表示自动检测
// 源语言与目标语言相同时直接返回原文，不访问后端
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (*Result, error) {
	if sourceLang == targetLang {
		return &Result{TargetLang: targetLang, Text: text}, nil
	}

	payload, err := BuildPayload(text, sourceLang, targetLang)
	if err != nil {
		return nil, fmt.Errorf("build translation payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create translation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if rid, ok := ctxutil.GetRequestID(ctx); ok {
		req.Header.Set("X-Request-ID", rid)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send translation request: %w", err)
	}
	defer resp.Body.Close()

	log.Ctx(ctx).Info().
		Str("source_lang", sourceLang).
		Str("target_lang", targetLang).
		Dur("took", time.Since(start)).
		Msg("translation backend responded")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read translation response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Ctx(ctx).Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("translation failed")
		return nil, &HTTPError{Status: resp.StatusCode, Body: string(body)}
	}

	result := gjson.ParseBytes(body)
	if code := result.Get("code"); code.Int() != codeOK {
		log.Ctx(ctx).Error().Str("body", string(body)).Msg("translation failed")
		return nil, &LogicalError{Code: code.Int(), Body: string(body)}
	}

	return &Result{TargetLang: targetLang, Text: result.Get("data").String()}, nil
}

// BuildPayload 构造请求体，sourceLang 为空时不带 source_lang 字段
func BuildPayload(text, sourceLang, targetLang string) ([]byte, error) {
	payload := []byte(`{}`)
	var err error

	if payload, err = sjson.SetBytes(payload, "text", text); err != nil {
		return nil, err
	}
	if sourceLang != "" {
		if payload, err = sjson.SetBytes(payload, "source_lang", sourceLang); err != nil {
			return nil, err
		}
	}
	return sjson.SetBytes(payload, "target_lang", targetLang)
}

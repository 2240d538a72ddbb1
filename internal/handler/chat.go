package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"transgate/internal/model"
	"transgate/internal/pkg/deeplx"
	"transgate/internal/pkg/sse"
	"transgate/internal/service"
)

// 校验失败时返回的纯文本
const (
	msgInvalidModel  = "Invalid model format."
	msgNoUserMessage = "No user message found."
	msgTranslateFail = "Translation failed"
)

// ChatHandler chat completions 处理器
type ChatHandler struct {
	svc *service.TranslateService
}

// NewChatHandler 创建 chat completions 处理器
func NewChatHandler(svc *service.TranslateService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// ChatCompletions 以 chat completions 流式协议返回翻译结果
// @Summary      翻译 (OpenAI chat completions 兼容)
// @Description  model 形如 prefix-源语言-目标语言 或 prefix-目标语言，最后一条 user 消息为待翻译文本
// @Tags         chat
// @Accept       json
// @Produce      text/event-stream
// @Param        request  body      model.ChatRequest  true  "chat completions 请求"
// @Success      200      {string}  string  "SSE: 一个 chat.completion.chunk 与 [DONE]"
// @Failure      400      {string}  string  "Invalid model format. / No user message found."
// @Failure      422      {object}  model.ErrorResponse
// @Failure      500      {object}  model.ErrorResponse
// @Router       /v1/chat/completions [post]
func (h *ChatHandler) ChatCompletions(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, model.ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	logger := log.Ctx(c.Request.Context())
	logger.Info().
		Str("model", req.Model).
		Bool("stream", *req.Stream).
		Int("messages", len(req.Messages)).
		Msg("received request")

	job, err := h.svc.Prepare(c.Request.Context(), &req)
	switch {
	case errors.Is(err, service.ErrInvalidModelFormat):
		c.String(http.StatusBadRequest, msgInvalidModel)
		return
	case errors.Is(err, service.ErrNoUserMessage):
		c.String(http.StatusBadRequest, msgNoUserMessage)
		return
	case err != nil:
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	events, err := h.svc.Run(c.Request.Context(), job)
	if err != nil {
		status, resp := backendError(err)
		logger.Error().Err(err).Int("status", status).Msg("translation request failed")
		c.JSON(status, resp)
		return
	}

	// 设置 SSE headers
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	if err := sse.Stream(c.Writer, events); err != nil {
		logger.Warn().Err(err).Msg("client went away while streaming")
	}
}

// backendError 将翻译后端错误映射为 HTTP 状态码
func backendError(err error) (int, model.ErrorResponse) {
	var httpErr *deeplx.HTTPError
	var logicalErr *deeplx.LogicalError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Status, model.ErrorResponse{Code: httpErr.Status, Message: msgTranslateFail, Detail: httpErr.Body}
	case errors.As(err, &logicalErr):
		return http.StatusBadRequest, model.ErrorResponse{Code: http.StatusBadRequest, Message: msgTranslateFail, Detail: logicalErr.Body}
	default:
		return http.StatusBadGateway, model.ErrorResponse{Code: http.StatusBadGateway, Message: msgTranslateFail, Detail: err.Error()}
	}
}

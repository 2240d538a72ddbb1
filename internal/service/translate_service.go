package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"transgate/internal/model"
	"transgate/internal/pkg/deeplx"
	"transgate/internal/pkg/sse"
)

// Translator 翻译后端
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (*deeplx.Result, error)
}

// TranslateService 翻译服务 - 业务逻辑层
// 职责: 解析语言对 -> 提取文本 -> 调用翻译后端 -> 编码为 SSE 帧
type TranslateService struct {
	translator Translator
}

// NewTranslateService 创建翻译服务
func NewTranslateService(translator Translator) *TranslateService {
	return &TranslateService{translator: translator}
}

// Job 一次请求校验通过后的翻译任务
type Job struct {
	Model     string
	Directive Directive
	Text      string
}

// Prepare 校验请求，返回 ErrInvalidModelFormat 或 ErrNoUserMessage 时不应访问后端
func (s *TranslateService) Prepare(ctx context.Context, req *model.ChatRequest) (*Job, error) {
	directive, err := ParseDirective(req.Model)
	if err != nil {
		log.Ctx(ctx).Error().Str("model", req.Model).Msg("invalid model format")
		return nil, err
	}

	text, err := ExtractUserText(req.Messages)
	if err != nil {
		log.Ctx(ctx).Warn().Str("model", req.Model).Msg("no user message found")
		return nil, err
	}

	return &Job{Model: req.Model, Directive: directive, Text: text}, nil
}

// Run 调用翻译后端，完成后返回待写出的 SSE 帧
// 后端调用失败时不产生任何帧
func (s *TranslateService) Run(ctx context.Context, job *Job) ([]sse.Event, error) {
	logger := log.Ctx(ctx).With().
		Str("source_lang", job.Directive.Source).
		Str("target_lang", job.Directive.Target).
		Logger()

	logger.Info().Str("text", job.Text).Msg("translating")

	result, err := s.translator.Translate(ctx, job.Text, job.Directive.Source, job.Directive.Target)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("translated", result.Text).Msg("translated text")

	return sse.Encode(sse.NewChunk(job.Model, result.Text)), nil
}

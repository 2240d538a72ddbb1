package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "transgate/docs"
	"transgate/internal/config"
	"transgate/internal/handler"
	"transgate/internal/pkg/deeplx"
	"transgate/internal/server/middleware"
	"transgate/internal/service"
)

// Server HTTP 服务器
type Server struct {
	cfg        *config.Config
	engine     *gin.Engine
	translator *deeplx.Client
}

// New 创建服务器实例
func New(cfg *config.Config) (*Server, error) {
	return NewWithTranslator(cfg, deeplx.NewClient(cfg.Translation.APIURL, cfg.Translation.Timeout))
}

// NewWithTranslator 使用指定的翻译客户端创建服务器实例
func NewWithTranslator(cfg *config.Config, translator *deeplx.Client) (*Server, error) {
	// 设置 Gin 模式
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &Server{
		cfg:        cfg,
		engine:     gin.New(),
		translator: translator,
	}

	log.Info().
		Str("api_url", translator.APIURL()).
		Dur("timeout", cfg.Translation.Timeout).
		Msg("translation backend configured")

	// 设置路由
	srv.setupRoutes()

	return srv, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// 全局中间件
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logger())
	if s.cfg.Server.CORS {
		s.engine.Use(middleware.CORS())
	}
	if s.cfg.Log.DumpBody {
		s.engine.Use(middleware.DumpBody())
	}

	// 健康检查
	healthHandler := handler.NewHealthHandler(s.translator.APIURL())
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/ready", healthHandler.Ready)

	// Swagger 文档
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// OpenAI 兼容接口
	translateSvc := service.NewTranslateService(s.translator)
	chatHandler := handler.NewChatHandler(translateSvc)
	modelsHandler := handler.NewModelsHandler(s.cfg.Translation.Models, s.cfg.Translation.OwnedBy)

	v1 := s.engine.Group("/v1")
	{
		v1.POST("/chat/completions", chatHandler.ChatCompletions)
		v1.GET("/models", modelsHandler.Models)
	}
}

// Run 启动服务器
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	// 启动服务器
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待关闭信号或错误
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")
		s.translator.CloseIdleConnections()
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

// Engine 获取 Gin 引擎 (用于测试)
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	backendURL string
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(backendURL string) *HealthHandler {
	return &HealthHandler{backendURL: backendURL}
}

// Health 健康检查
// @Summary  健康检查
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready 就绪检查，只确认已配置后端地址，不主动探测后端
// @Summary  就绪检查
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Failure  503  {object}  map[string]string
// @Router   /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.backendURL == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "translation backend not configured",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"backend": h.backendURL,
	})
}

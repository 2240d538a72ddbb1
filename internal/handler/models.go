package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"transgate/internal/model"
)

// ModelsHandler /v1/models 处理器
type ModelsHandler struct {
	list model.ModelList
}

// NewModelsHandler 根据配置的 model 列表创建处理器
func NewModelsHandler(models []string, ownedBy string) *ModelsHandler {
	created := time.Now().Unix()
	list := model.ModelList{Object: "list", Data: make([]model.ModelCard, 0, len(models))}
	for _, m := range models {
		list.Data = append(list.Data, model.ModelCard{
			ID:      m,
			Object:  "model",
			Created: created,
			OwnedBy: ownedBy,
		})
	}
	return &ModelsHandler{list: list}
}

// Models 列出可用的语言对 model
// @Summary      模型列表
// @Tags         chat
// @Produce      json
// @Success      200  {object}  model.ModelList
// @Router       /v1/models [get]
func (h *ModelsHandler) Models(c *gin.Context) {
	c.JSON(http.StatusOK, h.list)
}

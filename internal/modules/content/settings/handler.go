package settings

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mrigtrishna/core/internal/pkg/response"
)

type Handler struct{ store Store }

func NewHandler(store Store) *Handler { return &Handler{store: store} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/settings")

	g.GET("", h.get)
	g.POST("", authMW, h.save)
}

// GET /settings: stored document or schema defaults
func (h *Handler) get(c *gin.Context) {
	doc, err := h.store.Get(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, doc)
}

// POST /settings: merge the submitted fields and upsert the singleton.
// Concurrent saves race with last-write-wins, acceptable for one operator.
func (h *Handler) save(c *gin.Context) {
	var dto UpdateSettingsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	current, err := h.store.Get(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	merged := applyUpdate(current, dto)
	merged.UpdatedAt = time.Now().UTC()
	if err := h.store.Replace(c.Request.Context(), merged); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, merged)
}

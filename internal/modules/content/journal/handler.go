package journal

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mrigtrishna/core/internal/models"
	"github.com/mrigtrishna/core/internal/pkg/response"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct{ store Store }

func NewHandler(store Store) *Handler { return &Handler{store: store} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/journal")

	g.GET("", h.list)
	g.POST("", authMW, h.create)
	g.DELETE("", authMW, h.delete)
}

// GET /journal: all entries, newest first
func (h *Handler) list(c *gin.Context) {
	entries, err := h.store.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, entries)
}

// POST /journal
func (h *Handler) create(c *gin.Context) {
	var dto CreateJournalDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry := models.JournalModel{
		Base:         models.NewBase(),
		Title:        dto.Title,
		Thumbnail:    dto.Thumbnail,
		Description:  dto.Description,
		HashnodeLink: dto.HashnodeLink,
	}
	if err := h.store.Insert(c.Request.Context(), &entry); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, entry)
}

// DELETE /journal?id=<hex>
func (h *Handler) delete(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("id"))
	if raw == "" {
		response.BadRequest(c, "id required")
		return
	}

	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		response.OKMessage(c, "deleted")
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OKMessage(c, "deleted")
}

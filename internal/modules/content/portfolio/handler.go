package portfolio

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
	g := rg.Group("/portfolio")

	g.GET("", h.list)
	g.POST("", authMW, h.create)
	g.DELETE("", authMW, h.delete)
}

// GET /portfolio: all items, newest first
func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// POST /portfolio
func (h *Handler) create(c *gin.Context) {
	var dto CreatePortfolioDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	category := strings.TrimSpace(dto.Category)
	if category == "" {
		category = models.DefaultPortfolioCategory
	}

	item := models.PortfolioModel{
		Base:           models.NewBase(),
		Title:          dto.Title,
		Image:          dto.Image,
		ArtstationLink: dto.ArtstationLink,
		Category:       category,
	}
	if err := h.store.Insert(c.Request.Context(), &item); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, item)
}

// DELETE /portfolio?id=<hex>
func (h *Handler) delete(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("id"))
	if raw == "" {
		response.BadRequest(c, "id required")
		return
	}

	// An unknown or malformed id deletes nothing and still succeeds.
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

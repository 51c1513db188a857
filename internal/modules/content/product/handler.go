package product

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mrigtrishna/core/internal/models"
	"github.com/mrigtrishna/core/internal/pkg/response"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct{ store Store }

func NewHandler(store Store) *Handler { return &Handler{store: store} }

// RegisterRoutes mounts the product resource under /products, with /shop as
// a read alias kept for compatibility with the original site.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	for _, prefix := range []string{"/products", "/shop"} {
		g := rg.Group(prefix)

		g.GET("", h.list)
		g.POST("", authMW, h.create)
		g.DELETE("", authMW, h.delete)
	}
}

// GET /products: all products, newest first
func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// POST /products
func (h *Handler) create(c *gin.Context) {
	var dto CreateProductDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item := models.ProductModel{
		Base:        models.NewBase(),
		Title:       dto.Title,
		Category:    dto.Category,
		Price:       dto.Price,
		Image:       dto.Image,
		GumroadLink: dto.GumroadLink,
	}
	if err := h.store.Insert(c.Request.Context(), &item); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, item)
}

// DELETE /products?id=<hex>
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

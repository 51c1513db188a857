package skill

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
	g := rg.Group("/skills")

	g.GET("", h.list)
	g.POST("", authMW, h.create)
	g.DELETE("", authMW, h.delete)
}

// GET /skills: all groups, oldest first
func (h *Handler) list(c *gin.Context) {
	skills, err := h.store.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, skills)
}

// POST /skills
func (h *Handler) create(c *gin.Context) {
	var dto CreateSkillDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tools := parseTools(dto.Tools)
	if len(tools) == 0 {
		response.BadRequest(c, "tools must contain at least one name")
		return
	}

	icon := models.SkillIcon(strings.TrimSpace(dto.Icon))
	if !icon.Valid() {
		icon = models.IconBox
	}

	skill := models.SkillModel{
		Base:     models.NewBase(),
		Title:    dto.Title,
		Category: dto.Category,
		Icon:     icon,
		Tools:    tools,
	}
	if err := h.store.Insert(c.Request.Context(), &skill); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, skill)
}

// DELETE /skills?id=<hex>
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

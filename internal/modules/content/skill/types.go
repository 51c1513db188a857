package skill

import (
	"context"
	"strings"

	"github.com/mrigtrishna/core/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateSkillDTO takes tools as one comma-separated string, the way the
// admin form submits it.
type CreateSkillDTO struct {
	Title    string `json:"title"    binding:"required"`
	Category string `json:"category" binding:"required"`
	Icon     string `json:"icon"`
	Tools    string `json:"tools"    binding:"required"`
}

type Store interface {
	List(ctx context.Context) ([]models.SkillModel, error)
	Insert(ctx context.Context, skill *models.SkillModel) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// parseTools splits a comma-separated tool string, trimming whitespace and
// dropping empty segments: "Blender, Unity ,  , Python" yields
// ["Blender", "Unity", "Python"].
func parseTools(raw string) []string {
	parts := strings.Split(raw, ",")
	tools := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tools = append(tools, p)
		}
	}
	return tools
}

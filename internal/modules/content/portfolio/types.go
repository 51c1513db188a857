package portfolio

import (
	"context"

	"github.com/mrigtrishna/core/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreatePortfolioDTO is the admin create payload. Category is optional and
// defaults server-side.
type CreatePortfolioDTO struct {
	Title          string `json:"title"          binding:"required"`
	Image          string `json:"image"          binding:"required,url"`
	ArtstationLink string `json:"artstationLink" binding:"required,url"`
	Category       string `json:"category"`
}

// Store is the portfolio collection access the handler needs.
type Store interface {
	List(ctx context.Context) ([]models.PortfolioModel, error)
	Insert(ctx context.Context, item *models.PortfolioModel) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

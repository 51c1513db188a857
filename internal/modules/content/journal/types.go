package journal

import (
	"context"

	"github.com/mrigtrishna/core/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateJournalDTO struct {
	Title        string `json:"title"        binding:"required"`
	Thumbnail    string `json:"thumbnail"    binding:"required,url"`
	Description  string `json:"description"  binding:"required"`
	HashnodeLink string `json:"hashnodeLink" binding:"required,url"`
}

type Store interface {
	List(ctx context.Context) ([]models.JournalModel, error)
	Insert(ctx context.Context, entry *models.JournalModel) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

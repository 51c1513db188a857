package product

import (
	"context"

	"github.com/mrigtrishna/core/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateProductDTO struct {
	Title       string `json:"title"       binding:"required"`
	Category    string `json:"category"    binding:"required"`
	Price       string `json:"price"       binding:"required"`
	Image       string `json:"image"       binding:"required,url"`
	GumroadLink string `json:"gumroadLink" binding:"required,url"`
}

type Store interface {
	List(ctx context.Context) ([]models.ProductModel, error)
	Insert(ctx context.Context, item *models.ProductModel) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

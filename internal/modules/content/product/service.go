package product

import (
	"context"

	"github.com/mrigtrishna/core/internal/database"
	"github.com/mrigtrishna/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoStore struct{ col *mongo.Collection }

func NewStore(db *database.DB) Store {
	return &mongoStore{col: db.Collection(models.ProductModel{}.CollectionName())}
}

func (s *mongoStore) List(ctx context.Context) ([]models.ProductModel, error) {
	cur, err := s.col.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	items := []models.ProductModel{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoStore) Insert(ctx context.Context, item *models.ProductModel) error {
	_, err := s.col.InsertOne(ctx, item)
	return err
}

func (s *mongoStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

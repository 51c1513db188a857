package portfolio

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

// NewStore returns a Mongo-backed portfolio store.
func NewStore(db *database.DB) Store {
	return &mongoStore{col: db.Collection(models.PortfolioModel{}.CollectionName())}
}

// List returns all items, newest first.
func (s *mongoStore) List(ctx context.Context) ([]models.PortfolioModel, error) {
	cur, err := s.col.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	items := []models.PortfolioModel{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoStore) Insert(ctx context.Context, item *models.PortfolioModel) error {
	_, err := s.col.InsertOne(ctx, item)
	return err
}

// Delete removes by id, best-effort: a missing document is not an error.
func (s *mongoStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

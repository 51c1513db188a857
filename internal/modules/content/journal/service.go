package journal

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
	return &mongoStore{col: db.Collection(models.JournalModel{}.CollectionName())}
}

func (s *mongoStore) List(ctx context.Context) ([]models.JournalModel, error) {
	cur, err := s.col.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	entries := []models.JournalModel{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *mongoStore) Insert(ctx context.Context, entry *models.JournalModel) error {
	_, err := s.col.InsertOne(ctx, entry)
	return err
}

func (s *mongoStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

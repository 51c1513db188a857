package skill

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
	return &mongoStore{col: db.Collection(models.SkillModel{}.CollectionName())}
}

// List returns all skill groups, oldest first, so the page keeps the order
// the admin created them in.
func (s *mongoStore) List(ctx context.Context) ([]models.SkillModel, error) {
	cur, err := s.col.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	skills := []models.SkillModel{}
	if err := cur.All(ctx, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

func (s *mongoStore) Insert(ctx context.Context, skill *models.SkillModel) error {
	_, err := s.col.InsertOne(ctx, skill)
	return err
}

func (s *mongoStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

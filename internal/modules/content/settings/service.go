package settings

import (
	"context"
	"errors"

	"github.com/mrigtrishna/core/internal/database"
	"github.com/mrigtrishna/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoStore struct{ col *mongo.Collection }

func NewStore(db *database.DB) Store {
	return &mongoStore{col: db.Collection(models.SettingsModel{}.CollectionName())}
}

func (s *mongoStore) Get(ctx context.Context) (models.SettingsModel, error) {
	var doc models.SettingsModel
	err := s.col.FindOne(ctx, bson.M{"_id": models.SettingsKey}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.SettingsModel{}, err
	}
	return doc, nil
}

func (s *mongoStore) Replace(ctx context.Context, doc models.SettingsModel) error {
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": models.SettingsKey}, doc,
		options.Replace().SetUpsert(true))
	return err
}

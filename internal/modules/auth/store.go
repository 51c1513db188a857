package auth

import (
	"context"
	"errors"

	"github.com/mrigtrishna/core/internal/database"
	"github.com/mrigtrishna/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoCodeStore struct{ col *mongo.Collection }

// NewCodeStore returns a Mongo-backed admin-code store.
func NewCodeStore(db *database.DB) CodeStore {
	return &mongoCodeStore{col: db.Collection(models.AdminCodeModel{}.CollectionName())}
}

func (s *mongoCodeStore) Find(ctx context.Context, email, code string) (*models.AdminCodeModel, error) {
	var rec models.AdminCodeModel
	err := s.col.FindOne(ctx, bson.M{"email": email, "code": code}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *mongoCodeStore) Insert(ctx context.Context, rec *models.AdminCodeModel) error {
	_, err := s.col.InsertOne(ctx, rec)
	return err
}

func (s *mongoCodeStore) DeleteByEmail(ctx context.Context, email string) error {
	_, err := s.col.DeleteMany(ctx, bson.M{"email": email})
	return err
}

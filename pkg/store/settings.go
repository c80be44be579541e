package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Settings struct {
	Theme string `bson:"theme" json:"theme"`
}

// DefaultSettings is what callers get before anything was ever saved.
func DefaultSettings() Settings {
	return Settings{Theme: "default"}
}

func NewSettingsRepository(s *Store) *SettingsRepository {
	return &SettingsRepository{s: s}
}

type SettingsRepository struct {
	s *Store
}

func (r *SettingsRepository) Get(ctx context.Context) (Settings, error) {
	coll, err := r.s.collection("settings")
	if err != nil {
		return Settings{}, err
	}

	var settings Settings
	err = coll.FindOne(ctx, bson.M{"_id": "site"}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("find settings: %w", err)
	}

	return settings, nil
}

func (r *SettingsRepository) SetTheme(ctx context.Context, theme string) error {
	coll, err := r.s.collection("settings")
	if err != nil {
		return err
	}

	opts := options.Update().SetUpsert(true)
	_, err = coll.UpdateOne(ctx, bson.M{"_id": "site"}, bson.M{"$set": bson.M{"theme": theme}}, opts)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	return nil
}

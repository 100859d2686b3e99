package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AboutRepo interface {
	EnsureAbout(ctx context.Context) error
	GetAbout(ctx context.Context) (*About, error)
	UpdateAbout(ctx context.Context, fields map[string]interface{}) (*About, error)
}

// EnsureAbout creates the empty singleton document if none exists. Running
// it once at startup keeps the read path free of the create-on-first-read
// race the lazy approach would have.
func (mdb *MongodbRepo) EnsureAbout(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, DBName, AboutColName)
	if err != nil {
		return fmt.Errorf("failed to ensure about document: %w", err)
	}

	now := time.Now()
	update := bson.M{
		"$setOnInsert": bson.M{
			"our_story":       "",
			"our_story_image": "",
			"mission":         "",
			"mission_image":   "",
			"vision":          "",
			"vision_image":    "",
			"values":          "",
			"team_members":    []TeamMember{},
			"journey_stats":   JourneyStats{},
			"social_media":    SocialMedia{},
			"created_at":      now,
			"updated_at":      now,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := col.UpdateOne(ctx, bson.M{}, update, opts); err != nil {
		return fmt.Errorf("error initializing about document: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) GetAbout(ctx context.Context) (*About, error) {
	col, err := mdb.GetCollection(ctx, DBName, AboutColName)
	if err != nil {
		return nil, fmt.Errorf("failed to get about document: %w", err)
	}

	var about About
	err = col.FindOne(ctx, bson.M{}).Decode(&about)
	if err == mongo.ErrNoDocuments {
		// Startup init normally guarantees presence; recover anyway.
		if err := mdb.EnsureAbout(ctx); err != nil {
			return nil, err
		}
		if err := col.FindOne(ctx, bson.M{}).Decode(&about); err != nil {
			return nil, fmt.Errorf("failed to read about document: %v", err)
		}
		return &about, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read about document: %v", err)
	}
	return &about, nil
}

func (mdb *MongodbRepo) UpdateAbout(ctx context.Context, fields map[string]interface{}) (*About, error) {
	if len(fields) == 0 {
		return mdb.GetAbout(ctx)
	}

	col, err := mdb.GetCollection(ctx, DBName, AboutColName)
	if err != nil {
		return nil, fmt.Errorf("failed to update about document: %w", err)
	}

	fields["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated About
	err = col.FindOneAndUpdate(ctx, bson.M{}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update about document: %v", err)
	}
	return &updated, nil
}

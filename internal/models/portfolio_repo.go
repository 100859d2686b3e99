package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PortfolioRepo interface {
	CreatePortfolio(ctx context.Context, item *Portfolio) (*Portfolio, error)
	ListPortfolio(ctx context.Context, search string) ([]*Portfolio, error)
	GetPortfolioByID(ctx context.Context, id primitive.ObjectID) (*Portfolio, error)
	UpdatePortfolio(ctx context.Context, id primitive.ObjectID, item *Portfolio) (*Portfolio, error)
	DeletePortfolio(ctx context.Context, id primitive.ObjectID) error
	CountPortfolio(ctx context.Context) (int64, error)
	RecentPortfolio(ctx context.Context, limit int) ([]*Portfolio, error)
}

func (mdb *MongodbRepo) CreatePortfolio(ctx context.Context, item *Portfolio) (*Portfolio, error) {
	if err := item.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare portfolio item for creation: %w", err)
	}

	col, err := mdb.GetCollection(ctx, DBName, PortfolioColName)
	if err != nil {
		return nil, fmt.Errorf("failed to create portfolio item: %w", err)
	}

	if _, err := col.InsertOne(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to insert portfolio item into database: %w", err)
	}
	return item, nil
}

func (mdb *MongodbRepo) ListPortfolio(ctx context.Context, search string) ([]*Portfolio, error) {
	col, err := mdb.GetCollection(ctx, DBName, PortfolioColName)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio: %w", err)
	}

	query := bson.M{}
	if search != "" {
		re := primitive.Regex{Pattern: search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"event_name": re},
			bson.M{"location": re},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date_uploaded", Value: -1}})
	cursor, err := col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding portfolio items: %v", err)
	}
	defer cursor.Close(ctx)

	var items []*Portfolio
	for cursor.Next(ctx) {
		var p Portfolio
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("error decoding portfolio item: %v", err)
		}
		items = append(items, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return items, nil
}

func (mdb *MongodbRepo) GetPortfolioByID(ctx context.Context, id primitive.ObjectID) (*Portfolio, error) {
	col, err := mdb.GetCollection(ctx, DBName, PortfolioColName)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio item: %w", err)
	}

	var item Portfolio
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find portfolio item by ID: %v", err)
	}
	return &item, nil
}

func (mdb *MongodbRepo) UpdatePortfolio(ctx context.Context, id primitive.ObjectID, item *Portfolio) (*Portfolio, error) {
	col, err := mdb.GetCollection(ctx, DBName, PortfolioColName)
	if err != nil {
		return nil, fmt.Errorf("failed to update portfolio item: %w", err)
	}

	update := bson.M{"$set": bson.M{
		"event_name":  item.EventName,
		"location":    item.Location,
		"timing":      item.Timing,
		"foot_count":  item.FootCount,
		"description": item.Description,
		"images":      item.Images,
		"updated_at":  time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Portfolio
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update portfolio item: %v", err)
	}
	return &updated, nil
}

func (mdb *MongodbRepo) DeletePortfolio(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DBName, PortfolioColName)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio item: %w", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting portfolio item: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) CountPortfolio(ctx context.Context) (int64, error) {
	col, err := mdb.GetCollection(ctx, DBName, PortfolioColName)
	if err != nil {
		return 0, fmt.Errorf("failed to count portfolio: %w", err)
	}
	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting portfolio items: %v", err)
	}
	return count, nil
}

func (mdb *MongodbRepo) RecentPortfolio(ctx context.Context, limit int) ([]*Portfolio, error) {
	col, err := mdb.GetCollection(ctx, DBName, PortfolioColName)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent portfolio: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date_uploaded", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding recent portfolio items: %v", err)
	}
	defer cursor.Close(ctx)

	var items []*Portfolio
	for cursor.Next(ctx) {
		var p Portfolio
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("error decoding portfolio item: %v", err)
		}
		items = append(items, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return items, nil
}

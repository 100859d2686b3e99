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

type ServiceRepo interface {
	CreateService(ctx context.Context, service *Service) (*Service, error)
	ListServices(ctx context.Context, search string) ([]*Service, error)
	GetServiceByID(ctx context.Context, id primitive.ObjectID) (*Service, error)
	GetServicesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*Service, error)
	UpdateService(ctx context.Context, id primitive.ObjectID, service *Service) (*Service, error)
	DeleteService(ctx context.Context, id primitive.ObjectID) error
	CountServices(ctx context.Context) (int64, error)
}

func (mdb *MongodbRepo) CreateService(ctx context.Context, service *Service) (*Service, error) {
	if err := service.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare service for creation: %w", err)
	}

	col, err := mdb.GetCollection(ctx, DBName, ServicesColName)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	if _, err := col.InsertOne(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to insert service into database: %w", err)
	}
	return service, nil
}

func (mdb *MongodbRepo) ListServices(ctx context.Context, search string) ([]*Service, error) {
	col, err := mdb.GetCollection(ctx, DBName, ServicesColName)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	query := bson.M{}
	if search != "" {
		re := primitive.Regex{Pattern: search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"short_desc": re},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding services: %v", err)
	}
	defer cursor.Close(ctx)

	var services []*Service
	for cursor.Next(ctx) {
		var s Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding service: %v", err)
		}
		services = append(services, &s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return services, nil
}

func (mdb *MongodbRepo) GetServiceByID(ctx context.Context, id primitive.ObjectID) (*Service, error) {
	col, err := mdb.GetCollection(ctx, DBName, ServicesColName)
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	var service Service
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&service)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find service by ID: %v", err)
	}
	return &service, nil
}

// GetServicesByIDs resolves booking references in one round trip.
func (mdb *MongodbRepo) GetServicesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*Service, error) {
	result := make(map[primitive.ObjectID]*Service, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	col, err := mdb.GetCollection(ctx, DBName, ServicesColName)
	if err != nil {
		return nil, fmt.Errorf("failed to get services: %w", err)
	}

	cursor, err := col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("error finding services by IDs: %v", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var s Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding service: %v", err)
		}
		result[s.ID] = &s
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return result, nil
}

func (mdb *MongodbRepo) UpdateService(ctx context.Context, id primitive.ObjectID, service *Service) (*Service, error) {
	col, err := mdb.GetCollection(ctx, DBName, ServicesColName)
	if err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	update := bson.M{"$set": bson.M{
		"name":       service.Name,
		"short_desc": service.ShortDesc,
		"full_desc":  service.FullDesc,
		"price":      service.Price,
		"images":     service.Images,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Service
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update service: %v", err)
	}
	return &updated, nil
}

func (mdb *MongodbRepo) DeleteService(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DBName, ServicesColName)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting service: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) CountServices(ctx context.Context) (int64, error) {
	col, err := mdb.GetCollection(ctx, DBName, ServicesColName)
	if err != nil {
		return 0, fmt.Errorf("failed to count services: %w", err)
	}
	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting services: %v", err)
	}
	return count, nil
}

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

type PackageRepo interface {
	UpsertPackage(ctx context.Context, pkg *Package) (*Package, error)
	ListPackages(ctx context.Context) ([]*Package, error)
	GetPackageByID(ctx context.Context, id primitive.ObjectID) (*Package, error)
}

// UpsertPackage is keyed by the package name; one document per tier.
func (mdb *MongodbRepo) UpsertPackage(ctx context.Context, pkg *Package) (*Package, error) {
	col, err := mdb.GetCollection(ctx, DBName, PackagesColName)
	if err != nil {
		return nil, fmt.Errorf("failed to save package: %w", err)
	}

	now := time.Now()
	filter := bson.M{"name": pkg.Name}
	update := bson.M{
		"$set": bson.M{
			"display_name": pkg.DisplayName,
			"price":        pkg.Price,
			"features":     pkg.Features,
			"is_featured":  pkg.IsFeatured,
			"updated_at":   now,
		},
		"$setOnInsert": bson.M{
			"name":       pkg.Name,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved Package
	if err := col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return nil, fmt.Errorf("error upserting package: %v", err)
	}
	return &saved, nil
}

func (mdb *MongodbRepo) ListPackages(ctx context.Context) ([]*Package, error) {
	col, err := mdb.GetCollection(ctx, DBName, PackagesColName)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding packages: %v", err)
	}
	defer cursor.Close(ctx)

	var packages []*Package
	for cursor.Next(ctx) {
		var p Package
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("error decoding package: %v", err)
		}
		packages = append(packages, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return packages, nil
}

func (mdb *MongodbRepo) GetPackageByID(ctx context.Context, id primitive.ObjectID) (*Package, error) {
	col, err := mdb.GetCollection(ctx, DBName, PackagesColName)
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	var pkg Package
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find package by ID: %v", err)
	}
	return &pkg, nil
}

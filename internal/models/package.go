package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Package tiers are fixed; one document per name, upserted by admins.
type Package struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required,oneof=basic premium luxury custom"`
	DisplayName string             `bson:"display_name" json:"displayName" validate:"required"`
	Price       string             `bson:"price" json:"price" validate:"required"`
	Features    []string           `bson:"features" json:"features"`
	IsFeatured  bool               `bson:"is_featured" json:"isFeatured"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

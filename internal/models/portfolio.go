package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxPortfolioImages caps the image list on a portfolio item.
const MaxPortfolioImages = 10

type Portfolio struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventName    string             `bson:"event_name" json:"eventName" validate:"required"`
	Images       []string           `bson:"images" json:"images" validate:"max=10"`
	Location     string             `bson:"location" json:"location" validate:"required"`
	Timing       string             `bson:"timing" json:"timing"`
	FootCount    int                `bson:"foot_count" json:"footCount" validate:"gte=0"`
	Description  string             `bson:"description" json:"description"`
	DateUploaded time.Time          `bson:"date_uploaded" json:"dateUploaded"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (p *Portfolio) BeforeCreate() error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.DateUploaded.IsZero() {
		p.DateUploaded = time.Now()
	}
	return nil
}

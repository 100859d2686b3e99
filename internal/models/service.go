package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxServiceImages caps the image list on a service.
const MaxServiceImages = 5

type Service struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Images    []string           `bson:"images" json:"images" validate:"max=5"`
	ShortDesc string             `bson:"short_desc" json:"shortDesc" validate:"required,max=200"`
	FullDesc  string             `bson:"full_desc" json:"fullDesc" validate:"required,min=100"`
	Price     float64            `bson:"price" json:"price" validate:"gte=0"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (s *Service) BeforeCreate() error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if s.Images == nil {
		s.Images = []string{}
	}
	return nil
}

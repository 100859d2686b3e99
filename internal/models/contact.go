package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ContactStatusNew  = "New"
	ContactStatusRead = "Read"
)

type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"first_name" json:"firstName" validate:"required"`
	LastName  string             `bson:"last_name" json:"lastName"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Phone     string             `bson:"phone" json:"phone"`
	Subject   string             `bson:"subject" json:"subject" validate:"required"`
	Message   string             `bson:"message" json:"message" validate:"required"`
	Status    string             `bson:"status" json:"status" validate:"omitempty,oneof=New Read"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (ct *Contact) BeforeCreate() error {
	if ct.ID.IsZero() {
		ct.ID = primitive.NewObjectID()
	}
	if ct.Status == "" {
		ct.Status = ContactStatusNew
	}
	return nil
}

func ValidContactStatus(s string) bool {
	return s == ContactStatusNew || s == ContactStatusRead
}

// ContactFilter narrows admin message listings.
type ContactFilter struct {
	Status string
	Search string
}

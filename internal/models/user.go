package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email" validate:"required,email"`
	Password    string             `bson:"password" json:"-" validate:"required,min=6"`
	FirstName   string             `bson:"first_name" json:"firstName" validate:"required"`
	LastName    string             `bson:"last_name" json:"lastName"`
	PhoneNumber string             `bson:"phone_number" json:"phoneNumber"`
	Location    string             `bson:"location" json:"location"`
	Profession  string             `bson:"profession" json:"profession"`
	ProfilePic  string             `bson:"profile_pic" json:"profilePic"`
	IsAdmin     bool               `bson:"is_admin" json:"isAdmin"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (u *User) BeforeCreate() error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	return nil
}

// FullName joins first and last names for display.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

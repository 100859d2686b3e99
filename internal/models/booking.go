package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingStatusNew       = "New"
	BookingStatusRead      = "Read"
	BookingStatusConfirmed = "Confirmed"
)

type Booking struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	FirstName   string              `bson:"first_name" json:"firstName" validate:"required"`
	LastName    string              `bson:"last_name" json:"lastName"`
	Email       string              `bson:"email" json:"email" validate:"required,email"`
	Phone       string              `bson:"phone" json:"phone"`
	EventType   string              `bson:"event_type" json:"eventType" validate:"required,oneof=Wedding Engagement Birthday Corporate Anniversary Other"`
	Date        time.Time           `bson:"date" json:"date" validate:"required"`
	Location    string              `bson:"location" json:"location" validate:"required,oneof=Islamabad Rawalpindi"`
	GuestCount  int                 `bson:"guest_count" json:"guestCount" validate:"required,min=1"`
	ServiceID   *primitive.ObjectID `bson:"service_id,omitempty" json:"serviceId,omitempty"`
	ServiceName string              `bson:"-" json:"serviceName,omitempty"`
	PackageType string              `bson:"package_type" json:"packageType" validate:"required,oneof=basic premium luxury custom"`
	Message     string              `bson:"message" json:"message"`
	Status      string              `bson:"status" json:"status" validate:"omitempty,oneof=New Read Confirmed"`
	CreatedAt   time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updatedAt"`
}

func (b *Booking) BeforeCreate() error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if b.Status == "" {
		b.Status = BookingStatusNew
	}
	return nil
}

// ValidBookingStatus reports whether s is an allowed status transition target.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusNew, BookingStatusRead, BookingStatusConfirmed:
		return true
	}
	return false
}

// BookingFilter narrows admin booking listings.
type BookingFilter struct {
	EventType string
	Status    string
	Search    string
}

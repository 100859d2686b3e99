package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/validation"
)

// ErrInvalidStatus rejects a status value outside the resource's enum.
var ErrInvalidStatus = errors.New("invalid status value")

type BookingService struct {
	bookings models.BookingRepo
	services models.ServiceRepo
}

func NewBookingService(bookings models.BookingRepo, services models.ServiceRepo) *BookingService {
	return &BookingService{
		bookings: bookings,
		services: services,
	}
}

// Submit validates a public booking request and persists it with status New.
func (bs *BookingService) Submit(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if result := validation.Struct(booking); !result.OK() {
		return nil, &validation.Error{Result: result}
	}
	return bs.bookings.CreateBooking(ctx, booking)
}

func (bs *BookingService) List(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error) {
	bookings, err := bs.bookings.ListBookings(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := bs.populateServiceNames(ctx, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (bs *BookingService) Get(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	booking, err := bs.bookings.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := bs.populateServiceNames(ctx, []*models.Booking{booking}); err != nil {
		return nil, err
	}
	return booking, nil
}

func (bs *BookingService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}
	return bs.bookings.UpdateBookingStatus(ctx, id, status)
}

func (bs *BookingService) Recent(ctx context.Context, limit int) ([]*models.Booking, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit")
	}
	return bs.bookings.RecentBookings(ctx, limit)
}

// populateServiceNames resolves the loose booking→service reference for
// display. A dangling reference after a service deletion simply yields an
// empty name; no cascade exists.
func (bs *BookingService) populateServiceNames(ctx context.Context, bookings []*models.Booking) error {
	var ids []primitive.ObjectID
	seen := make(map[primitive.ObjectID]struct{})
	for _, b := range bookings {
		if b.ServiceID == nil {
			continue
		}
		if _, ok := seen[*b.ServiceID]; ok {
			continue
		}
		seen[*b.ServiceID] = struct{}{}
		ids = append(ids, *b.ServiceID)
	}
	if len(ids) == 0 {
		return nil
	}

	byID, err := bs.services.GetServicesByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to resolve booking services: %w", err)
	}
	for _, b := range bookings {
		if b.ServiceID == nil {
			continue
		}
		if svc, ok := byID[*b.ServiceID]; ok {
			b.ServiceName = svc.Name
		}
	}
	return nil
}

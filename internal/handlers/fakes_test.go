package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fmhevents/elation/internal/models"
)

// Compact in-memory repos for wiring real services under httptest.

type fakeBookingRepo struct {
	bookings []*models.Booking
}

func (f *fakeBookingRepo) CreateBooking(_ context.Context, b *models.Booking) (*models.Booking, error) {
	if err := b.BeforeCreate(); err != nil {
		return nil, err
	}
	f.bookings = append(f.bookings, b)
	return b, nil
}

func (f *fakeBookingRepo) ListBookings(_ context.Context, _ models.BookingFilter) ([]*models.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) GetBookingByID(_ context.Context, id primitive.ObjectID) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeBookingRepo) UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Booking, error) {
	b, err := f.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Status = status
	return b, nil
}

func (f *fakeBookingRepo) CountBookings(_ context.Context, _ string) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) RecentBookings(_ context.Context, limit int) ([]*models.Booking, error) {
	if len(f.bookings) < limit {
		return f.bookings, nil
	}
	return f.bookings[:limit], nil
}

type fakeContactRepo struct {
	contacts []*models.Contact
}

func (f *fakeContactRepo) CreateContact(_ context.Context, ct *models.Contact) (*models.Contact, error) {
	if err := ct.BeforeCreate(); err != nil {
		return nil, err
	}
	f.contacts = append(f.contacts, ct)
	return ct, nil
}

func (f *fakeContactRepo) ListContacts(_ context.Context, _ models.ContactFilter) ([]*models.Contact, error) {
	return f.contacts, nil
}

func (f *fakeContactRepo) GetContactByID(_ context.Context, id primitive.ObjectID) (*models.Contact, error) {
	for _, ct := range f.contacts {
		if ct.ID == id {
			return ct, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeContactRepo) UpdateContactStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Contact, error) {
	ct, err := f.GetContactByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ct.Status = status
	return ct, nil
}

func (f *fakeContactRepo) CountContacts(_ context.Context, _ string) (int64, error) {
	return int64(len(f.contacts)), nil
}

func (f *fakeContactRepo) RecentContacts(_ context.Context, limit int) ([]*models.Contact, error) {
	if len(f.contacts) < limit {
		return f.contacts, nil
	}
	return f.contacts[:limit], nil
}

type fakeServiceRepo struct {
	services []*models.Service
}

func (f *fakeServiceRepo) CreateService(_ context.Context, s *models.Service) (*models.Service, error) {
	if err := s.BeforeCreate(); err != nil {
		return nil, err
	}
	f.services = append(f.services, s)
	return s, nil
}

func (f *fakeServiceRepo) ListServices(_ context.Context, _ string) ([]*models.Service, error) {
	return f.services, nil
}

func (f *fakeServiceRepo) GetServiceByID(_ context.Context, id primitive.ObjectID) (*models.Service, error) {
	for _, s := range f.services {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeServiceRepo) GetServicesByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.Service, error) {
	out := make(map[primitive.ObjectID]*models.Service)
	for _, s := range f.services {
		for _, id := range ids {
			if s.ID == id {
				out[id] = s
			}
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) UpdateService(ctx context.Context, id primitive.ObjectID, s *models.Service) (*models.Service, error) {
	existing, err := f.GetServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = s.Name
	existing.ShortDesc = s.ShortDesc
	existing.FullDesc = s.FullDesc
	existing.Price = s.Price
	existing.Images = s.Images
	return existing, nil
}

func (f *fakeServiceRepo) DeleteService(_ context.Context, id primitive.ObjectID) error {
	for i, s := range f.services {
		if s.ID == id {
			f.services = append(f.services[:i], f.services[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeServiceRepo) CountServices(_ context.Context) (int64, error) {
	return int64(len(f.services)), nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	if err := user.BeforeCreate(); err != nil {
		return nil, err
	}
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, id primitive.ObjectID, _ map[string]interface{}) (*models.User, error) {
	return f.GetUserByID(ctx, id)
}

func (f *fakeUserRepo) ListUsers(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) EnsureAdmin(_ context.Context, email, passwordHash string) error {
	f.users[email] = &models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  passwordHash,
		FirstName: "Admin",
		IsAdmin:   true,
	}
	return nil
}

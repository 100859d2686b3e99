package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fmhevents/elation/internal/models"
)

// In-memory repo fakes mirroring the Mongo implementations closely enough
// to exercise the service layer without a cluster.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	if _, ok := f.users[user.Email]; ok {
		return nil, fmt.Errorf("email already registered")
	}
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

func (f *fakeUserRepo) UpdateUser(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.User, error) {
	user, err := f.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v, ok := fields["first_name"].(string); ok {
		user.FirstName = v
	}
	if v, ok := fields["last_name"].(string); ok {
		user.LastName = v
	}
	if v, ok := fields["phone_number"].(string); ok {
		user.PhoneNumber = v
	}
	if v, ok := fields["location"].(string); ok {
		user.Location = v
	}
	if v, ok := fields["profession"].(string); ok {
		user.Profession = v
	}
	if v, ok := fields["profile_pic"].(string); ok {
		user.ProfilePic = v
	}
	return user, nil
}

func (f *fakeUserRepo) ListUsers(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) EnsureAdmin(_ context.Context, email, passwordHash string) error {
	if user, ok := f.users[email]; ok {
		user.Password = passwordHash
		user.IsAdmin = true
		return nil
	}
	f.users[email] = &models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  passwordHash,
		FirstName: "Admin",
		IsAdmin:   true,
	}
	return nil
}

type fakeBookingRepo struct {
	bookings []*models.Booking
}

func (f *fakeBookingRepo) CreateBooking(_ context.Context, booking *models.Booking) (*models.Booking, error) {
	if err := booking.BeforeCreate(); err != nil {
		return nil, err
	}
	f.bookings = append(f.bookings, booking)
	return booking, nil
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
	booking, err := f.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	booking.Status = status
	return booking, nil
}

func (f *fakeBookingRepo) CountBookings(_ context.Context, status string) (int64, error) {
	if status == "" {
		return int64(len(f.bookings)), nil
	}
	var n int64
	for _, b := range f.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
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

func (f *fakeContactRepo) CreateContact(_ context.Context, contact *models.Contact) (*models.Contact, error) {
	if err := contact.BeforeCreate(); err != nil {
		return nil, err
	}
	f.contacts = append(f.contacts, contact)
	return contact, nil
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
	contact, err := f.GetContactByID(ctx, id)
	if err != nil {
		return nil, err
	}
	contact.Status = status
	return contact, nil
}

func (f *fakeContactRepo) CountContacts(_ context.Context, status string) (int64, error) {
	if status == "" {
		return int64(len(f.contacts)), nil
	}
	var n int64
	for _, ct := range f.contacts {
		if ct.Status == status {
			n++
		}
	}
	return n, nil
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

func (f *fakeServiceRepo) CreateService(_ context.Context, service *models.Service) (*models.Service, error) {
	if err := service.BeforeCreate(); err != nil {
		return nil, err
	}
	f.services = append(f.services, service)
	return service, nil
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

func (f *fakeServiceRepo) UpdateService(ctx context.Context, id primitive.ObjectID, service *models.Service) (*models.Service, error) {
	existing, err := f.GetServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = service.Name
	existing.ShortDesc = service.ShortDesc
	existing.FullDesc = service.FullDesc
	existing.Price = service.Price
	existing.Images = service.Images
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

type fakePortfolioRepo struct {
	items []*models.Portfolio
}

func (f *fakePortfolioRepo) CreatePortfolio(_ context.Context, item *models.Portfolio) (*models.Portfolio, error) {
	if err := item.BeforeCreate(); err != nil {
		return nil, err
	}
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakePortfolioRepo) ListPortfolio(_ context.Context, _ string) ([]*models.Portfolio, error) {
	return f.items, nil
}

func (f *fakePortfolioRepo) GetPortfolioByID(_ context.Context, id primitive.ObjectID) (*models.Portfolio, error) {
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakePortfolioRepo) UpdatePortfolio(ctx context.Context, id primitive.ObjectID, item *models.Portfolio) (*models.Portfolio, error) {
	existing, err := f.GetPortfolioByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.EventName = item.EventName
	existing.Location = item.Location
	existing.Timing = item.Timing
	existing.FootCount = item.FootCount
	existing.Description = item.Description
	existing.Images = item.Images
	return existing, nil
}

func (f *fakePortfolioRepo) DeletePortfolio(_ context.Context, id primitive.ObjectID) error {
	for i, p := range f.items {
		if p.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakePortfolioRepo) CountPortfolio(_ context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakePortfolioRepo) RecentPortfolio(_ context.Context, limit int) ([]*models.Portfolio, error) {
	if len(f.items) < limit {
		return f.items, nil
	}
	return f.items[:limit], nil
}

type fakePackageRepo struct {
	packages map[string]*models.Package
}

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{packages: make(map[string]*models.Package)}
}

func (f *fakePackageRepo) UpsertPackage(_ context.Context, pkg *models.Package) (*models.Package, error) {
	if existing, ok := f.packages[pkg.Name]; ok {
		existing.DisplayName = pkg.DisplayName
		existing.Price = pkg.Price
		existing.Features = pkg.Features
		existing.IsFeatured = pkg.IsFeatured
		return existing, nil
	}
	pkg.ID = primitive.NewObjectID()
	f.packages[pkg.Name] = pkg
	return pkg, nil
}

func (f *fakePackageRepo) ListPackages(_ context.Context) ([]*models.Package, error) {
	out := make([]*models.Package, 0, len(f.packages))
	for _, p := range f.packages {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePackageRepo) GetPackageByID(_ context.Context, id primitive.ObjectID) (*models.Package, error) {
	for _, p := range f.packages {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, models.ErrNotFound
}

type fakeAboutRepo struct {
	about *models.About
}

func (f *fakeAboutRepo) EnsureAbout(_ context.Context) error {
	if f.about == nil {
		f.about = &models.About{ID: primitive.NewObjectID()}
	}
	return nil
}

func (f *fakeAboutRepo) GetAbout(ctx context.Context) (*models.About, error) {
	if f.about == nil {
		if err := f.EnsureAbout(ctx); err != nil {
			return nil, err
		}
	}
	return f.about, nil
}

func (f *fakeAboutRepo) UpdateAbout(ctx context.Context, fields map[string]interface{}) (*models.About, error) {
	about, err := f.GetAbout(ctx)
	if err != nil {
		return nil, err
	}
	if v, ok := fields["our_story"].(string); ok {
		about.OurStory = v
	}
	if v, ok := fields["mission"].(string); ok {
		about.Mission = v
	}
	if v, ok := fields["vision"].(string); ok {
		about.Vision = v
	}
	if v, ok := fields["values"].(string); ok {
		about.Values = v
	}
	if v, ok := fields["team_members"].([]models.TeamMember); ok {
		about.TeamMembers = v
	}
	if v, ok := fields["journey_stats"].(models.JourneyStats); ok {
		about.JourneyStats = v
	}
	if v, ok := fields["social_media"].(models.SocialMedia); ok {
		about.SocialMedia = v
	}
	return about, nil
}

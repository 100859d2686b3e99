package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/fmhevents/elation/internal/models"
	"github.com/fmhevents/elation/internal/session"
	"github.com/fmhevents/elation/internal/validation"
)

// ErrInvalidCredentials is deliberately generic: it never reveals whether
// the email exists or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

var ErrEmailTaken = errors.New("email already registered")

type AuthService struct {
	users    models.UserRepo
	sessions session.Store
}

func NewAuthService(users models.UserRepo, sessions session.Store) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// ProfileUpdate carries the editable profile fields; nil means unchanged.
type ProfileUpdate struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
	Location    *string `json:"location"`
	Profession  *string `json:"profession"`
}

func (as *AuthService) Signup(ctx context.Context, email, password, firstName, lastName string) (*models.User, string, error) {
	user := &models.User{
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Password:  password,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}
	if result := validation.Struct(user); !result.OK() {
		return nil, "", &validation.Error{Result: result}
	}

	if _, err := as.users.GetUserByEmail(ctx, user.Email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hash)

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	created, err := as.users.CreateUser(ctx, user)
	if err != nil {
		if strings.Contains(err.Error(), "already registered") {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	// Auto login after signup
	token := as.issueSession(created)
	return created, token, nil
}

func (as *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if err := validation.Var(email, "required,email"); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := as.users.GetUserByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("authentication failed: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := as.issueSession(user)
	return user, token, nil
}

func (as *AuthService) Logout(token string) {
	as.sessions.Destroy(token)
}

func (as *AuthService) GetProfile(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := as.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies the supplied fields. An empty first name keeps the
// stored value since the field is required.
func (as *AuthService) UpdateProfile(ctx context.Context, id primitive.ObjectID, update ProfileUpdate) (*models.User, error) {
	fields := map[string]interface{}{}
	if update.FirstName != nil && strings.TrimSpace(*update.FirstName) != "" {
		fields["first_name"] = strings.TrimSpace(*update.FirstName)
	}
	if update.LastName != nil {
		fields["last_name"] = strings.TrimSpace(*update.LastName)
	}
	if update.PhoneNumber != nil {
		fields["phone_number"] = strings.TrimSpace(*update.PhoneNumber)
	}
	if update.Location != nil {
		fields["location"] = strings.TrimSpace(*update.Location)
	}
	if update.Profession != nil {
		fields["profession"] = strings.TrimSpace(*update.Profession)
	}
	if len(fields) == 0 {
		return as.users.GetUserByID(ctx, id)
	}

	updated, err := as.users.UpdateUser(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (as *AuthService) SetProfilePicture(ctx context.Context, id primitive.ObjectID, path string) (*models.User, error) {
	updated, err := as.users.UpdateUser(ctx, id, map[string]interface{}{"profile_pic": path})
	if err != nil {
		return nil, fmt.Errorf("failed to update profile picture: %w", err)
	}
	return updated, nil
}

func (as *AuthService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return as.users.ListUsers(ctx)
}

// EnsureAdmin installs the bootstrap administrator from configuration so
// no credential pair ever lives in source.
func (as *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if err := validation.Var(email, "required,email"); err != nil {
		return fmt.Errorf("invalid admin email: %v", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	return as.users.EnsureAdmin(ctx, email, string(hash))
}

func (as *AuthService) issueSession(user *models.User) string {
	return as.sessions.Issue(session.Session{
		UserID:    user.ID.Hex(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsAdmin:   user.IsAdmin,
	})
}

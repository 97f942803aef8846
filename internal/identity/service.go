package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMissingCredentials indicates an empty email or password on signup.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrUnknownEmail and ErrWrongPassword distinguish login failure causes
	// internally; handlers collapse them into the client-facing messages.
	ErrUnknownEmail  = errors.New("no user with that email")
	ErrWrongPassword = errors.New("wrong password")
)

// Service manages identity lifecycle.
type Service struct {
	repo Repository
	cost int
}

// NewService creates a new identity service. A non-positive cost falls back to
// the bcrypt default.
func NewService(repo Repository, bcryptCost int) *Service {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, cost: bcryptCost}
}

// Register creates a new user with a hashed password and an empty cart.
// Missing cart keys read as zero, so no placeholder entries are seeded.
func (s *Service) Register(ctx context.Context, in Signup) (User, error) {
	if in.Email == "" || in.Password == "" {
		return User{}, ErrMissingCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Cart:         Cart{},
		CreatedAt:    time.Now().UTC(),
	}

	// The repository enforces email uniqueness as well, closing the window
	// between the lookup above and this insert.
	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}

	return user, nil
}

// Authenticate verifies an email/password pair and returns the matching user.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrUnknownEmail
		}
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return User{}, ErrWrongPassword
	}

	return user, nil
}

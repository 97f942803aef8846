package auth

import (
	"context"

	"github.com/kinsha-retail/kinsha_shop/internal/identity"
)

// Service couples identity checks with token issuance: signup and login both
// end with a bearer token bound to the user id.
type Service struct {
	ids    *identity.Service
	signer *Signer
}

// NewService builds an auth service.
func NewService(ids *identity.Service, signer *Signer) *Service {
	return &Service{ids: ids, signer: signer}
}

// Signup registers a new user and returns a token for the fresh identity.
func (s *Service) Signup(ctx context.Context, in identity.Signup) (identity.User, string, error) {
	user, err := s.ids.Register(ctx, in)
	if err != nil {
		return identity.User{}, "", err
	}
	token, err := s.signer.Issue(user.ID)
	if err != nil {
		return identity.User{}, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns a token on success.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.ids.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	return s.signer.Issue(user.ID)
}

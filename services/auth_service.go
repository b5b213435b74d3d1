package services

import (
	"crypto/subtle"

	"github.com/jrautos/jrautos-api/dto"
	"github.com/jrautos/jrautos-api/utils"
)

// AuthService validates the single shared admin credential. It is
// stateless: no session record, no expiry, no revocation.
type AuthService struct {
	secret string
}

// NewAuthService creates a new auth service instance.
func NewAuthService(secret string) *AuthService {
	return &AuthService{secret: secret}
}

// Login checks the submitted password against the configured secret and
// returns the derived bearer token.
func (s *AuthService) Login(password string) (*dto.AuthResponse, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.secret)) != 1 {
		return nil, ErrUnauthorized
	}
	return &dto.AuthResponse{
		Token:   utils.AdminToken(s.secret),
		Message: "Login successful",
	}, nil
}

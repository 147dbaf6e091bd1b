// internal/services/auth_service.go
package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/epocha/admin-backend/internal/config"
	"github.com/epocha/admin-backend/internal/utils"
)

// AuthService validates the single operator credential pair and
// issues session-cookie tokens. There is no user table: credentials
// live in configuration.
type AuthService struct {
	auth   *config.AuthConfig
	tokens *utils.TokenManager
}

func NewAuthService(auth *config.AuthConfig, tokens *utils.TokenManager) *AuthService {
	return &AuthService{
		auth:   auth,
		tokens: tokens,
	}
}

// VerifyCredentials compares the submitted pair against the
// configured operator secrets. When PASSWORD_HASH is set the check is
// a bcrypt compare; otherwise both sides are reduced to SHA-256
// digests and compared in constant time.
func (s *AuthService) VerifyCredentials(login, password string) bool {
	if subtle.ConstantTimeCompare([]byte(login), []byte(s.auth.Login)) != 1 {
		return false
	}

	if s.auth.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.auth.PasswordHash), []byte(password)) == nil
	}

	given := sha256.Sum256([]byte(password))
	want := sha256.Sum256([]byte(s.auth.Password))
	return subtle.ConstantTimeCompare(given[:], want[:]) == 1
}

// IssueSession mints a signed session token for the operator.
func (s *AuthService) IssueSession(login string) (string, time.Duration, error) {
	token, err := s.tokens.Generate(login)
	if err != nil {
		return "", 0, err
	}
	return token, s.tokens.TTL(), nil
}

package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mohammedmokhtar77/Bank-System/internal/bank"
	"github.com/mohammedmokhtar77/Bank-System/internal/middleware"
)

// AuthService exchanges account credentials for session tokens. The
// credential check is the account's own exact-match comparison; the
// token only gates the HTTP surface, transfers re-authenticate against
// the source account.
type AuthService struct {
	registry *bank.AccountRegistry
	secret   []byte
}

func NewAuthService(registry *bank.AccountRegistry, secret []byte) *AuthService {
	return &AuthService{registry: registry, secret: secret}
}

// Login returns a signed session token for the account holding email.
// Unknown email and wrong credential are indistinguishable to the
// caller.
func (s *AuthService) Login(email, credential string) (string, error) {
	account, ok := s.registry.FindByEmail(email)
	if !ok {
		return "", bank.ErrAuthenticationFailed
	}
	if !account.Authenticate(credential) {
		return "", bank.ErrAuthenticationFailed
	}
	return s.generateToken(account.ID(), account.Email())
}

func (s *AuthService) generateToken(accountID, email string) (string, error) {
	claims := middleware.Claims{
		AccountID: accountID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return signed, nil
}

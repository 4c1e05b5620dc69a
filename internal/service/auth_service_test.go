package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammedmokhtar77/Bank-System/internal/bank"
	"github.com/mohammedmokhtar77/Bank-System/internal/middleware"
)

func TestLogin(t *testing.T) {
	registry := bank.NewAccountRegistry()
	account, err := bank.NewStandardAccount("Mohammed", 1000, "m.com", "1234")
	require.NoError(t, err)
	require.NoError(t, registry.Register(account))

	secret := []byte("test-secret")
	svc := NewAuthService(registry, secret)

	tokenString, err := svc.Login("m.com", "1234")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := &middleware.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, account.ID(), claims.AccountID)
	assert.Equal(t, "m.com", claims.Email)
}

func TestLoginFailures(t *testing.T) {
	registry := bank.NewAccountRegistry()
	account, err := bank.NewStandardAccount("Mohammed", 1000, "m.com", "1234")
	require.NoError(t, err)
	require.NoError(t, registry.Register(account))

	svc := NewAuthService(registry, []byte("test-secret"))

	_, err = svc.Login("m.com", "wrong")
	assert.ErrorIs(t, err, bank.ErrAuthenticationFailed)

	_, err = svc.Login("unknown.com", "1234")
	assert.ErrorIs(t, err, bank.ErrAuthenticationFailed)
}

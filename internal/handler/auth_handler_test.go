package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mohammedmokhtar77/Bank-System/internal/bank"
)

type mockAuthenticator struct {
	loginFn func(email, credential string) (string, error)
}

func (m *mockAuthenticator) Login(email, credential string) (string, error) {
	if m.loginFn != nil {
		return m.loginFn(email, credential)
	}
	return "", fmt.Errorf("not configured")
}

func newAuthTestRouter(auth Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(auth)
	r.POST("/v1/auth/login", h.Login)
	return r
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		loginFn        func(string, string) (string, error)
		expectedStatus int
	}{
		{
			name: "success",
			body: map[string]interface{}{"email": "m.com", "password": "1234"},
			loginFn: func(email, credential string) (string, error) {
				return "a.jwt.token", nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - missing password",
			body:           map[string]interface{}{"email": "m.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unauthorized - wrong credential",
			body: map[string]interface{}{"email": "m.com", "password": "wrong"},
			loginFn: func(string, string) (string, error) {
				return "", bank.ErrAuthenticationFailed
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthTestRouter(&mockAuthenticator{loginFn: tt.loginFn})
			w := doRequest(router, http.MethodPost, "/v1/auth/login", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d (body: %s)", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus == http.StatusOK {
				var resp LoginResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("invalid response body: %v", err)
				}
				if resp.Token != "a.jwt.token" {
					t.Errorf("unexpected token: %s", resp.Token)
				}
			}
		})
	}
}

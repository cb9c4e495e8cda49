package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	h := NewHandler("secret", "hunter2", 0, nil)

	assert.NoError(t, h.Authenticate("hunter2"))
	assert.ErrorIs(t, h.Authenticate("wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, h.Authenticate(""), ErrInvalidCredentials)
}

func TestAuthenticateDisabledWithoutPassword(t *testing.T) {
	h := NewHandler("secret", "", 0, nil)
	// No configured password must never mean open access.
	assert.ErrorIs(t, h.Authenticate(""), ErrInvalidCredentials)
}

func TestIssueTokenClaims(t *testing.T) {
	h := NewHandler("secret", "hunter2", time.Hour, nil)
	h.now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }

	tokenString, err := h.IssueToken()
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return []byte("secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return time.Date(2026, 8, 28, 12, 30, 0, 0, time.UTC) }))
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, time.Date(2026, 8, 28, 13, 0, 0, 0, time.UTC), claims.ExpiresAt.Time.UTC())
}

func TestLoginEndpoint(t *testing.T) {
	h := NewHandler("secret", "hunter2", time.Hour, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"password":"hunter2"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	h := NewHandler("secret", "hunter2", time.Hour, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"password":"nope"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsBadBody(t *testing.T) {
	h := NewHandler("secret", "hunter2", time.Hour, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/saphirspa/saphir-platform/pkg/logging"
)

// ErrInvalidCredentials is returned when the admin password is wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Handler issues admin tokens for the back-office.
type Handler struct {
	secret   []byte
	password string
	tokenTTL time.Duration
	now      func() time.Time
	logger   *logging.Logger
}

// NewHandler creates the login handler. tokenTTL defaults to 12 hours.
func NewHandler(secret, password string, tokenTTL time.Duration, logger *logging.Logger) *Handler {
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		secret:   []byte(secret),
		password: password,
		tokenTTL: tokenTTL,
		now:      time.Now,
		logger:   logger,
	}
}

// IssueToken creates a signed admin token.
func (h *Handler) IssueToken() (string, error) {
	now := h.now()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		Issuer:    "saphir-platform",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}

// Authenticate checks the admin password in constant time.
func (h *Handler) Authenticate(password string) error {
	if h.password == "" {
		return ErrInvalidCredentials
	}
	// Hash both sides so the comparison length never leaks.
	want := sha256.Sum256([]byte(h.password))
	got := sha256.Sum256([]byte(password))
	if subtle.ConstantTimeCompare(want[:], got[:]) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login handles POST /admin/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := h.Authenticate(req.Password); err != nil {
		h.logger.Warn("admin login rejected", "remote", r.RemoteAddr)
		http.Error(w, `{"error": "invalid credentials"}`, http.StatusUnauthorized)
		return
	}

	token, err := h.IssueToken()
	if err != nil {
		h.logger.Error("failed to sign admin token", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(loginResponse{
		Token:     token,
		ExpiresAt: h.now().Add(h.tokenTTL),
	})
}

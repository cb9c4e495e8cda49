package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saphirspa/saphir-platform/internal/availability"
	"github.com/saphirspa/saphir-platform/internal/catalog"
	"github.com/saphirspa/saphir-platform/internal/reservations"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := reservations.NewRepositoryWithDB(mock)
	return New(&Config{
		CatalogHandler:      catalog.NewHandler(),
		AvailabilityHandler: availability.NewHandler(nil),
		ReservationsHandler: reservations.NewHandler(repo, nil, nil),
		AdminJWTSecret:      "secret",
	})
}

func adminToken(t *testing.T, secret string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestPublicCatalogRoutes(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/services", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "massage-relaxant")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/services/hammam-royal", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/availability", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "09:00")
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/reservations", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRejectBadToken(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/reservations", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "wrong-secret"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesAcceptValidToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	mock.ExpectQuery(`FROM reservations r`).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "client_id", "client_name", "client_phone", "client_email",
			"service_name", "booking_date", "booking_time", "total_price",
			"status", "created_at", "total_reservations",
		}))

	r := New(&Config{
		ReservationsHandler: reservations.NewHandler(reservations.NewRepositoryWithDB(mock), nil, nil),
		AdminJWTSecret:      "secret",
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/reservations", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "secret"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":0`)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
)

const testSecret = "test-secret"

func newTestAuth() *Authenticator {
	return NewAuthenticator(testSecret, 0, logger.NewNop())
}

func signClaims(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func identityEcho(t *testing.T, got *domain.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		require.True(t, ok)
		*got = identity
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthenticator_Middleware(t *testing.T) {
	auth := newTestAuth()
	valid, err := auth.IssueToken(domain.Identity{ID: 7, Email: "u@example.com", Role: domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	expired := signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), Claims{
		ID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	wrongKey := signClaims(t, jwt.SigningMethodHS256, []byte("other"), Claims{ID: 7})
	noID := signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), Claims{Email: "u@example.com"})
	badRole := signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), Claims{ID: 7, Role: "ROOT"})
	hs512 := signClaims(t, jwt.SigningMethodHS512, []byte(testSecret), Claims{ID: 7})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid", header: "Bearer " + valid, wantStatus: http.StatusNoContent},
		{name: "lowercase scheme", header: "bearer " + valid, wantStatus: http.StatusNoContent},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + valid, wantStatus: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "wrong key", header: "Bearer " + wrongKey, wantStatus: http.StatusUnauthorized},
		{name: "no user id", header: "Bearer " + noID, wantStatus: http.StatusUnauthorized},
		{name: "unknown role", header: "Bearer " + badRole, wantStatus: http.StatusUnauthorized},
		{name: "unexpected algorithm", header: "Bearer " + hs512, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.Identity
			r := httptest.NewRequest(http.MethodGet, "/api/bookings/me", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			auth.Middleware(identityEcho(t, &got)).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, domain.Identity{ID: 7, Email: "u@example.com", Role: domain.RoleAdmin}, got)
			}
		})
	}
}

func TestAuthenticator_DefaultRoleIsUser(t *testing.T) {
	auth := newTestAuth()
	token := signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), Claims{ID: 9, Email: "x@example.com"})

	identity, err := auth.Authenticate("Bearer " + token)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, identity.Role)
	assert.False(t, identity.IsAdmin())
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		identity   *domain.Identity
		wantStatus int
	}{
		{name: "admin", identity: &domain.Identity{ID: 1, Role: domain.RoleAdmin}, wantStatus: http.StatusNoContent},
		{name: "user", identity: &domain.Identity{ID: 2, Role: domain.RoleUser}, wantStatus: http.StatusForbidden},
		{name: "anonymous", identity: nil, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/admin/room-types", nil)
			if tt.identity != nil {
				r = r.WithContext(WithIdentity(r.Context(), *tt.identity))
			}
			w := httptest.NewRecorder()

			RequireAdmin(next).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

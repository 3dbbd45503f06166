package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniele-farriciello/official-muay-thai-project/internal/auth"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/middleware"
)

func TestSessionAuth(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	var gotClaims *auth.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = middleware.GetClaims(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.SessionAuth(tokens)(next)

	t.Run("missing cookie", func(t *testing.T) {
		gotClaims = nil
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "missing token")
		assert.Nil(t, gotClaims)
	})

	t.Run("invalid token", func(t *testing.T) {
		gotClaims = nil
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: "garbage"})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired token")
		assert.Nil(t, gotClaims)
	})

	t.Run("expired token", func(t *testing.T) {
		gotClaims = nil
		expired := auth.NewTokenService("test-secret", -time.Minute)
		token, err := expired.Issue("id1", "a@x.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, gotClaims)
	})

	t.Run("valid token", func(t *testing.T) {
		gotClaims = nil
		token, err := tokens.Issue("id1", "a@x.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotClaims)
		assert.Equal(t, "id1", gotClaims.UserID)
		assert.Equal(t, "a@x.com", gotClaims.Email)
	})
}

package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniele-farriciello/official-muay-thai-project/internal/auth"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/handlers"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/middleware"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/models"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/store"
)

func newTokens() *auth.TokenService {
	return auth.NewTokenService("test-secret", time.Hour)
}

func TestSignup(t *testing.T) {
	t.Run("success stores a hashed password", func(t *testing.T) {
		var inserted *models.User
		users := &mockStore{
			InsertFunc: func(ctx context.Context, user *models.User) error {
				inserted = user
				return nil
			},
		}
		h := handlers.NewAuthHandler(users, newTokens())

		req := jsonRequest(t, http.MethodPost, "/signup", handlers.SignupRequest{
			FullName: "Ana Silva",
			Email:    "a@x.com",
			Password: "p1",
		})
		w := httptest.NewRecorder()
		h.Signup(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, inserted)
		assert.Equal(t, "a@x.com", inserted.Email)
		assert.NotEqual(t, "p1", inserted.Password)
		assert.True(t, auth.VerifyPassword("p1", inserted.Password))
		assert.NotNil(t, inserted.Bookings)
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := &mockStore{
			InsertFunc: func(ctx context.Context, user *models.User) error {
				return store.ErrDuplicateEmail
			},
		}
		h := handlers.NewAuthHandler(users, newTokens())

		req := jsonRequest(t, http.MethodPost, "/signup", handlers.SignupRequest{
			FullName: "Ana Silva",
			Email:    "a@x.com",
			Password: "p1",
		})
		w := httptest.NewRecorder()
		h.Signup(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "user already exists")
	})

	t.Run("missing fields rejected before the store", func(t *testing.T) {
		users := &mockStore{
			InsertFunc: func(ctx context.Context, user *models.User) error {
				t.Fatal("store should not be called on validation error")
				return nil
			},
		}
		h := handlers.NewAuthHandler(users, newTokens())

		req := jsonRequest(t, http.MethodPost, "/signup", handlers.SignupRequest{
			FullName: "Ana Silva",
			Password: "p1",
		})
		w := httptest.NewRecorder()
		h.Signup(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email")
	})
}

func TestLogin(t *testing.T) {
	digest, err := auth.HashPassword("p1")
	require.NoError(t, err)

	registered := func(ctx context.Context, email string) (*models.User, error) {
		if email != "a@x.com" {
			return nil, store.ErrNotFound
		}
		return &models.User{FullName: "Ana Silva", Email: "a@x.com", Password: digest}, nil
	}

	t.Run("success sets the session cookie", func(t *testing.T) {
		tokens := newTokens()
		h := handlers.NewAuthHandler(&mockStore{FindByEmailFunc: registered}, tokens)

		req := jsonRequest(t, http.MethodPost, "/login", handlers.LoginRequest{
			Email:    "a@x.com",
			Password: "p1",
		})
		w := httptest.NewRecorder()
		h.Login(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		cookie := cookies[0]
		assert.Equal(t, middleware.CookieName, cookie.Name)
		assert.True(t, cookie.HttpOnly)

		claims, err := tokens.Verify(cookie.Value)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", claims.Email)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		h := handlers.NewAuthHandler(&mockStore{FindByEmailFunc: registered}, newTokens())

		wrongPass := httptest.NewRecorder()
		h.Login(wrongPass, jsonRequest(t, http.MethodPost, "/login", handlers.LoginRequest{
			Email:    "a@x.com",
			Password: "wrong",
		}))

		unknownEmail := httptest.NewRecorder()
		h.Login(unknownEmail, jsonRequest(t, http.MethodPost, "/login", handlers.LoginRequest{
			Email:    "b@x.com",
			Password: "p1",
		}))

		assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, wrongPass.Body.String(), unknownEmail.Body.String())
		assert.Empty(t, wrongPass.Result().Cookies())
	})
}

func TestLogout(t *testing.T) {
	h := handlers.NewAuthHandler(&mockStore{}, newTokens())

	req := authedRequest(t, http.MethodPost, "/logout", struct{}{}, "a@x.com")
	w := httptest.NewRecorder()
	h.Logout(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

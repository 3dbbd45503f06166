package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/daniele-farriciello/official-muay-thai-project/internal/auth"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/middleware"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/models"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/store"
)

type AuthHandler struct {
	users  UserStore
	tokens *auth.TokenService
}

func NewAuthHandler(users UserStore, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
	}
}

// --- Request types ---

type SignupRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Identical body for unknown email and wrong password, so a caller cannot
// probe which emails are registered.
const invalidCredentials = "invalid email or password"

// --- POST /signup ---

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	digest, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: digest,
		Bookings: []models.Booking{},
	}
	if err := h.users.Insert(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			writeMessage(w, http.StatusConflict, "user already exists")
			return
		}
		log.Printf("Error saving user: %v", err)
		writeMessage(w, http.StatusInternalServerError, "error saving user")
		return
	}

	writeMessage(w, http.StatusOK, "new user added")
}

// --- POST /login ---

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusUnauthorized, invalidCredentials)
			return
		}
		log.Printf("Error finding user: %v", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if !auth.VerifyPassword(req.Password, user.Password) {
		writeMessage(w, http.StatusUnauthorized, invalidCredentials)
		return
	}

	token, err := h.tokens.Issue(user.ID.Hex(), user.Email)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeMessage(w, http.StatusOK, "logged in successfully")
}

// --- POST /logout ---

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	writeMessage(w, http.StatusOK, "logged out successfully")
}

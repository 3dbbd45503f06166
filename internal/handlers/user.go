package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/daniele-farriciello/official-muay-thai-project/internal/middleware"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/store"
)

type UserHandler struct {
	users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{
		users: users,
	}
}

// --- GET /me ---

// Me returns the authenticated user's document. The email comes from the
// verified token claims, never from the caller, and the password digest is
// excluded from serialization at the model level.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.users.FindByEmail(r.Context(), claims.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("Error finding user: %v", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

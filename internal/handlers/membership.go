package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/daniele-farriciello/official-muay-thai-project/internal/store"
)

type MembershipHandler struct {
	users UserStore
}

func NewMembershipHandler(users UserStore) *MembershipHandler {
	return &MembershipHandler{
		users: users,
	}
}

type ActivateMembershipRequest struct {
	Email         string `json:"email" validate:"required,email"`
	ActivationDay string `json:"activationDay" validate:"required"`
}

type RemoveMembershipRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// --- POST /membershipPage ---

func (h *MembershipHandler) Activate(w http.ResponseWriter, r *http.Request) {
	var req ActivateMembershipRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := requireOwnEmail(r.Context(), req.Email); err != nil {
		writeMessage(w, http.StatusForbidden, err.Error())
		return
	}

	if err := h.users.SetMembership(r.Context(), req.Email, &req.ActivationDay); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("Error activating membership: %v", err)
		writeMessage(w, http.StatusInternalServerError, "error activating membership")
		return
	}

	writeMessage(w, http.StatusOK, "the membership is now activated")
}

// --- POST /removeMembership ---

func (h *MembershipHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req RemoveMembershipRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := requireOwnEmail(r.Context(), req.Email); err != nil {
		writeMessage(w, http.StatusForbidden, err.Error())
		return
	}

	if err := h.users.SetMembership(r.Context(), req.Email, nil); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("Error removing membership: %v", err)
		writeMessage(w, http.StatusInternalServerError, "error removing membership")
		return
	}

	writeMessage(w, http.StatusOK, "membership removed successfully")
}

package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/daniele-farriciello/official-muay-thai-project/internal/middleware"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/models"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/notify"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/store"

	"github.com/google/uuid"
)

type BookingHandler struct {
	users    UserStore
	notifier notify.Notifier
}

func NewBookingHandler(users UserStore, notifier notify.Notifier) *BookingHandler {
	return &BookingHandler{
		users:    users,
		notifier: notifier,
	}
}

// --- Request types ---

type NewBookingRequest struct {
	Email        string    `json:"email" validate:"required,email"`
	Fullname     string    `json:"fullname" validate:"required"`
	BirthdayDate time.Time `json:"birthdayDate" validate:"required"`
	TrainingDate time.Time `json:"trainingDate" validate:"required"`
}

type ModifyBookingRequest struct {
	Email        string    `json:"email" validate:"required,email"`
	Fullname     string    `json:"fullname" validate:"required"`
	BirthdayDate time.Time `json:"birthdayDate" validate:"required"`
	TrainingDate time.Time `json:"trainingDate" validate:"required"`
	// 0-based index into the user's booking list. A pointer so that
	// selecting the first booking survives the required check.
	BookingSelected *int `json:"bookingSelected" validate:"required"`
}

type DeleteBookingRequest struct {
	Email string `json:"email" validate:"required,email"`
	// 1-based position, as sent by the booking console's pagination.
	BookingSelected int `json:"bookingSelected"`
}

// requireOwnEmail rejects requests that name a different account than the
// session token. Booking and membership routes only ever act on the
// authenticated user's own document.
func requireOwnEmail(ctx context.Context, email string) error {
	claims := middleware.GetClaims(ctx)
	if claims == nil || claims.Email != email {
		return errors.New("email does not match session")
	}
	return nil
}

// --- POST /newBooking ---

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req NewBookingRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := requireOwnEmail(r.Context(), req.Email); err != nil {
		writeMessage(w, http.StatusForbidden, err.Error())
		return
	}

	booking := models.Booking{
		ID:           uuid.New().String(),
		Fullname:     req.Fullname,
		BirthdayDate: req.BirthdayDate,
		TrainingDate: req.TrainingDate,
	}
	if err := h.users.AppendBooking(r.Context(), req.Email, booking); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("Error saving booking: %v", err)
		writeMessage(w, http.StatusInternalServerError, "error saving booking")
		return
	}

	// Confirmation email is best-effort and never fails the request.
	body := fmt.Sprintf("Training booked for %s on %s.",
		booking.Fullname, booking.TrainingDate.Format("2006-01-02"))
	if err := h.notifier.Publish(r.Context(), req.Email, "Booking confirmed", body); err != nil {
		log.Printf("Error sending booking confirmation: %v", err)
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "booking added successfully",
		"id":      booking.ID,
	})
}

// --- PATCH /modifyBooking ---

func (h *BookingHandler) Modify(w http.ResponseWriter, r *http.Request) {
	var req ModifyBookingRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := requireOwnEmail(r.Context(), req.Email); err != nil {
		writeMessage(w, http.StatusForbidden, err.Error())
		return
	}

	booking := models.Booking{
		Fullname:     req.Fullname,
		BirthdayDate: req.BirthdayDate,
		TrainingDate: req.TrainingDate,
	}
	err := h.users.UpdateBookingAt(r.Context(), req.Email, *req.BookingSelected, booking)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBookingNotFound):
			writeMessage(w, http.StatusNotFound, "booking not found")
		case errors.Is(err, store.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "user not found")
		default:
			log.Printf("Error updating booking: %v", err)
			writeMessage(w, http.StatusInternalServerError, "error updating booking")
		}
		return
	}

	writeMessage(w, http.StatusOK, "booking modified successfully")
}

// --- DELETE /deleteBooking ---

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req DeleteBookingRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := requireOwnEmail(r.Context(), req.Email); err != nil {
		writeMessage(w, http.StatusForbidden, err.Error())
		return
	}

	// Out-of-range positions, including zero and negatives, map to 404
	// rather than a validation error: the booking simply is not there.
	err := h.users.RemoveBookingAt(r.Context(), req.Email, req.BookingSelected)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBookingNotFound):
			writeMessage(w, http.StatusNotFound, "booking not found")
		case errors.Is(err, store.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "user not found")
		default:
			log.Printf("Error deleting booking: %v", err)
			writeMessage(w, http.StatusInternalServerError, "error deleting booking")
		}
		return
	}

	writeMessage(w, http.StatusOK, "booking deleted successfully")
}

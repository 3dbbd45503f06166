package handlers

import (
	"context"

	"github.com/daniele-farriciello/official-muay-thai-project/internal/models"
)

// UserStore is the subset of the user store the HTTP layer depends on.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	AppendBooking(ctx context.Context, email string, booking models.Booking) error
	UpdateBookingAt(ctx context.Context, email string, index int, booking models.Booking) error
	RemoveBookingAt(ctx context.Context, email string, selected int) error
	SetMembership(ctx context.Context, email string, activationDay *string) error
}

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/daniele-farriciello/official-muay-thai-project/internal/auth"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/middleware"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/models"
)

// mockStore implements handlers.UserStore with per-test function fields.
type mockStore struct {
	FindByEmailFunc     func(ctx context.Context, email string) (*models.User, error)
	InsertFunc          func(ctx context.Context, user *models.User) error
	AppendBookingFunc   func(ctx context.Context, email string, booking models.Booking) error
	UpdateBookingAtFunc func(ctx context.Context, email string, index int, booking models.Booking) error
	RemoveBookingAtFunc func(ctx context.Context, email string, selected int) error
	SetMembershipFunc   func(ctx context.Context, email string, activationDay *string) error
}

func (m *mockStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.FindByEmailFunc(ctx, email)
}

func (m *mockStore) Insert(ctx context.Context, user *models.User) error {
	return m.InsertFunc(ctx, user)
}

func (m *mockStore) AppendBooking(ctx context.Context, email string, booking models.Booking) error {
	return m.AppendBookingFunc(ctx, email, booking)
}

func (m *mockStore) UpdateBookingAt(ctx context.Context, email string, index int, booking models.Booking) error {
	return m.UpdateBookingAtFunc(ctx, email, index, booking)
}

func (m *mockStore) RemoveBookingAt(ctx context.Context, email string, selected int) error {
	return m.RemoveBookingAtFunc(ctx, email, selected)
}

func (m *mockStore) SetMembership(ctx context.Context, email string, activationDay *string) error {
	return m.SetMembershipFunc(ctx, email, activationDay)
}

// mockNotifier records published notifications.
type mockNotifier struct {
	PublishFunc func(ctx context.Context, to, subject, body string) error
}

func (m *mockNotifier) Publish(ctx context.Context, to, subject, body string) error {
	if m.PublishFunc == nil {
		return nil
	}
	return m.PublishFunc(ctx, to, subject, body)
}

// jsonRequest builds a request with a marshalled JSON body.
func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	return httptest.NewRequest(method, target, bytes.NewReader(data))
}

// authedRequest is jsonRequest plus session claims for the given email.
func authedRequest(t *testing.T, method, target string, body any, email string) *http.Request {
	t.Helper()
	req := jsonRequest(t, method, target, body)
	claims := &auth.Claims{UserID: "507f1f77bcf86cd799439011", Email: email}
	return req.WithContext(middleware.WithClaims(req.Context(), claims))
}

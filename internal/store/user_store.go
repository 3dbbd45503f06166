package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/daniele-farriciello/official-muay-thai-project/internal/database"
	"github.com/daniele-farriciello/official-muay-thai-project/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// UserStore provides access to the users collection. Each user document
// embeds its bookings and membership, so booking mutations go through the
// parent document. Load-mutate-save sequences are last-write-wins; there is
// no cross-request locking.
type UserStore struct {
	collection *mongo.Collection
	cache      *Cache
}

// NewUserStore returns a store over the users collection. cache may be nil.
func NewUserStore(cache *Cache) *UserStore {
	return &UserStore{
		collection: database.GetCollection("users"),
		cache:      cache,
	}
}

func userKey(email string) string {
	return "user:" + email
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	if hit, err := s.cache.Get(ctx, userKey(email), &user); err != nil {
		log.Printf("⚠️  Cache read failed for %s: %v", email, err)
	} else if hit {
		return &user, nil
	}

	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.cache.Set(ctx, userKey(email), &user); err != nil {
		log.Printf("⚠️  Cache write failed for %s: %v", email, err)
	}
	return &user, nil
}

func (s *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert creates a new user. The duplicate check is application-level and
// runs before the write; the unique email index is a backstop, not the
// primary mechanism.
func (s *UserStore) Insert(ctx context.Context, user *models.User) error {
	exists, err := s.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateEmail
	}

	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	user.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// Save replaces the whole document matched by the user's email.
func (s *UserStore) Save(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	result, err := s.collection.ReplaceOne(ctx, bson.M{"email": user.Email}, user)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	s.invalidate(ctx, user.Email)
	return nil
}

// AppendBooking loads the user, appends the booking and saves the document.
func (s *UserStore) AppendBooking(ctx context.Context, email string, booking models.Booking) error {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	user.Bookings = append(user.Bookings, booking)
	return s.Save(ctx, user)
}

// UpdateBookingAt rewrites the booking fields at a 0-based index. The index
// is validated against the loaded document before the positional update is
// built, so no caller-supplied value ever reaches the field path unchecked,
// and a matched-but-unchanged update is reported as success rather than
// being confused with a missing booking.
func (s *UserStore) UpdateBookingAt(ctx context.Context, email string, index int, booking models.Booking) error {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(user.Bookings) {
		return ErrBookingNotFound
	}

	result, err := s.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bookingUpdateFields(index, booking)},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	s.invalidate(ctx, email)
	return nil
}

// bookingUpdateFields builds the positional $set document for a booking
// update. The booking's generated ID is deliberately left untouched.
func bookingUpdateFields(index int, booking models.Booking) bson.M {
	prefix := fmt.Sprintf("bookings.%d.", index)
	return bson.M{
		prefix + "fullname":     booking.Fullname,
		prefix + "birthdayDate": booking.BirthdayDate,
		prefix + "trainingDate": booking.TrainingDate,
		"updated_at":            time.Now(),
	}
}

// RemoveBookingAt deletes the booking selected by a 1-based position, as
// sent by the booking console's pagination control.
func (s *UserStore) RemoveBookingAt(ctx context.Context, email string, selected int) error {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	index := selected - 1
	if index < 0 || index >= len(user.Bookings) {
		return ErrBookingNotFound
	}
	user.Bookings = append(user.Bookings[:index], user.Bookings[index+1:]...)
	return s.Save(ctx, user)
}

// SetMembership sets member.activationDay; nil deactivates the membership.
func (s *UserStore) SetMembership(ctx context.Context, email string, activationDay *string) error {
	result, err := s.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{
			"member.activationDay": activationDay,
			"updated_at":           time.Now(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	s.invalidate(ctx, email)
	return nil
}

func (s *UserStore) invalidate(ctx context.Context, email string) {
	if err := s.cache.Invalidate(ctx, userKey(email)); err != nil {
		log.Printf("⚠️  Cache invalidation failed for %s: %v", email, err)
	}
}

// EnsureIndexes creates necessary indexes for the users collection
func (s *UserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Booking is embedded in its parent User document and has no collection of
// its own. The ID is generated server-side at creation; the mutation API
// still addresses bookings by position within the parent's list.
type Booking struct {
	ID           string    `bson:"id" json:"id"`
	Fullname     string    `bson:"fullname" json:"fullname"`
	BirthdayDate time.Time `bson:"birthdayDate" json:"birthdayDate"`
	TrainingDate time.Time `bson:"trainingDate" json:"trainingDate"`
}

// Member carries the membership state. A nil ActivationDay is the canonical
// "no membership" value and serializes as JSON null, not field absence.
type Member struct {
	ActivationDay *string `bson:"activationDay" json:"activationDay"`
}

type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName  string        `bson:"fullName" json:"fullName"`
	Email     string        `bson:"email" json:"email"`
	Password  string        `bson:"password" json:"-"`
	Member    Member        `bson:"member" json:"member"`
	Bookings  []Booking     `bson:"bookings" json:"bookings"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

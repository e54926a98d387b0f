package models

import (
	"time"

	"github.com/google/uuid"
)

// Package models holds the hbnb domain records shared by storage engines and handlers.
// Each record embeds Base for identity and timestamps.

// Kind names an entity type. It doubles as the storage key prefix.
type Kind string

const (
	KindAmenity Kind = "Amenity"
	KindCity    Kind = "City"
	KindPlace   Kind = "Place"
	KindState   Kind = "State"
	KindUser    Kind = "User"
)

// Kinds lists every entity type in a stable order.
var Kinds = []Kind{KindAmenity, KindCity, KindPlace, KindState, KindUser}

// Entity is the contract every stored record satisfies.
type Entity interface {
	Kind() Kind
	GetID() string
	Created() time.Time
	Updated() time.Time
	Touch()
	Clone() Entity
}

// Base carries the fields common to all records.
type Base struct {
	ID        string    `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func newBase() Base {
	now := Now()
	return Base{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
}

// Now returns the current UTC time at microsecond precision, the finest
// resolution every engine stores.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (b *Base) GetID() string      { return b.ID }
func (b *Base) Created() time.Time { return b.CreatedAt }
func (b *Base) Updated() time.Time { return b.UpdatedAt }

// Touch bumps UpdatedAt. It always moves forward, even within the same microsecond.
func (b *Base) Touch() {
	now := Now()
	if !now.After(b.UpdatedAt) {
		now = b.UpdatedAt.Add(time.Microsecond)
	}
	b.UpdatedAt = now
}

// Key is the storage key of an object: "<Kind>.<id>".
func Key(k Kind, id string) string { return string(k) + "." + id }

// New returns an empty record of the given kind, or nil for an unknown kind.
func New(k Kind) Entity {
	switch k {
	case KindAmenity:
		return &Amenity{}
	case KindCity:
		return &City{}
	case KindPlace:
		return &Place{}
	case KindState:
		return &State{}
	case KindUser:
		return &User{}
	default:
		return nil
	}
}

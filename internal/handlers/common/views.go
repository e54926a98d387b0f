package common

import (
	"time"

	"github.com/Jeomhps/hbnb-api/internal/models"
)

// TimeFormat is how timestamps are rendered in responses.
const TimeFormat = "2006-01-02T15:04:05.000000"

func FormatTime(t time.Time) string { return t.UTC().Format(TimeFormat) }

// Base is the part every view shares. Class names the entity type.
type Base struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Class     string `json:"__class__"`
}

func baseView(e models.Entity) Base {
	return Base{
		ID:        e.GetID(),
		CreatedAt: FormatTime(e.Created()),
		UpdatedAt: FormatTime(e.Updated()),
		Class:     string(e.Kind()),
	}
}

type State struct {
	Base
	Name string `json:"name"`
}

func StateView(s *models.State) State { return State{Base: baseView(s), Name: s.Name} }

type City struct {
	Base
	StateID string `json:"state_id"`
	Name    string `json:"name"`
}

func CityView(c *models.City) City {
	return City{Base: baseView(c), StateID: c.StateID, Name: c.Name}
}

type Amenity struct {
	Base
	Name string `json:"name"`
}

func AmenityView(a *models.Amenity) Amenity { return Amenity{Base: baseView(a), Name: a.Name} }

// User never carries the password hash.
type User struct {
	Base
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func UserView(u *models.User) User {
	return User{Base: baseView(u), Email: u.Email, FirstName: u.FirstName, LastName: u.LastName}
}

// PlaceSummary is a place without its amenity links, as returned by search.
type PlaceSummary struct {
	Base
	CityID          string  `json:"city_id"`
	UserID          string  `json:"user_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	NumberRooms     int     `json:"number_rooms"`
	NumberBathrooms int     `json:"number_bathrooms"`
	MaxGuest        int     `json:"max_guest"`
	PriceByNight    int     `json:"price_by_night"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

type Place struct {
	PlaceSummary
	Amenities []string `json:"amenities"`
}

func PlaceSummaryView(p *models.Place) PlaceSummary {
	return PlaceSummary{
		Base:            baseView(p),
		CityID:          p.CityID,
		UserID:          p.UserID,
		Name:            p.Name,
		Description:     p.Description,
		NumberRooms:     p.NumberRooms,
		NumberBathrooms: p.NumberBathrooms,
		MaxGuest:        p.MaxGuest,
		PriceByNight:    p.PriceByNight,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
	}
}

func PlaceView(p *models.Place) Place {
	ids := p.AmenityIDs
	if ids == nil {
		ids = []string{}
	}
	return Place{PlaceSummary: PlaceSummaryView(p), Amenities: ids}
}

// Views maps a slice through a view function.
func Views[T any, V any](items []T, view func(T) V) []V {
	out := make([]V, 0, len(items))
	for _, it := range items {
		out = append(out, view(it))
	}
	return out
}

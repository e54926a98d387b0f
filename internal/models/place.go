package models

import "slices"

// Place belongs to one city and one user, and links to a set of amenities.
type Place struct {
	Base
	CityID          string  `json:"city_id" db:"city_id"`
	UserID          string  `json:"user_id" db:"user_id"`
	Name            string  `json:"name" db:"name"`
	Description     string  `json:"description" db:"description"`
	NumberRooms     int     `json:"number_rooms" db:"number_rooms"`
	NumberBathrooms int     `json:"number_bathrooms" db:"number_bathrooms"`
	MaxGuest        int     `json:"max_guest" db:"max_guest"`
	PriceByNight    int     `json:"price_by_night" db:"price_by_night"`
	Latitude        float64 `json:"latitude" db:"latitude"`
	Longitude       float64 `json:"longitude" db:"longitude"`

	// AmenityIDs lives in the place_amenity table for the db engine.
	AmenityIDs []string `json:"amenity_ids" db:"-"`
}

func NewPlace(cityID, userID, name string) *Place {
	return &Place{Base: newBase(), CityID: cityID, UserID: userID, Name: name, AmenityIDs: []string{}}
}

func (*Place) Kind() Kind { return KindPlace }

func (p *Place) Clone() Entity {
	c := *p
	c.AmenityIDs = slices.Clone(p.AmenityIDs)
	if c.AmenityIDs == nil {
		c.AmenityIDs = []string{}
	}
	return &c
}

func (p *Place) HasAmenity(id string) bool {
	return slices.Contains(p.AmenityIDs, id)
}

// LinkAmenity adds id to the place; it returns false if it was already linked.
func (p *Place) LinkAmenity(id string) bool {
	if p.HasAmenity(id) {
		return false
	}
	p.AmenityIDs = append(p.AmenityIDs, id)
	return true
}

// UnlinkAmenity removes id from the place; it returns false if it was not linked.
func (p *Place) UnlinkAmenity(id string) bool {
	i := slices.Index(p.AmenityIDs, id)
	if i < 0 {
		return false
	}
	p.AmenityIDs = slices.Delete(p.AmenityIDs, i, i+1)
	return true
}

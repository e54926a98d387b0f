package models

// Amenity is shared by many places.
type Amenity struct {
	Base
	Name string `json:"name" db:"name"`
}

func NewAmenity(name string) *Amenity {
	return &Amenity{Base: newBase(), Name: name}
}

func (*Amenity) Kind() Kind { return KindAmenity }

func (a *Amenity) Clone() Entity {
	c := *a
	return &c
}

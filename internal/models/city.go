package models

// City belongs to one state and owns many places.
type City struct {
	Base
	StateID string `json:"state_id" db:"state_id"`
	Name    string `json:"name" db:"name"`
}

func NewCity(stateID, name string) *City {
	return &City{Base: newBase(), StateID: stateID, Name: name}
}

func (*City) Kind() Kind { return KindCity }

func (c *City) Clone() Entity {
	cp := *c
	return &cp
}

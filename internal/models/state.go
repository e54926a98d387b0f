package models

// State owns many cities.
type State struct {
	Base
	Name string `json:"name" db:"name"`
}

func NewState(name string) *State {
	return &State{Base: newBase(), Name: name}
}

func (*State) Kind() Kind { return KindState }

func (s *State) Clone() Entity {
	c := *s
	return &c
}

package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fixtures is the YAML document hbnb-seed loads. Places refer to their
// state, city, owner and amenities by name (email for the owner).
type Fixtures struct {
	States    []StateFixture `yaml:"states"`
	Amenities []string       `yaml:"amenities"`
	Users     []UserFixture  `yaml:"users"`
	Places    []PlaceFixture `yaml:"places"`
}

type StateFixture struct {
	Name   string   `yaml:"name"`
	Cities []string `yaml:"cities"`
}

type UserFixture struct {
	Email     string `yaml:"email" json:"email"`
	Password  string `yaml:"password" json:"password"`
	FirstName string `yaml:"first_name" json:"first_name,omitempty"`
	LastName  string `yaml:"last_name" json:"last_name,omitempty"`
}

type PlaceFixture struct {
	Name            string   `yaml:"name" json:"name"`
	State           string   `yaml:"state" json:"-"`
	City            string   `yaml:"city" json:"-"`
	User            string   `yaml:"user" json:"-"`
	Description     string   `yaml:"description" json:"description,omitempty"`
	NumberRooms     int      `yaml:"number_rooms" json:"number_rooms"`
	NumberBathrooms int      `yaml:"number_bathrooms" json:"number_bathrooms"`
	MaxGuest        int      `yaml:"max_guest" json:"max_guest"`
	PriceByNight    int      `yaml:"price_by_night" json:"price_by_night"`
	Latitude        float64  `yaml:"latitude" json:"latitude"`
	Longitude       float64  `yaml:"longitude" json:"longitude"`
	Amenities       []string `yaml:"amenities" json:"-"`
}

func loadFixtures(path string) (*Fixtures, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f Fixtures
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, f.check()
}

// check catches entries the API would reject before anything is sent.
func (f *Fixtures) check() error {
	var problems []string
	for i, s := range f.States {
		if strings.TrimSpace(s.Name) == "" {
			problems = append(problems, fmt.Sprintf("states[%d]: missing name", i))
		}
	}
	for i, u := range f.Users {
		if u.Email == "" || u.Password == "" {
			problems = append(problems, fmt.Sprintf("users[%d]: email and password are required", i))
		}
	}
	for i, p := range f.Places {
		if p.Name == "" || p.State == "" || p.City == "" || p.User == "" {
			problems = append(problems, fmt.Sprintf("places[%d]: name, state, city and user are required", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid fixtures:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

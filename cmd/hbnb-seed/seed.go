package main

import (
	"context"
	"fmt"
)

// Report counts what was created and collects per-item failures.
type Report struct {
	States, Cities, Amenities, Users, Places, Links int
	Failures                                        []error
}

func (r *Report) fail(format string, args ...any) {
	r.Failures = append(r.Failures, fmt.Errorf(format, args...))
}

// Seed registers f through the API. A failed item is recorded and skipped,
// along with whatever depends on it.
func Seed(ctx context.Context, c *Client, f *Fixtures) *Report {
	rep := &Report{}
	cityIDs := map[[2]string]string{} // {state, city} -> id
	amenityIDs := map[string]string{}
	userIDs := map[string]string{}

	for _, s := range f.States {
		stateID, err := c.create(ctx, "/states", map[string]string{"name": s.Name})
		if err != nil {
			rep.fail("state %q: %w", s.Name, err)
			continue
		}
		rep.States++
		for _, city := range s.Cities {
			id, err := c.create(ctx, "/states/"+stateID+"/cities", map[string]string{"name": city})
			if err != nil {
				rep.fail("city %q in %q: %w", city, s.Name, err)
				continue
			}
			rep.Cities++
			cityIDs[[2]string{s.Name, city}] = id
		}
	}

	for _, name := range f.Amenities {
		id, err := c.create(ctx, "/amenities", map[string]string{"name": name})
		if err != nil {
			rep.fail("amenity %q: %w", name, err)
			continue
		}
		rep.Amenities++
		amenityIDs[name] = id
	}

	for _, u := range f.Users {
		id, err := c.create(ctx, "/users", u)
		if err != nil {
			rep.fail("user %q: %w", u.Email, err)
			continue
		}
		rep.Users++
		userIDs[u.Email] = id
	}

	for _, p := range f.Places {
		cityID, ok := cityIDs[[2]string{p.State, p.City}]
		if !ok {
			rep.fail("place %q: unknown city %q in %q", p.Name, p.City, p.State)
			continue
		}
		userID, ok := userIDs[p.User]
		if !ok {
			rep.fail("place %q: unknown user %q", p.Name, p.User)
			continue
		}
		body := struct {
			PlaceFixture
			UserID string `json:"user_id"`
		}{p, userID}
		placeID, err := c.create(ctx, "/cities/"+cityID+"/places", body)
		if err != nil {
			rep.fail("place %q: %w", p.Name, err)
			continue
		}
		rep.Places++

		for _, a := range p.Amenities {
			aid, ok := amenityIDs[a]
			if !ok {
				rep.fail("place %q: unknown amenity %q", p.Name, a)
				continue
			}
			if err := c.post(ctx, "/places/"+placeID+"/amenities/"+aid, nil, nil); err != nil {
				rep.fail("place %q amenity %q: %w", p.Name, a, err)
				continue
			}
			rep.Links++
		}
	}
	return rep
}

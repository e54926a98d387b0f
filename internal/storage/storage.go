package storage

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Jeomhps/hbnb-api/internal/models"
)

// ErrNotFound is returned by Get when no object matches.
var ErrNotFound = errors.New("storage: object not found")

// Storage is the object store the handlers talk to. Engines hand out copies:
// a mutated object is only stored again through New. Save flushes whatever the
// engine has not yet written; the db engine commits each New and Delete itself.
type Storage interface {
	Get(ctx context.Context, kind models.Kind, id string) (models.Entity, error)
	// All returns every object of kind, keyed by id.
	All(ctx context.Context, kind models.Kind) (map[string]models.Entity, error)
	// New adds obj, replacing any object with the same kind and id.
	New(ctx context.Context, obj models.Entity) error
	Delete(ctx context.Context, obj models.Entity) error
	Save(ctx context.Context) error
	Close() error
}

// Lookup fetches one object and asserts its concrete type.
func Lookup[T models.Entity](ctx context.Context, s Storage, id string) (T, error) {
	var zero T
	obj, err := s.Get(ctx, zero.Kind(), id)
	if err != nil {
		return zero, err
	}
	t, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("storage: %s %s has type %T", zero.Kind(), id, obj)
	}
	return t, nil
}

// List returns every object of type T ordered by creation time, then id.
func List[T models.Entity](ctx context.Context, s Storage) ([]T, error) {
	var zero T
	all, err := s.All(ctx, zero.Kind())
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(all))
	for _, obj := range all {
		if t, ok := obj.(T); ok {
			out = append(out, t)
		}
	}
	Sort(out)
	return out, nil
}

// Sort orders objects by creation time, then id.
func Sort[T models.Entity](objs []T) {
	slices.SortFunc(objs, func(a, b T) int {
		if c := a.Created().Compare(b.Created()); c != 0 {
			return c
		}
		return cmp.Compare(a.GetID(), b.GetID())
	})
}

// CitiesOf returns the cities of a state.
func CitiesOf(ctx context.Context, s Storage, stateID string) ([]*models.City, error) {
	cities, err := List[*models.City](ctx, s)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(cities, func(c *models.City) bool { return c.StateID != stateID }), nil
}

// PlacesOf returns the places of a city.
func PlacesOf(ctx context.Context, s Storage, cityID string) ([]*models.Place, error) {
	places, err := List[*models.Place](ctx, s)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(places, func(p *models.Place) bool { return p.CityID != cityID }), nil
}

// AmenitiesOf resolves the amenities linked to a place, skipping dangling ids.
func AmenitiesOf(ctx context.Context, s Storage, p *models.Place) ([]*models.Amenity, error) {
	out := make([]*models.Amenity, 0, len(p.AmenityIDs))
	for _, id := range p.AmenityIDs {
		a, err := Lookup[*models.Amenity](ctx, s, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Count returns the number of objects of kind.
func Count(ctx context.Context, s Storage, kind models.Kind) (int, error) {
	all, err := s.All(ctx, kind)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

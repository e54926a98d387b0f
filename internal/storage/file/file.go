package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/Jeomhps/hbnb-api/internal/storage"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// Package file is the JSON file engine. Objects live in memory keyed "<Kind>.<id>"
// and Save writes the whole set to a single file.

const classKey = "__class__"

// Storage keeps objects in memory and flushes them to path on Save.
type Storage struct {
	path    string
	objects cmap.ConcurrentMap[string, models.Entity]

	// mu serializes writers so cascades and Save see a consistent set.
	mu sync.Mutex
}

var _ storage.Storage = (*Storage)(nil)

// Open returns a file engine backed by path, reloading it when it exists.
func Open(path string) (*Storage, error) {
	s := &Storage{path: path, objects: cmap.New[models.Entity]()}
	if err := s.reload(); err != nil {
		return nil, fmt.Errorf("file storage: reload %s: %w", path, err)
	}
	return s, nil
}

func (s *Storage) Get(_ context.Context, kind models.Kind, id string) (models.Entity, error) {
	obj, ok := s.objects.Get(models.Key(kind, id))
	if !ok {
		return nil, storage.ErrNotFound
	}
	return obj.Clone(), nil
}

func (s *Storage) All(_ context.Context, kind models.Kind) (map[string]models.Entity, error) {
	prefix := string(kind) + "."
	out := map[string]models.Entity{}
	for item := range s.objects.IterBuffered() {
		if strings.HasPrefix(item.Key, prefix) {
			out[item.Val.GetID()] = item.Val.Clone()
		}
	}
	return out, nil
}

func (s *Storage) New(_ context.Context, obj models.Entity) error {
	if obj == nil {
		return errors.New("file storage: nil object")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects.Set(models.Key(obj.Kind(), obj.GetID()), obj.Clone())
	return nil
}

// Delete removes obj and whatever hangs off it: a state takes its cities,
// a city or user takes its places, an amenity is unlinked from every place.
func (s *Storage) Delete(_ context.Context, obj models.Entity) error {
	if obj == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects.Remove(models.Key(obj.Kind(), obj.GetID()))

	switch o := obj.(type) {
	case *models.State:
		for _, c := range s.snapshot(models.KindCity) {
			if city := c.(*models.City); city.StateID == o.ID {
				s.objects.Remove(models.Key(models.KindCity, city.ID))
				s.removePlaces(func(p *models.Place) bool { return p.CityID == city.ID })
			}
		}
	case *models.City:
		s.removePlaces(func(p *models.Place) bool { return p.CityID == o.ID })
	case *models.User:
		s.removePlaces(func(p *models.Place) bool { return p.UserID == o.ID })
	case *models.Amenity:
		for _, e := range s.snapshot(models.KindPlace) {
			p := e.Clone().(*models.Place)
			if p.UnlinkAmenity(o.ID) {
				s.objects.Set(models.Key(models.KindPlace, p.ID), p)
			}
		}
	}
	return nil
}

func (s *Storage) removePlaces(match func(*models.Place) bool) {
	for _, e := range s.snapshot(models.KindPlace) {
		if p := e.(*models.Place); match(p) {
			s.objects.Remove(models.Key(models.KindPlace, p.ID))
		}
	}
}

// snapshot returns the stored (uncloned) objects of kind; callers hold mu.
func (s *Storage) snapshot(kind models.Kind) []models.Entity {
	prefix := string(kind) + "."
	var out []models.Entity
	for k, v := range s.objects.Items() {
		if strings.HasPrefix(k, prefix) {
			out = append(out, v)
		}
	}
	return out
}

// Save writes every object to the backing file through a temp file and rename.
func (s *Storage) Save(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := make(map[string]map[string]json.RawMessage, s.objects.Count())
	for k, obj := range s.objects.Items() {
		rec, err := encode(obj)
		if err != nil {
			return fmt.Errorf("file storage: encode %s: %w", k, err)
		}
		doc[k] = rec
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("file storage: marshal: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".hbnb-*.json")
	if err != nil {
		return fmt.Errorf("file storage: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("file storage: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("file storage: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("file storage: rename: %w", err)
	}
	return nil
}

func (s *Storage) Close() error { return nil }

func (s *Storage) reload() error {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return nil
	}
	var doc map[string]map[string]json.RawMessage
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	for k, rec := range doc {
		obj, err := decode(rec)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		s.objects.Set(models.Key(obj.Kind(), obj.GetID()), obj)
	}
	return nil
}

// encode flattens obj into its JSON fields plus a "__class__" discriminator.
func encode(obj models.Entity) (map[string]json.RawMessage, error) {
	b, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	var rec map[string]json.RawMessage
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, err
	}
	class, _ := json.Marshal(obj.Kind())
	rec[classKey] = class
	return rec, nil
}

func decode(rec map[string]json.RawMessage) (models.Entity, error) {
	var kind models.Kind
	if err := json.Unmarshal(rec[classKey], &kind); err != nil {
		return nil, fmt.Errorf("missing %s", classKey)
	}
	obj := models.New(kind)
	if obj == nil {
		return nil, fmt.Errorf("unknown class %q", kind)
	}
	delete(rec, classKey)
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, obj); err != nil {
		return nil, err
	}
	if p, ok := obj.(*models.Place); ok && p.AmenityIDs == nil {
		p.AmenityIDs = []string{}
	}
	return obj, nil
}

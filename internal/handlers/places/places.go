package places

import "github.com/Jeomhps/hbnb-api/internal/storage"

// Package places provides the Place handlers: CRUD scoped under a city,
// amenity links and search.
//
// - list.go:      Handler.ListByCity
// - get.go:       Handler.Get
// - create.go:    Handler.CreateInCity
// - update.go:    Handler.Update
// - delete.go:    Handler.Delete
// - amenities.go: Handler.ListAmenities, Handler.LinkAmenity, Handler.UnlinkAmenity
// - search.go:    Handler.Search

// Handler wires place endpoints to the storage engine.
type Handler struct{ store storage.Storage }

// New returns a new places handler.
func New(s storage.Storage) *Handler { return &Handler{store: s} }

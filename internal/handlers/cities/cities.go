package cities

import "github.com/Jeomhps/hbnb-api/internal/storage"

// Package cities provides the City handlers. Listing and creation are
// scoped under a state; get, update and delete address a city directly.

type Handler struct{ store storage.Storage }

func New(s storage.Storage) *Handler { return &Handler{store: s} }

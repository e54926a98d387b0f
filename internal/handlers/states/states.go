package states

import "github.com/Jeomhps/hbnb-api/internal/storage"

// Package states provides the State HTTP handlers, one file per verb.

// Handler wires state endpoints to the storage engine.
type Handler struct{ store storage.Storage }

// New returns a new states handler.
func New(s storage.Storage) *Handler { return &Handler{store: s} }

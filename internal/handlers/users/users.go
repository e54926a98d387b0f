package users

import "github.com/Jeomhps/hbnb-api/internal/storage"

// Package users provides user HTTP handlers.
//
// This file defines the handler type and constructor only.
// The HTTP methods are split into dedicated files:
// - list.go:   Handler.List
// - get.go:    Handler.Get
// - create.go: Handler.Create
// - update.go: Handler.Update
// - delete.go: Handler.Delete

// Handler wires user endpoints to the storage engine.
type Handler struct{ store storage.Storage }

// New returns a new users handler.
func New(s storage.Storage) *Handler { return &Handler{store: s} }

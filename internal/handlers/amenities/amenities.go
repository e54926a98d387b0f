package amenities

import "github.com/Jeomhps/hbnb-api/internal/storage"

// Handler wires amenity endpoints to the storage engine.
type Handler struct{ store storage.Storage }

func New(s storage.Storage) *Handler { return &Handler{store: s} }

package index

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/Jeomhps/hbnb-api/internal/storage"
	"github.com/gin-gonic/gin"
)

// Handler serves the status and stats endpoints.
type Handler struct{ store storage.Storage }

func New(s storage.Storage) *Handler { return &Handler{store: s} }

// Status is a liveness probe.
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

var statsKeys = map[models.Kind]string{
	models.KindAmenity: "amenities",
	models.KindCity:    "cities",
	models.KindPlace:   "places",
	models.KindState:   "states",
	models.KindUser:    "users",
}

// Stats returns the number of objects of each type.
func (h *Handler) Stats(c *gin.Context) {
	out := make(map[string]int, len(statsKeys))
	for _, k := range models.Kinds {
		n, err := storage.Count(c.Request.Context(), h.store, k)
		if err != nil {
			common.Abort(c, err)
			return
		}
		out[statsKeys[k]] = n
	}
	c.JSON(http.StatusOK, out)
}

package places

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/Jeomhps/hbnb-api/internal/storage"
	"github.com/gin-gonic/gin"
)

// ListByCity returns the places of the city in the path.
func (h *Handler) ListByCity(c *gin.Context) {
	city, ok := common.Load[*models.City](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	places, err := storage.PlacesOf(c.Request.Context(), h.store, city.ID)
	if err != nil {
		common.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, common.Views(places, common.PlaceView))
}

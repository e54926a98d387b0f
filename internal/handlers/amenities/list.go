package amenities

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/Jeomhps/hbnb-api/internal/storage"
	"github.com/gin-gonic/gin"
)

func (h *Handler) List(c *gin.Context) {
	amenities, err := storage.List[*models.Amenity](c.Request.Context(), h.store)
	if err != nil {
		common.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, common.Views(amenities, common.AmenityView))
}

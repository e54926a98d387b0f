package amenities

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) Get(c *gin.Context) {
	a, ok := common.Load[*models.Amenity](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, common.AmenityView(a))
}

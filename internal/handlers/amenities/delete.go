package amenities

import (
	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

// Delete removes an amenity; places that linked it simply lose the link.
func (h *Handler) Delete(c *gin.Context) {
	a, ok := common.Load[*models.Amenity](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	common.Remove(c, h.store, a)
}

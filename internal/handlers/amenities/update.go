package amenities

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

type updateRequest struct {
	Name *string `json:"name" validate:"omitempty,max=128"`
}

func (h *Handler) Update(c *gin.Context) {
	a, ok := common.Load[*models.Amenity](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	var in updateRequest
	if !common.BindAndValidate(c, &in) {
		return
	}
	if in.Name != nil {
		a.Name = *in.Name
	}
	a.Touch()
	if !common.Persist(c, h.store, a) {
		return
	}
	c.JSON(http.StatusOK, common.AmenityView(a))
}

package amenities

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

type createRequest struct {
	Name *string `json:"name" validate:"required,max=128"`
}

func (h *Handler) Create(c *gin.Context) {
	var in createRequest
	if !common.BindAndValidate(c, &in) {
		return
	}
	a := models.NewAmenity(*in.Name)
	if !common.Persist(c, h.store, a) {
		return
	}
	c.JSON(http.StatusCreated, common.AmenityView(a))
}

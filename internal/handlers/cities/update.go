package cities

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

// state_id is fixed at creation and deliberately absent here.
type updateRequest struct {
	Name *string `json:"name" validate:"omitempty,max=128"`
}

func (h *Handler) Update(c *gin.Context) {
	city, ok := common.Load[*models.City](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	var in updateRequest
	if !common.BindAndValidate(c, &in) {
		return
	}
	if in.Name != nil {
		city.Name = *in.Name
	}
	city.Touch()
	if !common.Persist(c, h.store, city) {
		return
	}
	c.JSON(http.StatusOK, common.CityView(city))
}

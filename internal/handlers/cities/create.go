package cities

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

type createRequest struct {
	Name *string `json:"name" validate:"required,max=128"`
}

// CreateInState adds a city to the state in the path.
// A state_id in the body is ignored.
func (h *Handler) CreateInState(c *gin.Context) {
	st, ok := common.Load[*models.State](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	var in createRequest
	if !common.BindAndValidate(c, &in) {
		return
	}
	city := models.NewCity(st.ID, *in.Name)
	if !common.Persist(c, h.store, city) {
		return
	}
	c.JSON(http.StatusCreated, common.CityView(city))
}

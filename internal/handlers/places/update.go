package places

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

// city_id and user_id are fixed at creation and have no field here.
type updateRequest struct {
	Name *string `json:"name" validate:"omitempty,max=128"`
	attributes
}

func (h *Handler) Update(c *gin.Context) {
	p, ok := common.Load[*models.Place](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	var in updateRequest
	if !common.BindAndValidate(c, &in) {
		return
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	in.apply(p)

	p.Touch()
	if !common.Persist(c, h.store, p) {
		return
	}
	c.JSON(http.StatusOK, common.PlaceView(p))
}

package states

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

type createRequest struct {
	Name *string `json:"name" validate:"required,max=128"`
}

// Create adds a state. The body must be a JSON object carrying a name.
func (h *Handler) Create(c *gin.Context) {
	var in createRequest
	if !common.BindAndValidate(c, &in) {
		return
	}
	st := models.NewState(*in.Name)
	if !common.Persist(c, h.store, st) {
		return
	}
	c.JSON(http.StatusCreated, common.StateView(st))
}

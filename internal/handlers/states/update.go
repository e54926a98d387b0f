package states

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

// Only name is mutable; id and timestamps in the body are ignored.
type updateRequest struct {
	Name *string `json:"name" validate:"omitempty,max=128"`
}

// Update modifies a state.
// Flow:
// 1) Ensure the state exists
// 2) Validate payload
// 3) Apply the allowed fields, bump updated_at, save
func (h *Handler) Update(c *gin.Context) {
	st, ok := common.Load[*models.State](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	var in updateRequest
	if !common.BindAndValidate(c, &in) {
		return
	}
	if in.Name != nil {
		st.Name = *in.Name
	}
	st.Touch()
	if !common.Persist(c, h.store, st) {
		return
	}
	c.JSON(http.StatusOK, common.StateView(st))
}

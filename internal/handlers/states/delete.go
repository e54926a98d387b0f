package states

import (
	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

// Delete removes a state and, through the engine, its cities.
func (h *Handler) Delete(c *gin.Context) {
	st, ok := common.Load[*models.State](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	common.Remove(c, h.store, st)
}

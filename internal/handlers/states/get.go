package states

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

// Get returns a single state by id.
func (h *Handler) Get(c *gin.Context) {
	st, ok := common.Load[*models.State](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, common.StateView(st))
}

package states

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/Jeomhps/hbnb-api/internal/storage"
	"github.com/gin-gonic/gin"
)

// List returns every state.
func (h *Handler) List(c *gin.Context) {
	states, err := storage.List[*models.State](c.Request.Context(), h.store)
	if err != nil {
		common.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, common.Views(states, common.StateView))
}

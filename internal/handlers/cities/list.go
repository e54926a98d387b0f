package cities

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/Jeomhps/hbnb-api/internal/storage"
	"github.com/gin-gonic/gin"
)

// ListByState returns the cities of the state in the path.
func (h *Handler) ListByState(c *gin.Context) {
	st, ok := common.Load[*models.State](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	cities, err := storage.CitiesOf(c.Request.Context(), h.store, st.ID)
	if err != nil {
		common.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, common.Views(cities, common.CityView))
}

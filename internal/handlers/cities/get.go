package cities

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) Get(c *gin.Context) {
	city, ok := common.Load[*models.City](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, common.CityView(city))
}

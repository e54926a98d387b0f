package cities

import (
	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) Delete(c *gin.Context) {
	city, ok := common.Load[*models.City](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	common.Remove(c, h.store, city)
}

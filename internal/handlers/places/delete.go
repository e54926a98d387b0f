package places

import (
	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) Delete(c *gin.Context) {
	p, ok := common.Load[*models.Place](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	common.Remove(c, h.store, p)
}

package users

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

// Get returns a single user by id.
func (h *Handler) Get(c *gin.Context) {
	u, ok := common.Load[*models.User](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, common.UserView(u))
}

package users

import (
	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

// Delete removes a user by id, along with the places they own.
func (h *Handler) Delete(c *gin.Context) {
	u, ok := common.Load[*models.User](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	common.Remove(c, h.store, u)
}

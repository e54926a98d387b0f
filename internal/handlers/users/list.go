package users

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/Jeomhps/hbnb-api/internal/storage"
	"github.com/gin-gonic/gin"
)

// List returns all users, without their password hashes.
func (h *Handler) List(c *gin.Context) {
	users, err := storage.List[*models.User](c.Request.Context(), h.store)
	if err != nil {
		common.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, common.Views(users, common.UserView))
}

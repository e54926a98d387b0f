package users

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

type createRequest struct {
	Email     *string `json:"email" validate:"required,max=128"`
	Password  *string `json:"password" validate:"required,bcrypt"`
	FirstName *string `json:"first_name" validate:"omitempty,max=128"`
	LastName  *string `json:"last_name" validate:"omitempty,max=128"`
}

// Create adds a new user with a bcrypt-hashed password.
// Flow:
// 1) Validate payload (email, then password)
// 2) Hash the password and build the user
// 3) Save and return the user without its hash
func (h *Handler) Create(c *gin.Context) {
	var in createRequest
	if !common.BindAndValidate(c, &in) {
		return
	}

	u, err := models.NewUser(*in.Email, *in.Password)
	if err != nil {
		common.Abort(c, err)
		return
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}

	if !common.Persist(c, h.store, u) {
		return
	}
	c.JSON(http.StatusCreated, common.UserView(u))
}

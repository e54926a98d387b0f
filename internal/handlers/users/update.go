package users

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/gin-gonic/gin"
)

// id and timestamps are fixed; everything else may change.
type updateRequest struct {
	Email     *string `json:"email" validate:"omitempty,max=128"`
	Password  *string `json:"password" validate:"omitempty,bcrypt"`
	FirstName *string `json:"first_name" validate:"omitempty,max=128"`
	LastName  *string `json:"last_name" validate:"omitempty,max=128"`
}

// Update modifies a user's email, names and/or password.
// Flow:
// 1) Ensure user exists
// 2) Validate payload
// 3) Apply changes (rehash the password when one is given)
// 4) Return the updated user
func (h *Handler) Update(c *gin.Context) {
	u, ok := common.Load[*models.User](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	var in updateRequest
	if !common.BindAndValidate(c, &in) {
		return
	}

	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Password != nil {
		if err := u.SetPassword(*in.Password); err != nil {
			common.Abort(c, err)
			return
		}
	}

	u.Touch()
	if !common.Persist(c, h.store, u) {
		return
	}
	c.JSON(http.StatusOK, common.UserView(u))
}

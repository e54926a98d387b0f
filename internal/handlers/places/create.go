package places

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/errs"
	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/Jeomhps/hbnb-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// city_id comes from the path; a city_id in the body is ignored.
type createRequest struct {
	UserID *string `json:"user_id"`
	Name   *string `json:"name" validate:"required,max=128"`
	attributes
}

// attributes are the place fields a client may set on create and update.
type attributes struct {
	Description     *string  `json:"description" validate:"omitempty,max=1024"`
	NumberRooms     *int     `json:"number_rooms" validate:"omitempty,gte=0"`
	NumberBathrooms *int     `json:"number_bathrooms" validate:"omitempty,gte=0"`
	MaxGuest        *int     `json:"max_guest" validate:"omitempty,gte=0"`
	PriceByNight    *int     `json:"price_by_night" validate:"omitempty,gte=0"`
	Latitude        *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude       *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

func (a attributes) apply(p *models.Place) {
	if a.Description != nil {
		p.Description = *a.Description
	}
	if a.NumberRooms != nil {
		p.NumberRooms = *a.NumberRooms
	}
	if a.NumberBathrooms != nil {
		p.NumberBathrooms = *a.NumberBathrooms
	}
	if a.MaxGuest != nil {
		p.MaxGuest = *a.MaxGuest
	}
	if a.PriceByNight != nil {
		p.PriceByNight = *a.PriceByNight
	}
	if a.Latitude != nil {
		p.Latitude = *a.Latitude
	}
	if a.Longitude != nil {
		p.Longitude = *a.Longitude
	}
}

// CreateInCity adds a place to the city in the path.
// Flow:
// 1) Ensure the city exists
// 2) Decode the body; user_id is required and must name an existing user
// 3) Then name is required
// 4) Build, save and return the place
func (h *Handler) CreateInCity(c *gin.Context) {
	city, ok := common.Load[*models.City](c, h.store, c.Param("id"))
	if !ok {
		return
	}

	var in createRequest
	if !common.BindJSON(c, &in) {
		return
	}
	if in.UserID == nil {
		common.Abort(c, errs.NewMissingFieldError("user_id"))
		return
	}
	user, ok := common.Load[*models.User](c, h.store, *in.UserID)
	if !ok {
		return
	}
	if he := validation.Struct(&in); he != nil {
		common.Abort(c, he)
		return
	}

	p := models.NewPlace(city.ID, user.ID, *in.Name)
	in.apply(p)
	if !common.Persist(c, h.store, p) {
		return
	}
	c.JSON(http.StatusCreated, common.PlaceView(p))
}

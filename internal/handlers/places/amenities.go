package places

import (
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/errs"
	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/Jeomhps/hbnb-api/internal/storage"
	"github.com/gin-gonic/gin"
)

// ListAmenities returns the amenities linked to a place.
func (h *Handler) ListAmenities(c *gin.Context) {
	p, ok := common.Load[*models.Place](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	amenities, err := storage.AmenitiesOf(c.Request.Context(), h.store, p)
	if err != nil {
		common.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, common.Views(amenities, common.AmenityView))
}

// LinkAmenity links an amenity to a place: 201 when new, 200 when it already was.
func (h *Handler) LinkAmenity(c *gin.Context) {
	p, ok := common.Load[*models.Place](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	a, ok := common.Load[*models.Amenity](c, h.store, c.Param("amenity_id"))
	if !ok {
		return
	}
	if !p.LinkAmenity(a.ID) {
		c.JSON(http.StatusOK, common.AmenityView(a))
		return
	}
	p.Touch()
	if !common.Persist(c, h.store, p) {
		return
	}
	c.JSON(http.StatusCreated, common.AmenityView(a))
}

// UnlinkAmenity removes the link; 404 when it does not exist.
func (h *Handler) UnlinkAmenity(c *gin.Context) {
	p, ok := common.Load[*models.Place](c, h.store, c.Param("id"))
	if !ok {
		return
	}
	a, ok := common.Load[*models.Amenity](c, h.store, c.Param("amenity_id"))
	if !ok {
		return
	}
	if !p.UnlinkAmenity(a.ID) {
		common.Abort(c, errs.NewNotFoundError())
		return
	}
	p.Touch()
	if !common.Persist(c, h.store, p) {
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

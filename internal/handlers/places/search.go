package places

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/Jeomhps/hbnb-api/internal/storage"
	"github.com/gin-gonic/gin"
)

type searchRequest struct {
	States    []string `json:"states"`
	Cities    []string `json:"cities"`
	Amenities []string `json:"amenities"`
}

// Search returns the places matching the state, city and amenity filters.
// The response omits each place's amenity list.
func (h *Handler) Search(c *gin.Context) {
	var in searchRequest
	if !common.BindJSON(c, &in) {
		return
	}
	places, err := searchPlaces(c.Request.Context(), h.store, in)
	if err != nil {
		common.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, common.Views(places, common.PlaceSummaryView))
}

// searchPlaces unions the places of the given states (through their cities)
// and cities, falling back to every place when that union is empty, then
// keeps the places linked to every requested amenity.
func searchPlaces(ctx context.Context, s storage.Storage, in searchRequest) ([]*models.Place, error) {
	all, err := storage.List[*models.Place](ctx, s)
	if err != nil {
		return nil, err
	}
	if len(in.States) == 0 && len(in.Cities) == 0 && len(in.Amenities) == 0 {
		return all, nil
	}

	cityIDs := map[string]bool{}
	for _, id := range in.States {
		st, err := storage.Lookup[*models.State](ctx, s, id)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		cities, err := storage.CitiesOf(ctx, s, st.ID)
		if err != nil {
			return nil, err
		}
		for _, city := range cities {
			cityIDs[city.ID] = true
		}
	}
	for _, id := range in.Cities {
		cityIDs[id] = true
	}

	// A set of city ids makes the union deduplicated by construction.
	result := all
	if len(cityIDs) > 0 {
		result = slices.DeleteFunc(slices.Clone(all), func(p *models.Place) bool { return !cityIDs[p.CityID] })
		if len(result) == 0 {
			result = all
		}
	}

	for _, aid := range in.Amenities {
		result = slices.DeleteFunc(result, func(p *models.Place) bool { return !p.HasAmenity(aid) })
	}
	return result, nil
}

package router

import (
	"slices"
	"time"

	"github.com/Jeomhps/hbnb-api/internal/handlers/amenities"
	"github.com/Jeomhps/hbnb-api/internal/handlers/cities"
	"github.com/Jeomhps/hbnb-api/internal/handlers/common"
	"github.com/Jeomhps/hbnb-api/internal/handlers/index"
	"github.com/Jeomhps/hbnb-api/internal/handlers/places"
	"github.com/Jeomhps/hbnb-api/internal/handlers/states"
	"github.com/Jeomhps/hbnb-api/internal/handlers/users"
	"github.com/Jeomhps/hbnb-api/internal/middleware"
	"github.com/Jeomhps/hbnb-api/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Options tunes the outer middleware.
type Options struct {
	CORSOrigins []string
	Gzip        bool
}

// New builds the gin engine with every /api/v1 route bound to store.
func New(store storage.Storage, log zerolog.Logger, opts Options) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(nil)
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))
	if opts.Gzip {
		r.Use(gzip.Gzip(gzip.DefaultCompression))
	}

	indexH := index.New(store)
	stateH := states.New(store)
	cityH := cities.New(store)
	amenityH := amenities.New(store)
	userH := users.New(store)
	placeH := places.New(store)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/status", indexH.Status)
		v1.GET("/stats", indexH.Stats)

		v1.GET("/states", stateH.List)
		v1.POST("/states", stateH.Create)
		v1.GET("/states/:id", stateH.Get)
		v1.PUT("/states/:id", stateH.Update)
		v1.DELETE("/states/:id", stateH.Delete)

		v1.GET("/states/:id/cities", cityH.ListByState)
		v1.POST("/states/:id/cities", cityH.CreateInState)
		v1.GET("/cities/:id", cityH.Get)
		v1.PUT("/cities/:id", cityH.Update)
		v1.DELETE("/cities/:id", cityH.Delete)

		v1.GET("/amenities", amenityH.List)
		v1.POST("/amenities", amenityH.Create)
		v1.GET("/amenities/:id", amenityH.Get)
		v1.PUT("/amenities/:id", amenityH.Update)
		v1.DELETE("/amenities/:id", amenityH.Delete)

		v1.GET("/users", userH.List)
		v1.POST("/users", userH.Create)
		v1.GET("/users/:id", userH.Get)
		v1.PUT("/users/:id", userH.Update)
		v1.DELETE("/users/:id", userH.Delete)

		v1.GET("/cities/:id/places", placeH.ListByCity)
		v1.POST("/cities/:id/places", placeH.CreateInCity)
		v1.GET("/places/:id", placeH.Get)
		v1.PUT("/places/:id", placeH.Update)
		v1.DELETE("/places/:id", placeH.Delete)

		v1.GET("/places/:id/amenities", placeH.ListAmenities)
		v1.POST("/places/:id/amenities/:amenity_id", placeH.LinkAmenity)
		v1.DELETE("/places/:id/amenities/:amenity_id", placeH.UnlinkAmenity)

		v1.POST("/places_search", placeH.Search)
	}
	r.NoRoute(common.NotFound)
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

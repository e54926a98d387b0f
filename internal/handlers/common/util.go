package common

import (
	"errors"
	"net/http"

	"github.com/Jeomhps/hbnb-api/internal/errs"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/Jeomhps/hbnb-api/internal/storage"
	"github.com/Jeomhps/hbnb-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Package common provides the small helpers every resource handler shares:
// body binding, error rendering, lookups and persistence.

// Abort writes err as the response and stops the chain. An *errs.HTTPError is
// rendered as is; anything else is logged and hidden behind a 500.
func Abort(c *gin.Context, err error) {
	var he *errs.HTTPError
	if !errors.As(err, &he) {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
		_ = c.Error(err)
		he = errs.NewInternalServerError()
	}
	c.AbortWithStatusJSON(he.Status, gin.H{"error": he.Message, "code": he.Code})
}

// BindJSON decodes the request body into dst, responding 400 on failure.
func BindJSON(c *gin.Context, dst any) bool {
	body, err := c.GetRawData()
	if err != nil {
		Abort(c, errs.NewNotJSONError())
		return false
	}
	if he := validation.Decode(body, dst); he != nil {
		Abort(c, he)
		return false
	}
	return true
}

// BindAndValidate is BindJSON followed by the struct's `validate` tags.
func BindAndValidate(c *gin.Context, dst any) bool {
	if !BindJSON(c, dst) {
		return false
	}
	if he := validation.Struct(dst); he != nil {
		Abort(c, he)
		return false
	}
	return true
}

// Load fetches the object of type T with the given id, responding 404 when absent.
func Load[T models.Entity](c *gin.Context, s storage.Storage, id string) (T, bool) {
	obj, err := storage.Lookup[T](c.Request.Context(), s, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			Abort(c, errs.NewNotFoundError())
		} else {
			Abort(c, err)
		}
		return obj, false
	}
	return obj, true
}

// Persist stores obj and saves the engine, responding 500 on failure.
func Persist(c *gin.Context, s storage.Storage, obj models.Entity) bool {
	ctx := c.Request.Context()
	if err := s.New(ctx, obj); err != nil {
		Abort(c, err)
		return false
	}
	if err := s.Save(ctx); err != nil {
		Abort(c, err)
		return false
	}
	return true
}

// Remove deletes obj, saves, and answers 200 with an empty object.
func Remove(c *gin.Context, s storage.Storage, obj models.Entity) {
	ctx := c.Request.Context()
	if err := s.Delete(ctx, obj); err != nil {
		Abort(c, err)
		return
	}
	if err := s.Save(ctx); err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// NotFound is the fallback for unknown routes.
func NotFound(c *gin.Context) {
	Abort(c, errs.NewNotFoundError())
}

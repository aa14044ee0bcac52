package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hospital-portal-server/internal/store"
	"hospital-portal-server/internal/utils"
)

// renderStoreError maps the store error taxonomy onto HTTP responses.
func renderStoreError(c *gin.Context, err error) {
	var validationErr *store.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.BadRequest(c, validationErr.Error())
	case errors.Is(err, store.ErrSlotTaken):
		utils.Conflict(c, err.Error())
	case errors.Is(err, store.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, store.ErrForbidden):
		utils.Forbidden(c, err.Error())
	default:
		utils.InternalServerError(c, err.Error())
	}
}

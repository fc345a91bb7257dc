package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/AtifZafar596/Jetak-food-backend-api/pkg/apperr"
	"github.com/AtifZafar596/Jetak-food-backend-api/pkg/resp"
)

// fail maps the service error taxonomy onto HTTP responses.
func fail(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		resp.BadRequest(c, err.Error())
	case apperr.IsNotFound(err):
		resp.NotFound(c, err.Error())
	case apperr.IsInvalidTransition(err):
		resp.Conflict(c, err.Error())
	case apperr.IsConflict(err):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

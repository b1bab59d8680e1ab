package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/bellitaspa/agenda-api/pkg/errors"
	"github.com/bellitaspa/agenda-api/pkg/httputil"
)

// ParseID parses the :id path parameter. On failure it writes the error
// response and returns false, so callers can bail out with a bare return.
func ParseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		verr := apperrors.NewValidation()
		verr.Add("id", "must be a valid UUID")
		httputil.RespondWithError(c, verr)
		return uuid.Nil, false
	}
	return id, true
}

// BindJSON binds the request body into obj, writing a validation error
// response on malformed JSON.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		verr := apperrors.NewValidation()
		verr.Add("body", "malformed request body")
		httputil.RespondWithError(c, verr)
		return false
	}
	return true
}

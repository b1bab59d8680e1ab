package httputil

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/bellitaspa/agenda-api/pkg/errors"
)

// Response wraps all API responses
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error represents API error
type Error struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithCreated sends a 201 response
func RespondWithCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithError maps each domain error kind to a distinct status so
// the presentation layer can show a distinct notification per kind.
func RespondWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var fields map[string]string

	var (
		validation *apperrors.ValidationError
		price      *apperrors.InvalidPriceError
		reference  *apperrors.ReferenceNotFoundError
		trans      *apperrors.InvalidTransitionError
		locked     *apperrors.AppointmentLockedError
		notFound   *apperrors.NotFoundError
		storage    *apperrors.StorageError
	)

	switch {
	case errors.As(err, &validation):
		status = http.StatusBadRequest
		fields = validation.Fields
	case errors.As(err, &price):
		status = http.StatusBadRequest
	case errors.As(err, &reference):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &trans):
		status = http.StatusConflict
	case errors.As(err, &locked):
		status = http.StatusConflict
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &storage):
		status = http.StatusBadGateway
	}

	c.Error(err)
	c.JSON(status, Response{
		Success: false,
		Error: &Error{
			Code:    status,
			Message: err.Error(),
			Fields:  fields,
		},
	})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axportal/backend/internal/model"
	"github.com/axportal/backend/internal/service"
	"github.com/axportal/backend/internal/sktai"
)

// writeError converts service and upstream failures to the portal's error
// JSON. Unexpected errors become a generic external error; no stack traces
// reach the caller.
func writeError(c *gin.Context, err error) {
	var apiErr *sktai.APIError
	if errors.As(err, &apiErr) {
		c.JSON(statusForKind(apiErr.Kind), model.ErrorResponse{
			Error:   string(apiErr.Kind),
			Message: apiErr.Error(),
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid_input"})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, model.ErrorResponse{Error: "forbidden"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, model.ErrorResponse{Error: "conflict"})
	default:
		c.JSON(http.StatusBadGateway, model.ErrorResponse{Error: "external_error", Message: "request could not be completed"})
	}
}

func statusForKind(kind sktai.ErrorKind) int {
	switch kind {
	case sktai.KindBadRequest:
		return http.StatusBadRequest
	case sktai.KindUnauthorized:
		return http.StatusUnauthorized
	case sktai.KindForbidden:
		return http.StatusForbidden
	case sktai.KindNotFound:
		return http.StatusNotFound
	case sktai.KindConflict:
		return http.StatusConflict
	case sktai.KindValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

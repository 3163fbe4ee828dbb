package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/axportal/backend/internal/service"
	"github.com/axportal/backend/internal/sktai"
)

func recordError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	writeError(c, err)
	return rec
}

func TestWriteErrorMapsUpstreamKinds(t *testing.T) {
	cases := []struct {
		kind   sktai.ErrorKind
		status int
	}{
		{sktai.KindBadRequest, http.StatusBadRequest},
		{sktai.KindUnauthorized, http.StatusUnauthorized},
		{sktai.KindForbidden, http.StatusForbidden},
		{sktai.KindNotFound, http.StatusNotFound},
		{sktai.KindConflict, http.StatusConflict},
		{sktai.KindValidation, http.StatusUnprocessableEntity},
		{sktai.KindServerError, http.StatusBadGateway},
		{sktai.KindExternal, http.StatusBadGateway},
		{sktai.KindLoginFailed, http.StatusBadGateway},
	}
	for _, tc := range cases {
		rec := recordError(&sktai.APIError{Kind: tc.kind, Message: "boom"})
		assert.Equal(t, tc.status, rec.Code, string(tc.kind))
		assert.Contains(t, rec.Body.String(), string(tc.kind))
	}
}

func TestWriteErrorMapsWrappedUpstreamError(t *testing.T) {
	wrapped := fmt.Errorf("list datasets: %w", &sktai.APIError{Kind: sktai.KindNotFound, Message: "missing"})
	rec := recordError(wrapped)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWriteErrorMapsServiceSentinels(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{service.ErrInvalidInput, http.StatusBadRequest},
		{service.ErrUnauthorized, http.StatusUnauthorized},
		{service.ErrForbidden, http.StatusForbidden},
		{service.ErrConflict, http.StatusConflict},
	}
	for _, tc := range cases {
		rec := recordError(tc.err)
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
	}
}

func TestWriteErrorHidesUnexpectedFailures(t *testing.T) {
	rec := recordError(errors.New("pgx: connection reset"))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pgx")
}

package sktai

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateStatusKinds(t *testing.T) {
	cases := []struct {
		status int
		kind   ErrorKind
	}{
		{http.StatusBadRequest, KindBadRequest},
		{http.StatusUnauthorized, KindUnauthorized},
		{http.StatusForbidden, KindForbidden},
		{http.StatusNotFound, KindNotFound},
		{http.StatusConflict, KindConflict},
		{http.StatusUnprocessableEntity, KindValidation},
		{http.StatusInternalServerError, KindServerError},
		{http.StatusBadGateway, KindExternal},
		{http.StatusServiceUnavailable, KindExternal},
	}
	for _, tc := range cases {
		err := Translate(tc.status, nil)
		assert.Equal(t, tc.kind, err.Kind, "status %d", tc.status)
		assert.Equal(t, tc.status, err.Status)
	}
}

func TestTranslateDetectsDatabaseError(t *testing.T) {
	body := []byte(`{"detail":"Database error: duplicate key value violates unique constraint"}`)
	err := Translate(http.StatusUnprocessableEntity, body)

	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "upstream database error", err.Message)
	assert.Contains(t, err.Detail, "duplicate key")

	plain := Translate(http.StatusUnprocessableEntity, []byte(`{"detail":"name is required"}`))
	assert.Equal(t, "upstream validation failed", plain.Message)
}

func TestExtractDetailPrecedence(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"detail wins", `{"detail":"d","message":"m","error":"e"}`, "d"},
		{"structured detail", `{"detail":{"loc":["body"],"msg":"invalid"}}`, `{"loc":["body"],"msg":"invalid"}`},
		{"message next", `{"message":"m","error":"e"}`, "m"},
		{"error string", `{"error":"e"}`, "e"},
		{"nested error message", `{"error":{"message":"nested"}}`, "nested"},
		{"raw body", `plain text failure`, "plain text failure"},
		{"empty", ``, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractDetail([]byte(tc.body)))
		})
	}
}

func TestExtractDetailTruncatesLongBodies(t *testing.T) {
	long := strings.Repeat("x", 600)
	got := extractDetail([]byte(long))

	assert.Len(t, got, maxDetailLength+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestRetryableOnlyForUnauthorized(t *testing.T) {
	assert.True(t, (&APIError{Kind: KindUnauthorized}).Retryable())
	for _, kind := range []ErrorKind{
		KindBadRequest, KindForbidden, KindNotFound, KindConflict,
		KindValidation, KindServerError, KindExternal, KindLoginFailed, KindRefreshFailed,
	} {
		assert.False(t, (&APIError{Kind: kind}).Retryable(), string(kind))
	}
}

func TestAPIErrorString(t *testing.T) {
	assert.Equal(t, "upstream resource not found", (&APIError{Message: "upstream resource not found"}).Error())
	assert.Equal(t, "upstream resource not found: dataset d-1",
		(&APIError{Message: "upstream resource not found", Detail: "dataset d-1"}).Error())
}

package sktai

import (
	"encoding/json"
	"net/http"
	"strings"
)

type ErrorKind string

const (
	KindBadRequest    ErrorKind = "bad_request"
	KindUnauthorized  ErrorKind = "unauthorized"
	KindForbidden     ErrorKind = "forbidden"
	KindNotFound      ErrorKind = "not_found"
	KindConflict      ErrorKind = "conflict"
	KindValidation    ErrorKind = "validation_error"
	KindServerError   ErrorKind = "server_error"
	KindExternal      ErrorKind = "external_error"
	KindLoginFailed   ErrorKind = "login_failed"
	KindRefreshFailed ErrorKind = "refresh_failed"
)

const (
	maxDetailLength     = 500
	databaseErrorMarker = "Database error"
)

// APIError is the local form of an upstream failure.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Detail  string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return e.Message
	}
	return e.Message + ": " + e.Detail
}

// Retryable reports whether the caller may retry once after a token eviction.
// Only a 401 qualifies; every other kind is terminal for the request.
func (e *APIError) Retryable() bool {
	return e.Kind == KindUnauthorized
}

// Translate maps an upstream status code and response body to an APIError.
func Translate(status int, body []byte) *APIError {
	detail := extractDetail(body)
	err := &APIError{Status: status, Detail: detail}

	switch status {
	case http.StatusBadRequest:
		err.Kind = KindBadRequest
		err.Message = "upstream rejected the request"
	case http.StatusUnauthorized:
		err.Kind = KindUnauthorized
		err.Message = "upstream authorization failed"
	case http.StatusForbidden:
		err.Kind = KindForbidden
		err.Message = "upstream denied access"
	case http.StatusNotFound:
		err.Kind = KindNotFound
		err.Message = "upstream resource not found"
	case http.StatusConflict:
		err.Kind = KindConflict
		err.Message = "upstream resource conflict"
	case http.StatusUnprocessableEntity:
		err.Kind = KindValidation
		// Upstream reports database failures through 422 as well.
		if strings.Contains(detail, databaseErrorMarker) {
			err.Message = "upstream database error"
		} else {
			err.Message = "upstream validation failed"
		}
	case http.StatusInternalServerError:
		err.Kind = KindServerError
		err.Message = "upstream internal error"
	default:
		err.Kind = KindExternal
		err.Message = "unexpected upstream response"
	}
	return err
}

// extractDetail pulls a human-readable message out of an upstream error body:
// detail, then message, then error (string or nested message), then the raw
// body truncated.
func extractDetail(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return truncateDetail(trimmed)
	}

	if value, ok := payload["detail"]; ok {
		if text, ok := value.(string); ok {
			return truncateDetail(text)
		}
		if raw, err := json.Marshal(value); err == nil {
			return truncateDetail(string(raw))
		}
	}
	if text, ok := payload["message"].(string); ok {
		return truncateDetail(text)
	}
	if value, ok := payload["error"]; ok {
		switch typed := value.(type) {
		case string:
			return truncateDetail(typed)
		case map[string]any:
			if text, ok := typed["message"].(string); ok {
				return truncateDetail(text)
			}
		}
	}
	return truncateDetail(trimmed)
}

func truncateDetail(text string) string {
	if len(text) <= maxDetailLength {
		return text
	}
	return text[:maxDetailLength] + "..."
}

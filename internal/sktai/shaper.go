package sktai

import (
	"net/http"
	"strings"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"

	loginFragment = "/auth/login"
)

// Matching is substring containment, so fragments that contain another
// fragment must come first in the list.
var multipartFragments = []string{
	"/knowledge/repos/external",
	"/knowledge/repos/files",
	"/datasets/upload/files",
	"/models/upload/code",
	"/servings/deployments/custom",
	"/documents/upload",
	"/audio/translations",
	"/agents/test/stream",
}

var passthroughFragments = []string{
	"/agent_gateway/",
	"/model_gateway/",
}

// Decision is the per-request shaping outcome: which Content-Type to apply,
// if any, and whether the managed Authorization header may be attached.
type Decision struct {
	ContentType    string
	SetContentType bool
	AttachAuth     bool
	Login          bool
}

// Shape classifies an outbound request by method and URL. Multipart endpoints
// keep their writer-provided Content-Type; login requests use form encoding
// and never carry a managed token; gateway passthrough routes forward the
// caller's own bearer.
func Shape(method, rawURL string) Decision {
	d := Decision{AttachAuth: !matchesAny(rawURL, passthroughFragments)}

	if matchesAny(rawURL, multipartFragments) {
		return d
	}

	if method == http.MethodPost && strings.Contains(rawURL, loginFragment) {
		d.ContentType = contentTypeForm
		d.SetContentType = true
		d.AttachAuth = false
		d.Login = true
		return d
	}

	d.ContentType = contentTypeJSON
	d.SetContentType = true
	return d
}

func matchesAny(rawURL string, fragments []string) bool {
	for _, fragment := range fragments {
		if strings.Contains(rawURL, fragment) {
			return true
		}
	}
	return false
}

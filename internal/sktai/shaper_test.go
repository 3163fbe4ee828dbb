package sktai

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeMultipartLeavesContentTypeAlone(t *testing.T) {
	urls := []string{
		"https://sktai.example.com/api/v1/knowledge/repos/external",
		"https://sktai.example.com/api/v1/knowledge/repos/files",
		"https://sktai.example.com/api/v1/datasets/upload/files",
		"https://sktai.example.com/api/v1/models/upload/code",
		"https://sktai.example.com/api/v1/servings/deployments/custom",
		"https://sktai.example.com/api/v1/documents/upload",
		"https://sktai.example.com/api/v1/audio/translations",
		"https://sktai.example.com/api/v1/agents/test/stream",
	}
	for _, rawURL := range urls {
		d := Shape(http.MethodPost, rawURL)
		assert.False(t, d.SetContentType, rawURL)
		assert.True(t, d.AttachAuth, rawURL)
		assert.False(t, d.Login, rawURL)
	}
}

func TestShapeLoginUsesFormEncoding(t *testing.T) {
	d := Shape(http.MethodPost, "https://sktai.example.com/api/v1/auth/login")
	assert.True(t, d.SetContentType)
	assert.Equal(t, "application/x-www-form-urlencoded", d.ContentType)
	assert.False(t, d.AttachAuth)
	assert.True(t, d.Login)
}

func TestShapeLoginOnlyAppliesToPost(t *testing.T) {
	d := Shape(http.MethodGet, "https://sktai.example.com/api/v1/auth/login")
	assert.Equal(t, "application/json", d.ContentType)
	assert.True(t, d.AttachAuth)
	assert.False(t, d.Login)
}

func TestShapeGatewayPassthroughSkipsManagedAuth(t *testing.T) {
	for _, rawURL := range []string{
		"https://sktai.example.com/api/v1/agent_gateway/app-1/invoke",
		"https://sktai.example.com/api/v1/model_gateway/chat/completions",
	} {
		d := Shape(http.MethodPost, rawURL)
		assert.False(t, d.AttachAuth, rawURL)
		assert.True(t, d.SetContentType, rawURL)
		assert.Equal(t, "application/json", d.ContentType, rawURL)
	}
}

func TestShapeDefaultsToJSON(t *testing.T) {
	d := Shape(http.MethodGet, "https://sktai.example.com/api/v1/datasets?page=1")
	assert.True(t, d.SetContentType)
	assert.Equal(t, "application/json", d.ContentType)
	assert.True(t, d.AttachAuth)
	assert.False(t, d.Login)
}

package sktai

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/axportal/backend/internal/config"
	"github.com/axportal/backend/internal/logger"
)

var tlsBypassWarning sync.Once

// NewHTTPClient builds the shared upstream HTTP client with the configured
// connect and read timeouts.
func NewHTTPClient(cfg config.SktaiConfig, log *logger.Logger) *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
	}
	if cfg.InsecureSkipVerify {
		tlsBypassWarning.Do(func() {
			log.Warn("upstream TLS certificate verification is disabled")
		})
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // deployment flag
	}
	return &http.Client{
		Timeout:   cfg.ReadTimeout,
		Transport: transport,
	}
}

// Client is the shared request pipeline for all platform resource clients:
// request shaping, Authorization attachment, bounded network retry, one
// evict-and-retry on 401, and error translation.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	tokens        *TokenManager
	adminUsername string
	retryCount    int
	retryBackoff  time.Duration
	log           *logger.Logger
}

func NewClient(cfg config.SktaiConfig, httpClient *http.Client, tokens *TokenManager, log *logger.Logger) *Client {
	return &Client{
		baseURL:       trimBaseURL(cfg.BaseURL),
		httpClient:    httpClient,
		tokens:        tokens,
		adminUsername: cfg.AdminUsername,
		retryCount:    cfg.RetryCount,
		retryBackoff:  cfg.RetryBackoff,
		log:           log,
	}
}

type callOptions struct {
	query       url.Values
	body        any
	rawBody     []byte
	contentType string // set by the multipart helper, overrides shaping
	bearer      string // caller-supplied token for passthrough routes
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.call(ctx, http.MethodGet, path, callOptions{query: query}, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPost, path, callOptions{body: body}, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPut, path, callOptions{body: body}, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.call(ctx, http.MethodDelete, path, callOptions{}, nil)
}

// upload sends a multipart form. The shaped decision for upload paths leaves
// Content-Type alone, so the writer's boundary header survives.
func (c *Client) upload(ctx context.Context, path string, fields map[string]string, fileField, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("write multipart field: %w", err)
		}
	}
	part, err := writer.CreateFormFile(fileField, filename)
	if err != nil {
		return fmt.Errorf("create multipart file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy multipart file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return err
	}

	return c.call(ctx, http.MethodPost, path, callOptions{
		rawBody:     buf.Bytes(),
		contentType: writer.FormDataContentType(),
	}, out)
}

func (c *Client) call(ctx context.Context, method, path string, opts callOptions, out any) error {
	payload := opts.rawBody
	if payload == nil && opts.body != nil {
		encoded, err := json.Marshal(opts.body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = encoded
	}

	endpoint := c.baseURL + path
	if len(opts.query) > 0 {
		endpoint += "?" + opts.query.Encode()
	}
	decision := Shape(method, endpoint)

	status, respBody, err := c.send(ctx, method, endpoint, decision, payload, opts)
	if err != nil {
		return err
	}

	// One application-level retry: a 401 means the cached token went stale,
	// so evict and re-authenticate before the second attempt.
	if status == http.StatusUnauthorized && decision.AttachAuth {
		username := c.actingUsername(ctx)
		c.tokens.Evict(username)
		c.log.Debug("retrying after upstream 401", "username", username, "path", path)
		status, respBody, err = c.send(ctx, method, endpoint, decision, payload, opts)
		if err != nil {
			return err
		}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		apiErr := Translate(status, respBody)
		if apiErr.Kind == KindUnauthorized {
			c.tokens.Evict(c.actingUsername(ctx))
		}
		return apiErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode upstream response: %w", err)
		}
	}
	return nil
}

// send performs one logical attempt, with a bounded retry loop for
// network-level failures only.
func (c *Client) send(ctx context.Context, method, endpoint string, decision Decision, payload []byte, opts callOptions) (int, []byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.retryCount; attempt++ {
		if attempt > 0 {
			time.Sleep(c.retryBackoff * time.Duration(attempt))
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
		if err != nil {
			return 0, nil, err
		}
		c.applyHeaders(ctx, req, decision, opts)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		return resp.StatusCode, body, nil
	}
	return 0, nil, fmt.Errorf("upstream request failed: %w", lastErr)
}

// applyHeaders sets shaped headers, clearing prior values first so retries
// never stack duplicates.
func (c *Client) applyHeaders(ctx context.Context, req *http.Request, decision Decision, opts callOptions) {
	if opts.contentType != "" {
		req.Header.Del("Content-Type")
		req.Header.Set("Content-Type", opts.contentType)
	} else if decision.SetContentType {
		req.Header.Del("Content-Type")
		req.Header.Set("Content-Type", decision.ContentType)
	}

	req.Header.Del("Authorization")
	if opts.bearer != "" {
		req.Header.Set("Authorization", defaultTokenType+" "+opts.bearer)
		return
	}
	if !decision.AttachAuth {
		return
	}
	if header, ok := c.tokens.AuthorizationHeader(ctx, c.actingUsername(ctx)); ok {
		req.Header.Set("Authorization", header)
	}
}

func (c *Client) actingUsername(ctx context.Context) string {
	if username := UsernameFromContext(ctx); username != "" {
		return username
	}
	return c.adminUsername
}

func trimBaseURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/")
}

// Package backend implements the central client for the remote REST service
// that owns all authoritative data. Every repository dispatches through one
// Client, which injects the session's bearer token, applies the configured
// timeout, and extracts the backend's message from non-2xx bodies.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"backoffice/config"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/session"

	"github.com/pkg/errors"
)

// Client is the single dispatch point for backend requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a backend client from config.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Backend.Timeout,
		},
		logger: logger,
	}
}

// get issues a GET against a backend path and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}

	return c.do(req, out)
}

// getBinary issues a GET against a backend path and returns the raw body.
func (c *Client) getBinary(ctx context.Context, path string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return nil, err
	}

	return c.doRaw(req)
}

// getURL fetches an absolute URL (e.g. a hosted product image) and returns
// the raw body. The bearer token is attached only for same-origin URLs.
func (c *Client) getURL(ctx context.Context, absolute string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, absolute, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if strings.HasPrefix(absolute, c.baseURL) {
		c.authorize(req)
	}

	return c.doRaw(req)
}

// sendJSON issues a JSON-bodied request and decodes the JSON response.
func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, path, nil, payload, "application/json")
	if err != nil {
		return err
	}

	return c.do(req, out)
}

// postMultipart issues a multipart form submission with attached files and
// decodes the JSON response.
func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, files []repository.File, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return errors.WithStack(err)
		}
	}

	for _, file := range files {
		part, err := writer.CreateFormFile(file.FieldName, file.Name)
		if err != nil {
			return errors.WithStack(err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return errors.WithStack(err)
		}
	}

	if err := writer.Close(); err != nil {
		return errors.WithStack(err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf, writer.FormDataContentType())
	if err != nil {
		return err
	}

	return c.do(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	return req, nil
}

// authorize injects the backend token from the request's session context.
// Requests outside a session (login, register) go out without credentials.
func (c *Client) authorize(req *http.Request) {
	if token, ok := session.TokenFromContext(req.Context()); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) do(req *http.Request, out any) error {
	body, err := c.doRaw(req)
	if err != nil {
		return err
	}

	if out == nil || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", req.Method, req.URL.Path)
	}

	return nil
}

func (c *Client) doRaw(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrBackendUnreachable, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Non-2xx is a failure even when the body parses; surface the
	// backend's message when it sent one.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.WithStack(domainerrors.NewBackendError(resp.StatusCode, extractMessage(body)))
	}

	return body, nil
}

// extractMessage pulls the conventional {"message": ...} field out of an
// error body, returning "" when absent or unparsable.
func extractMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	return envelope.Message
}

// isNotFound reports whether err is a backend 404.
func isNotFound(err error) bool {
	var backendErr *domainerrors.BackendError
	if errors.As(err, &backendErr) {
		return backendErr.HTTPCode() == http.StatusNotFound
	}

	return false
}

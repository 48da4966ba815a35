package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"restaurant-client/constants"
)

// TokenSource supplies the current bearer token, or "" when the session
// is anonymous. Resolved on every request so a login or logout takes
// effect immediately.
type TokenSource func() string

// Client is a thin wrapper over the restaurant API: JSON framing, bearer
// injection and error unwrapping. It owns no domain logic.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	uploadClient *http.Client
	tokens       TokenSource
}

func New(baseURL string, tokens TokenSource) *Client {
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}
	if tokens == nil {
		tokens = func() string { return "" }
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: constants.RequestTimeout},
		uploadClient: &http.Client{Timeout: constants.UploadTimeout},
		tokens:       tokens,
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return handleResponse(resp, out)
}

// Upload sends a multipart form with a single file field. Uploads get the
// longer timeout and no explicit Content-Type so the multipart writer can
// set its own boundary.
func (c *Client) Upload(ctx context.Context, path, field, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setAuthHeader(req)

	resp, err := c.uploadClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return handleResponse(resp, out)
}

func (c *Client) setAuthHeader(req *http.Request) {
	if token := c.tokens(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func handleResponse(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{
			Status:  resp.StatusCode,
			Message: http.StatusText(resp.StatusCode),
		}
		var body struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
			apiErr.Message = body.Message
		}
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

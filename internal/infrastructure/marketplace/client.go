package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainerrors "komoralink.backend/internal/domain/errors"
)

// Client reaches the marketplace REST API over HTTPS/JSON. It is the
// only way the edge talks to the upstream; nothing here caches or
// retries, a failed call surfaces to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a marketplace API client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type upstreamError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do performs one JSON request against the upstream API. A non-empty
// token is forwarded as a bearer credential.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domainerrors.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.statusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domainerrors.DecodeError{Field: "body", Reason: "is not valid JSON"}
	}
	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	var ue upstreamError
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&ue)
	message := ue.Message
	if message == "" {
		message = ue.Error
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domainerrors.NotFound(message)
	case resp.StatusCode == http.StatusUnauthorized:
		return domainerrors.Unauthorized(message)
	case resp.StatusCode == http.StatusForbidden:
		return domainerrors.Forbidden(message)
	case resp.StatusCode >= http.StatusInternalServerError:
		return domainerrors.BadGateway(message, domainerrors.ErrUpstreamFailure)
	default:
		return domainerrors.NewAppError(resp.StatusCode, message, domainerrors.ErrUpstreamRejected)
	}
}

// Package directus implements coldlead's lead, list and schema services
// against the REST API of a Directus instance.
package directus

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

	"github.com/arcigy/coldlead"
)

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response ends up in messages.
const maxErrorBody = 512

// Client sends authenticated requests to the Directus REST API.
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the static token sent as a bearer token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a new Client for the instance at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// envelope is the wrapper Directus puts around every payload.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []apiError      `json:"errors"`
}

type apiError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

// do sends a request and decodes the data member of the response into out,
// which may be nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, r)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("directus %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("directus %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(method, path, resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return coldlead.Errorf(coldlead.EINTERNAL, "directus %s %s: malformed response: %s", method, path, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return coldlead.Errorf(coldlead.EINTERNAL, "directus %s %s: unexpected data: %s", method, path, err)
	}
	return nil
}

// statusError maps a failed response to an application error.
func statusError(method, path string, status int, body []byte) error {
	msg := errorMessage(body)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return coldlead.Errorf(coldlead.EUNAUTHORIZED, "directus %s %s: %s", method, path, msg)
	case status == http.StatusNotFound:
		return coldlead.Errorf(coldlead.ENOTFOUND, "directus %s %s: %s", method, path, msg)
	case status == http.StatusConflict || strings.Contains(msg, "already exists"):
		return coldlead.Errorf(coldlead.ECONFLICT, "directus %s %s: %s", method, path, msg)
	default:
		return coldlead.Errorf(coldlead.EINTERNAL, "directus %s %s: status %d: %s", method, path, status, msg)
	}
}

// errorMessage prefers the messages Directus reports and falls back to an
// excerpt of the raw body.
func errorMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Errors) > 0 {
		msgs := make([]string, 0, len(env.Errors))
		for _, e := range env.Errors {
			msgs = append(msgs, e.Message)
		}
		return strings.Join(msgs, "; ")
	}

	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody] + "..."
	}
	if text == "" {
		text = "empty response"
	}
	return text
}

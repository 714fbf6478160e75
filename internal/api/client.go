// Package api implements the typed request client for the habits wire
// protocol. A Request describes a call declaratively (path, query,
// optional body) and declares its response shape through the type
// parameter on Send.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/julianstephens/habits/internal/constants"
)

// Request describes a single API call. The response shape is declared
// by the type parameter given to Send.
type Request struct {
	Path  string
	Query url.Values
	Body  any // JSON-encoded and sent as a POST when non-nil
}

// Client performs requests against a fixed scheme/host/port.
type Client struct {
	Scheme string
	Host   string
	Port   int

	HTTPClient *http.Client
}

// NewClient returns a client for the given host and port using the
// default HTTP client.
func NewClient(host string, port int) *Client {
	return &Client{
		Scheme:     constants.DefaultScheme,
		Host:       host,
		Port:       port,
		HTTPClient: &http.Client{Timeout: constants.RequestTimeout},
	}
}

// URL resolves a request against the client's base address.
func (c *Client) URL(req Request) string {
	u := url.URL{
		Scheme:   c.Scheme,
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     req.Path,
		RawQuery: req.Query.Encode(),
	}
	return u.String()
}

func (c *Client) do(ctx context.Context, req Request) ([]byte, error) {
	method := http.MethodGet
	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &RequestError{Path: req.Path, Err: err}
		}
		method = http.MethodPost
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.URL(req), body)
	if err != nil {
		return nil, &RequestError{Path: req.Path, Err: err}
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, &RequestError{Path: req.Path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{Path: req.Path, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Path: req.Path, Err: err}
	}
	return data, nil
}

// Send performs the request and decodes the response body as JSON into
// T. A single attempt is made; retry policy belongs to the caller's
// polling loop.
func Send[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var decoded T

	data, err := c.do(ctx, req)
	if err != nil {
		return decoded, err
	}

	if err := json.Unmarshal(data, &decoded); err != nil {
		return decoded, &DecodeError{Path: req.Path, Err: err}
	}
	return decoded, nil
}

// SendRaw performs the request and returns the raw response body.
// Used for binary payloads such as images.
func SendRaw(ctx context.Context, c *Client, req Request) ([]byte, error) {
	return c.do(ctx, req)
}

// SendNoContent performs the request and discards the response body.
// Used for write-only events.
func SendNoContent(ctx context.Context, c *Client, req Request) error {
	_, err := c.do(ctx, req)
	return err
}

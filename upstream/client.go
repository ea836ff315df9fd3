package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the remote commerce backend. The contract is owned by the
// backend; this client only consumes it, converting loose wire shapes into
// the strict local model at this edge and tagging every failure with an
// ErrorKind.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client with an explicit timeout; a timed-out call surfaces
// as a retryable KindNetwork error.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

const maxErrBody = 512

// do performs one authenticated round trip and decodes the 2xx body into
// out (skipped when out is nil).
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, token string, body any, out any) error {
	if token == "" {
		return &Error{Kind: KindPrecondition, Op: op, Err: errors.New("missing auth token")}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindPrecondition, Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return &Error{Kind: KindPrecondition, Op: op, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return &Error{Kind: KindStatus, Op: op, Status: resp.StatusCode, Body: string(snippet)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindDecode, Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// Package rpc implements a thin JSON-RPC 2.0 client over HTTP for talking
// to Ethereum-compatible nodes. The protocol itself is the node's concern;
// this client only frames requests, classifies failures, and measures
// per-call latency.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// ErrorType classifies a failed call by its source, so callers can print
// an appropriate diagnostic before exiting.
type ErrorType string

const (
	ErrorTypeNone        ErrorType = ""
	ErrorTypeTimeout     ErrorType = "timeout"      // request exceeded the client timeout
	ErrorTypeNetwork     ErrorType = "network"      // transport failure (DNS, refused, reset)
	ErrorTypeRateLimit   ErrorType = "rate_limit"   // HTTP 429
	ErrorTypeServerError ErrorType = "server_error" // HTTP 5xx
	ErrorTypeRPCError    ErrorType = "rpc_error"    // JSON-RPC error object in the response
	ErrorTypeParseError  ErrorType = "parse_error"  // malformed or unexpected response body
	ErrorTypeNotFound    ErrorType = "not_found"    // null result where an object was required
)

// CallResult captures the outcome of a single JSON-RPC call: the parsed
// response envelope on success, or the classified error on failure, plus
// the measured round-trip latency either way.
type CallResult struct {
	Method    string
	Success   bool
	Latency   time.Duration
	Error     error
	ErrorType ErrorType
	Response  *Response
}

// ClientConfig holds the parameters for constructing a Client.
type ClientConfig struct {
	Name       string // endpoint label used in diagnostics
	URL        string
	Timeout    time.Duration
	MaxRetries int // additional attempts after the first; 0 disables retries
}

// Client is a JSON-RPC client bound to a single endpoint.
type Client struct {
	name       string
	url        string
	httpClient *http.Client
	maxRetries int
}

// NewClient creates a client for the given endpoint.
func NewClient(cfg ClientConfig) *Client {
	return &Client{
		name:       cfg.Name,
		url:        cfg.URL,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) Name() string { return c.name }
func (c *Client) URL() string  { return c.url }

// Call executes one JSON-RPC method. With MaxRetries > 0 failed attempts are
// retried with exponential backoff (100ms, 200ms, 400ms...); the default
// configuration makes a single attempt.
func (c *Client) Call(ctx context.Context, method string, params ...interface{}) *CallResult {
	if params == nil {
		params = []interface{}{}
	}

	req := Request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	}
	body, _ := json.Marshal(req)

	result := &CallResult{Method: method}

	start := time.Now()
	for attempt := 0; ; attempt++ {
		resp, errType, err := c.doRequest(ctx, body)
		if err == nil {
			result.Success = true
			result.Response = resp
			break
		}

		result.Error = err
		result.ErrorType = errType

		if attempt >= c.maxRetries {
			break
		}
		backoff := time.Duration(1<<attempt) * 100 * time.Millisecond
		select {
		case <-ctx.Done():
			result.Error = ctx.Err()
			result.ErrorType = ErrorTypeTimeout
			result.Latency = time.Since(start)
			return result
		case <-time.After(backoff):
		}
	}
	result.Latency = time.Since(start)

	return result
}

func (c *Client) doRequest(ctx context.Context, body []byte) (*Response, ErrorType, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, ErrorTypeNetwork, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(err), err
	}
	defer httpResp.Body.Close()

	switch {
	case httpResp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrorTypeRateLimit, fmt.Errorf("HTTP 429: rate limited")
	case httpResp.StatusCode >= 500:
		return nil, ErrorTypeServerError, fmt.Errorf("HTTP %d", httpResp.StatusCode)
	case httpResp.StatusCode != http.StatusOK:
		return nil, ErrorTypeNetwork, fmt.Errorf("HTTP %d", httpResp.StatusCode)
	}

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, ErrorTypeNetwork, err
	}

	var resp Response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, ErrorTypeParseError, fmt.Errorf("invalid JSON response: %w", err)
	}

	if resp.Error != nil {
		return nil, ErrorTypeRPCError, fmt.Errorf("RPC error %d: %s", resp.Error.Code, resp.Error.Message)
	}

	return &resp, ErrorTypeNone, nil
}

func classifyTransportError(err error) ErrorType {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorTypeTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrorTypeTimeout
	}
	return ErrorTypeNetwork
}

// failParse marks an otherwise successful call as failed due to an
// unparseable result payload.
func (r *CallResult) failParse(err error) {
	r.Success = false
	r.Error = err
	r.ErrorType = ErrorTypeParseError
}

// failNotFound marks a call whose result was null where an object was required.
func (r *CallResult) failNotFound(what string) {
	r.Success = false
	r.Error = fmt.Errorf("%s not found", what)
	r.ErrorType = ErrorTypeNotFound
}

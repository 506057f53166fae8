package gatewayz

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/gatewayz/gatewayz-go/pkg/errors"
	pkghttp "github.com/gatewayz/gatewayz-go/pkg/http"
)

const (
	// maxResponseSize limits the size of HTTP response bodies to prevent OOM.
	maxResponseSize = 10 * 1024 * 1024 // 10MB

	// timeoutMessage is the message of client-side attempt timeouts.
	timeoutMessage = "Request timeout"
)

// request represents a logical API call. Attempts share the marshalled body
// and the credential captured before the first attempt.
type request struct {
	method string
	path   string
	query  url.Values
	body   any

	payload    []byte
	credential string
}

// errorBody is the JSON shape of non-2xx responses. Every field is optional.
type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Error   string `json:"error"`
	Detail  any    `json:"detail"`
}

func (b *errorBody) message() string {
	if b.Message != "" {
		return b.Message
	}
	if s, ok := b.Detail.(string); ok && s != "" {
		return s
	}
	return b.Error
}

// do executes req with retries and returns the raw JSON payload.
func (c *Client) do(ctx context.Context, req *request) (json.RawMessage, error) {
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("gatewayz: failed to marshal request body: %w", err)
		}
		req.payload = payload
	}
	req.credential = c.Credential()

	var result json.RawMessage
	err := c.retrier.Run(ctx, func(ctx context.Context, attempt int) error {
		record := pkghttp.RequestAttempt{
			Method:  req.method,
			Body:    req.payload,
			Attempt: attempt,
		}
		raw, err := c.executeOnce(ctx, req, &record)
		record.Err = err
		c.observe(record)
		if err != nil {
			return err
		}
		result = raw
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// observe reports a finished attempt to the observer and the debug log.
func (c *Client) observe(record pkghttp.RequestAttempt) {
	if record.Err != nil {
		c.log.Debug("gatewayz: attempt failed",
			"method", record.Method,
			"url", record.URL,
			"attempt", record.Attempt,
			"status", record.StatusCode,
			"duration", record.Duration,
			"error", record.Err,
		)
	} else {
		c.log.Debug("gatewayz: attempt succeeded",
			"method", record.Method,
			"url", record.URL,
			"attempt", record.Attempt,
			"status", record.StatusCode,
			"duration", record.Duration,
		)
	}
	if c.config.AttemptObserver != nil {
		c.config.AttemptObserver(record)
	}
}

// executeOnce performs a single attempt bounded by the configured timeout.
// Every failure is an *APIError except parent context cancellation, which is
// returned as ctx.Err(), and request construction errors.
func (c *Client) executeOnce(ctx context.Context, req *request, record *pkghttp.RequestAttempt) (json.RawMessage, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	u := c.config.BaseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}
	record.URL = u

	var bodyReader io.Reader
	if req.payload != nil {
		bodyReader = bytes.NewReader(req.payload)
	}

	httpReq, err := http.NewRequestWithContext(attemptCtx, req.method, u, bodyReader)
	if err != nil {
		return nil, &pkgerrors.ValidationError{Field: "request", Message: "failed to create request", Err: err}
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.config.UserAgent)
	httpReq.Header.Set(pkghttp.HeaderRequestID, requestID)
	if req.credential != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.credential)
	}

	if c.hook != nil {
		if err := c.hook.BeforeRequest(attemptCtx, httpReq); err != nil {
			return nil, &pkghttp.HookError{Err: err}
		}
	}
	record.Header = httpReq.Header.Clone()

	start := time.Now()
	resp, err := c.config.HTTPClient.Do(httpReq)
	record.Duration = time.Since(start)

	if c.hook != nil {
		c.hook.AfterResponse(attemptCtx, httpReq, resp, record.Duration, err)
	}

	if err != nil {
		return nil, transportError(ctx, attemptCtx, requestID, err)
	}
	defer resp.Body.Close()
	record.StatusCode = resp.StatusCode

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, transportError(ctx, attemptCtx, requestID, err)
	}
	if len(respBody) > maxResponseSize {
		return nil, &APIError{
			StatusCode: pkgerrors.StatusNetwork,
			Message:    fmt.Sprintf("response body exceeded maximum size of %d bytes", maxResponseSize),
			RequestID:  requestID,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body errorBody
		if len(respBody) > 0 {
			// Non-JSON bodies fall back to the status text.
			_ = json.Unmarshal(respBody, &body)
		}
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    body.message(),
			ErrorCode:  body.Code,
			RequestID:  requestID,
		}
		if apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			apiErr.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
		}
		return nil, apiErr
	}

	respBody = bytes.TrimSpace(respBody)
	if len(respBody) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(respBody) {
		return nil, &APIError{
			StatusCode: pkgerrors.StatusNetwork,
			Message:    "invalid JSON in response body",
			RequestID:  requestID,
		}
	}
	return json.RawMessage(respBody), nil
}

// transportError classifies a failure that produced no usable response.
func transportError(parent, attemptCtx context.Context, requestID string, err error) error {
	if parent.Err() != nil {
		return parent.Err()
	}
	if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
		return &APIError{
			StatusCode: pkgerrors.StatusTimeout,
			Message:    timeoutMessage,
			RequestID:  requestID,
			Err:        fmt.Errorf("%w: %w", context.DeadlineExceeded, err),
		}
	}
	return &APIError{
		StatusCode: pkgerrors.StatusNetwork,
		Message:    err.Error(),
		RequestID:  requestID,
		Err:        err,
	}
}

// parseRetryAfter parses the Retry-After header value.
// It supports both seconds (integer) and HTTP-date formats.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(value); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// decode unmarshals a payload into result. A nil result discards it.
func decode(raw json.RawMessage, result any) error {
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("gatewayz: failed to unmarshal response: %w", err)
	}
	return nil
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	raw, err := c.do(ctx, &request{
		method: http.MethodGet,
		path:   path,
		query:  query,
	})
	if err != nil {
		return err
	}
	return decode(raw, result)
}

// post performs a POST request.
func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	raw, err := c.do(ctx, &request{
		method: http.MethodPost,
		path:   path,
		body:   body,
	})
	if err != nil {
		return err
	}
	return decode(raw, result)
}

// put performs a PUT request.
func (c *Client) put(ctx context.Context, path string, body any, result any) error {
	raw, err := c.do(ctx, &request{
		method: http.MethodPut,
		path:   path,
		body:   body,
	})
	if err != nil {
		return err
	}
	return decode(raw, result)
}

// delete performs a DELETE request.
func (c *Client) delete(ctx context.Context, path string, result any) error {
	raw, err := c.do(ctx, &request{
		method: http.MethodDelete,
		path:   path,
	})
	if err != nil {
		return err
	}
	return decode(raw, result)
}

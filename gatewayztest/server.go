package gatewayztest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
)

// Response is a scripted reply.
type Response struct {
	Status int
	// Body is encoded as JSON unless it is a string, []byte or
	// json.RawMessage, which are written verbatim. A nil Body writes nothing.
	Body   any
	Header http.Header
	// Block holds the request open until the client gives up.
	Block bool
}

// JSON returns a response with a JSON body.
func JSON(status int, body any) Response {
	return Response{Status: status, Body: body}
}

// Raw returns a response whose body is written verbatim.
func Raw(status int, body string) Response {
	return Response{Status: status, Body: body}
}

// Status returns a response with the status and an error body carrying the
// standard status text as message.
func Status(status int) Response {
	return Response{Status: status, Body: map[string]string{"message": http.StatusText(status)}}
}

// Error returns a response with {"message": message} and an optional code.
func Error(status int, message, code string) Response {
	body := map[string]string{"message": message}
	if code != "" {
		body["code"] = code
	}
	return Response{Status: status, Body: body}
}

// Hang returns a response that never completes before the client's
// deadline.
func Hang() Response {
	return Response{Block: true}
}

// MockServer is a test HTTP server that records requests for verification.
type MockServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*RecordedRequest
	respond  func(r *http.Request, n int) Response
}

// RecordedRequest represents a recorded HTTP request.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Authorization returns the Authorization header.
func (r *RecordedRequest) Authorization() string {
	return r.Header.Get("Authorization")
}

// BearerToken returns the token of a Bearer Authorization header, or "".
func (r *RecordedRequest) BearerToken() string {
	token, ok := strings.CutPrefix(r.Authorization(), "Bearer ")
	if !ok {
		return ""
	}
	return token
}

// DecodeBody unmarshals the recorded JSON body into v.
func (r *RecordedRequest) DecodeBody(v any) error {
	return json.Unmarshal(r.Body, v)
}

// NewMockServer creates a new mock server that answers 200 {} until
// configured otherwise.
func NewMockServer() *MockServer {
	ms := &MockServer{}
	ms.Server = httptest.NewServer(http.HandlerFunc(ms.serveHTTP))
	return ms
}

func (ms *MockServer) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	ms.mu.Lock()
	ms.requests = append(ms.requests, &RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	n := len(ms.requests)
	respond := ms.respond
	ms.mu.Unlock()

	resp := Response{Status: http.StatusOK, Body: map[string]any{}}
	if respond != nil {
		resp = respond(r, n)
	}
	writeResponse(w, r, resp)
}

func writeResponse(w http.ResponseWriter, r *http.Request, resp Response) {
	if resp.Block {
		<-r.Context().Done()
		return
	}

	for k, vs := range resp.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	switch body := resp.Body.(type) {
	case nil:
	case string:
		io.WriteString(w, body)
	case []byte:
		w.Write(body)
	case json.RawMessage:
		w.Write(body)
	default:
		json.NewEncoder(w).Encode(body)
	}
}

// RespondWith answers every request with resp.
func (ms *MockServer) RespondWith(resp Response) {
	ms.setRespond(func(*http.Request, int) Response { return resp })
}

// RespondWithFunc answers requests with fn.
func (ms *MockServer) RespondWithFunc(fn func(r *http.Request) Response) {
	ms.setRespond(func(r *http.Request, _ int) Response { return fn(r) })
}

// Sequence answers the n-th request with responses[n-1] and repeats the
// last response afterwards.
func (ms *MockServer) Sequence(responses ...Response) {
	if len(responses) == 0 {
		ms.setRespond(nil)
		return
	}
	ms.setRespond(func(_ *http.Request, n int) Response {
		if n > len(responses) {
			return responses[len(responses)-1]
		}
		return responses[n-1]
	})
}

// Routes answers by "METHOD /path" key and with 404 for unknown routes.
func (ms *MockServer) Routes(routes map[string]Response) {
	ms.setRespond(func(r *http.Request, _ int) Response {
		if resp, ok := routes[r.Method+" "+r.URL.Path]; ok {
			return resp
		}
		return Error(http.StatusNotFound, "Not Found", "")
	})
}

// RespondWithUnauthorized answers every request with 401.
func (ms *MockServer) RespondWithUnauthorized() {
	ms.RespondWith(Error(http.StatusUnauthorized, "Invalid API key", "invalid_api_key"))
}

// RespondWithServerError answers every request with 500.
func (ms *MockServer) RespondWithServerError() {
	ms.RespondWith(Error(http.StatusInternalServerError, "Internal server error", ""))
}

// RespondWithRateLimit answers every request with 429 and Retry-After.
func (ms *MockServer) RespondWithRateLimit(retryAfter string) {
	resp := Error(http.StatusTooManyRequests, "Rate limit exceeded", "rate_limited")
	resp.Header = http.Header{"Retry-After": []string{retryAfter}}
	ms.RespondWith(resp)
}

func (ms *MockServer) setRespond(fn func(r *http.Request, n int) Response) {
	ms.mu.Lock()
	ms.respond = fn
	ms.mu.Unlock()
}

// Requests returns all recorded requests.
func (ms *MockServer) Requests() []*RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]*RecordedRequest{}, ms.requests...)
}

// RequestCount returns the number of recorded requests.
func (ms *MockServer) RequestCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.requests)
}

// LastRequest returns the most recent request, or nil if none.
func (ms *MockServer) LastRequest() *RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if len(ms.requests) == 0 {
		return nil
	}
	return ms.requests[len(ms.requests)-1]
}

// RequestAt returns the request at the given index, or nil if out of bounds.
func (ms *MockServer) RequestAt(index int) *RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if index < 0 || index >= len(ms.requests) {
		return nil
	}
	return ms.requests[index]
}

// RequestsTo returns the recorded requests for path.
func (ms *MockServer) RequestsTo(path string) []*RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	var out []*RecordedRequest
	for _, r := range ms.requests {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// Reset clears recorded requests and scripted responses.
func (ms *MockServer) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.requests = nil
	ms.respond = nil
}

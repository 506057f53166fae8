package gatewayz

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gatewayz/gatewayz-go/gatewayztest"
)

func TestDo_SuccessReturnsPayload(t *testing.T) {
	server := newServer(t)
	server.RespondWith(gatewayztest.Raw(http.StatusOK, `{"status":"healthy"}`))
	client, sleep := newTestClient(t, server)

	raw, err := client.do(context.Background(), &request{method: http.MethodGet, path: "/health"})
	if err != nil {
		t.Fatalf("do failed: %v", err)
	}
	if string(raw) != `{"status":"healthy"}` {
		t.Errorf("payload = %s", raw)
	}
	if server.RequestCount() != 1 || len(sleep.Delays()) != 0 {
		t.Errorf("requests=%d delays=%v", server.RequestCount(), sleep.Delays())
	}
}

func TestDo_Headers(t *testing.T) {
	server := newServer(t)
	client, _ := newTestClient(t, server, WithCredential("gw_secret_token"))

	if _, err := client.Health(context.Background()); err != nil {
		t.Fatal(err)
	}
	req := server.LastRequest()
	if got := req.Header.Get("Authorization"); got != "Bearer gw_secret_token" {
		t.Errorf("Authorization = %q", got)
	}
	if req.Header.Get("Content-Type") != "application/json" || req.Header.Get("Accept") != "application/json" {
		t.Errorf("content headers = %v", req.Header)
	}
	if req.Header.Get("User-Agent") != "gatewayz-go/"+Version {
		t.Errorf("User-Agent = %q", req.Header.Get("User-Agent"))
	}
	if len(req.Header.Get("X-Request-ID")) != 36 {
		t.Errorf("X-Request-ID = %q", req.Header.Get("X-Request-ID"))
	}
}

func TestDo_NoCredentialOmitsAuthorization(t *testing.T) {
	server := newServer(t)
	client, _ := newTestClient(t, server)

	if _, err := client.GetModels(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := server.LastRequest().Authorization(); got != "" {
		t.Errorf("Authorization = %q, want empty", got)
	}
}

func TestDo_ServerTimeoutStatusNotRetried(t *testing.T) {
	server := newServer(t)
	server.RespondWith(gatewayztest.Error(http.StatusRequestTimeout, "slow", ""))
	client, sleep := newTestClient(t, server)

	_, err := client.do(context.Background(), &request{method: http.MethodGet, path: "/x"})
	apiErr, ok := AsAPIError(err)
	if !ok || apiErr.StatusCode != http.StatusRequestTimeout || apiErr.Message != "slow" {
		t.Fatalf("err = %v", err)
	}
	if IsRetryable(err) {
		t.Error("a 408 response should be permanent")
	}
	if server.RequestCount() != 1 {
		t.Errorf("requests = %d, want 1", server.RequestCount())
	}
	if len(sleep.Delays()) != 0 {
		t.Errorf("slept %v", sleep.Delays())
	}
}

func TestDo_EmptyBodyIsNull(t *testing.T) {
	server := newServer(t)
	server.RespondWith(gatewayztest.Response{Status: http.StatusNoContent})
	client, _ := newTestClient(t, server)

	raw, err := client.do(context.Background(), &request{method: http.MethodDelete, path: "/x"})
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "null" {
		t.Errorf("payload = %q, want null", raw)
	}
}

func TestDo_ErrorBody(t *testing.T) {
	tests := []struct {
		name     string
		resp     gatewayztest.Response
		status   int
		message  string
		code     string
		attempts int
	}{
		{"message and code", gatewayztest.Error(http.StatusBadRequest, "bad model", "invalid_model"), 400, "bad model", "invalid_model", 1},
		{"detail", gatewayztest.JSON(http.StatusUnprocessableEntity, map[string]string{"detail": "field required"}), 422, "field required", "", 1},
		{"non-json", gatewayztest.Raw(http.StatusNotFound, "<html>nope</html>"), 404, "HTTP 404", "", 1},
		{"empty", gatewayztest.Response{Status: http.StatusForbidden}, 403, "HTTP 403", "", 1},
		{"unauthorized", gatewayztest.Error(http.StatusUnauthorized, "Invalid API key", ""), 401, "Invalid API key", "", 1},
		{"server", gatewayztest.Raw(http.StatusBadGateway, ""), 502, "HTTP 502", "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newServer(t)
			server.RespondWith(tt.resp)
			client, _ := newTestClient(t, server)

			_, err := client.do(context.Background(), &request{method: http.MethodGet, path: "/x"})
			apiErr, ok := AsAPIError(err)
			if !ok {
				t.Fatalf("err = %v, want *APIError", err)
			}
			if apiErr.StatusCode != tt.status || apiErr.Message != tt.message || apiErr.ErrorCode != tt.code {
				t.Errorf("got %d %q %q, want %d %q %q", apiErr.StatusCode, apiErr.Message, apiErr.ErrorCode, tt.status, tt.message, tt.code)
			}
			if apiErr.RequestID == "" {
				t.Error("RequestID not set")
			}
			if server.RequestCount() != tt.attempts {
				t.Errorf("requests = %d, want %d", server.RequestCount(), tt.attempts)
			}
		})
	}
}

func TestDo_RetriesTransientStatuses(t *testing.T) {
	for _, status := range []int{http.StatusInternalServerError, http.StatusServiceUnavailable, http.StatusTooManyRequests} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			server := newServer(t)
			server.RespondWith(gatewayztest.Status(status))
			client, sleep := newTestClient(t, server, WithRetryDelay(time.Second))

			_, err := client.do(context.Background(), &request{method: http.MethodGet, path: "/x"})
			if apiErr, ok := AsAPIError(err); !ok || apiErr.StatusCode != status {
				t.Fatalf("err = %v", err)
			}
			if server.RequestCount() != DefaultRetryAttempts {
				t.Errorf("requests = %d, want %d", server.RequestCount(), DefaultRetryAttempts)
			}
			want := []time.Duration{time.Second, 2 * time.Second}
			if diff := cmp.Diff(want, sleep.Delays()); diff != "" {
				t.Errorf("delays (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDo_RecoversAfterTransientFailures(t *testing.T) {
	server := newServer(t)
	server.Sequence(
		gatewayztest.Status(http.StatusServiceUnavailable),
		gatewayztest.Status(http.StatusTooManyRequests),
		gatewayztest.Raw(http.StatusOK, `[]`),
	)
	client, sleep := newTestClient(t, server, WithRetryDelay(100*time.Millisecond))

	raw, err := client.do(context.Background(), &request{method: http.MethodGet, path: "/models"})
	if err != nil {
		t.Fatalf("do failed: %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("payload = %s", raw)
	}
	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}
	if diff := cmp.Diff(want, sleep.Delays()); diff != "" {
		t.Errorf("delays (-want +got):\n%s", diff)
	}
}

func TestDo_AttemptBound(t *testing.T) {
	for _, attempts := range []int{1, 2, 5} {
		server := newServer(t)
		server.RespondWithServerError()
		client, sleep := newTestClient(t, server, WithRetryAttempts(attempts))

		_, err := client.do(context.Background(), &request{method: http.MethodGet, path: "/x"})
		if err == nil {
			t.Fatal("expected error")
		}
		if server.RequestCount() != attempts {
			t.Errorf("attempts=%d: requests = %d", attempts, server.RequestCount())
		}
		if len(sleep.Delays()) != attempts-1 {
			t.Errorf("attempts=%d: delays = %v", attempts, sleep.Delays())
		}
	}
}

func TestDo_RateLimitRetryAfter(t *testing.T) {
	server := newServer(t)
	server.RespondWithRateLimit("7")
	client, _ := newTestClient(t, server, WithRetryAttempts(1))

	_, err := client.do(context.Background(), &request{method: http.MethodGet, path: "/x"})
	apiErr, ok := AsAPIError(err)
	if !ok || !apiErr.IsRateLimited() {
		t.Fatalf("err = %v", err)
	}
	if apiErr.RetryAfter != 7*time.Second {
		t.Errorf("RetryAfter = %v", apiErr.RetryAfter)
	}
	if !errors.Is(err, ErrRateLimited) {
		t.Error("errors.Is(err, ErrRateLimited) = false")
	}
}

func TestDo_InvalidJSONIsNetworkClass(t *testing.T) {
	server := newServer(t)
	server.RespondWith(gatewayztest.Raw(http.StatusOK, `{"truncated":`))
	client, _ := newTestClient(t, server)

	_, err := client.do(context.Background(), &request{method: http.MethodGet, path: "/x"})
	if !IsNetworkError(err) {
		t.Fatalf("err = %v, want network error", err)
	}
	if server.RequestCount() != DefaultRetryAttempts {
		t.Errorf("requests = %d, want %d", server.RequestCount(), DefaultRetryAttempts)
	}
}

func TestDo_TransportFailure(t *testing.T) {
	server := gatewayztest.NewMockServer()
	url := server.URL
	server.Close()

	client, err := New(WithBaseURL(url), WithSleep((&fakeSleep{}).Sleep))
	if err != nil {
		t.Fatal(err)
	}
	_, err = client.do(context.Background(), &request{method: http.MethodGet, path: "/x"})
	apiErr, ok := AsAPIError(err)
	if !ok || apiErr.StatusCode != 0 || apiErr.Err == nil {
		t.Fatalf("err = %#v", err)
	}
	if apiErr.Kind() != KindNetwork {
		t.Errorf("Kind = %v", apiErr.Kind())
	}
}

func TestDo_AttemptTimeout(t *testing.T) {
	server := newServer(t)
	server.Sequence(gatewayztest.Hang(), gatewayztest.Raw(http.StatusOK, `{"ok":true}`))
	client, _ := newTestClient(t, server, WithTimeout(50*time.Millisecond))

	raw, err := client.do(context.Background(), &request{method: http.MethodGet, path: "/slow"})
	if err != nil {
		t.Fatalf("do failed: %v", err)
	}
	if string(raw) != `{"ok":true}` {
		t.Errorf("payload = %s", raw)
	}
	if server.RequestCount() != 2 {
		t.Errorf("requests = %d, want 2", server.RequestCount())
	}
}

func TestDo_AttemptTimeoutExhausted(t *testing.T) {
	server := newServer(t)
	server.RespondWith(gatewayztest.Hang())
	client, _ := newTestClient(t, server, WithTimeout(30*time.Millisecond), WithRetryAttempts(2))

	_, err := client.do(context.Background(), &request{method: http.MethodGet, path: "/slow"})
	apiErr, ok := AsAPIError(err)
	if !ok || apiErr.StatusCode != 408 || apiErr.Message != "Request timeout" {
		t.Fatalf("err = %v, want 408 Request timeout", err)
	}
	if !IsTimeout(err) || !IsRetryable(err) {
		t.Error("timeout should be classified retryable")
	}
	if server.RequestCount() != 2 {
		t.Errorf("requests = %d, want 2", server.RequestCount())
	}
}

func TestDo_ParentContextCanceled(t *testing.T) {
	server := newServer(t)
	server.RespondWith(gatewayztest.Hang())
	client, _ := newTestClient(t, server)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(30*time.Millisecond, cancel)

	_, err := client.do(ctx, &request{method: http.MethodGet, path: "/slow"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if server.RequestCount() != 1 {
		t.Errorf("requests = %d, want 1", server.RequestCount())
	}
}

func TestDo_BodyMarshalledOnce(t *testing.T) {
	server := newServer(t)
	server.Sequence(gatewayztest.Status(http.StatusBadGateway), gatewayztest.Raw(http.StatusOK, `{}`))
	client, _ := newTestClient(t, server)

	body := &countingMarshaler{}
	if err := client.post(context.Background(), "/x", body, nil); err != nil {
		t.Fatal(err)
	}
	if body.calls != 1 {
		t.Errorf("MarshalJSON called %d times, want 1", body.calls)
	}
	reqs := server.Requests()
	if len(reqs) != 2 || string(reqs[0].Body) != string(reqs[1].Body) {
		t.Errorf("attempt bodies differ: %+v", reqs)
	}
}

type countingMarshaler struct{ calls int }

func (m *countingMarshaler) MarshalJSON() ([]byte, error) {
	m.calls++
	return []byte(`{"n":1}`), nil
}

func TestDo_MarshalError(t *testing.T) {
	server := newServer(t)
	client, _ := newTestClient(t, server)

	err := client.post(context.Background(), "/x", map[string]any{"f": func() {}}, nil)
	if err == nil || !strings.Contains(err.Error(), "marshal") {
		t.Fatalf("err = %v, want marshal error", err)
	}
	if server.RequestCount() != 0 {
		t.Errorf("requests = %d, want 0", server.RequestCount())
	}
}

func TestDo_CredentialCapturedBeforeFirstAttempt(t *testing.T) {
	server := newServer(t)
	client, _ := newTestClient(t, server, WithCredential("original-token"))
	server.RespondWithFunc(func(r *http.Request) gatewayztest.Response {
		if server.RequestCount() == 1 {
			client.SetCredential("rotated-token")
			return gatewayztest.Status(http.StatusServiceUnavailable)
		}
		return gatewayztest.Raw(http.StatusOK, `{}`)
	})

	if err := client.get(context.Background(), "/x", nil, nil); err != nil {
		t.Fatal(err)
	}
	for i, r := range server.Requests() {
		if r.BearerToken() != "original-token" {
			t.Errorf("attempt %d used %q", i+1, r.BearerToken())
		}
	}
	if client.Credential() != "rotated-token" {
		t.Errorf("Credential = %q", client.Credential())
	}
}

func TestDo_HooksAndObserver(t *testing.T) {
	server := newServer(t)
	server.Sequence(gatewayztest.Status(http.StatusInternalServerError), gatewayztest.Raw(http.StatusCreated, `{}`))

	var (
		mu       sync.Mutex
		before   int
		after    []int
		attempts []RequestAttempt
	)
	hook := HTTPHookFunc{
		Before: func(ctx context.Context, req *http.Request) error {
			mu.Lock()
			before++
			mu.Unlock()
			return nil
		},
		After: func(ctx context.Context, req *http.Request, resp *http.Response, d time.Duration, err error) {
			mu.Lock()
			after = append(after, resp.StatusCode)
			mu.Unlock()
		},
	}
	client, _ := newTestClient(t, server,
		WithHTTPHook(hook),
		WithHTTPHook(HeaderHook(map[string]string{"X-Tenant": "acme"})),
		WithAttemptObserver(func(a RequestAttempt) {
			mu.Lock()
			attempts = append(attempts, a)
			mu.Unlock()
		}),
	)

	if err := client.post(context.Background(), "/x", map[string]int{"a": 1}, nil); err != nil {
		t.Fatal(err)
	}

	mu.Lock()
	defer mu.Unlock()
	if before != 2 || !cmp.Equal(after, []int{500, 201}) {
		t.Errorf("before=%d after=%v", before, after)
	}
	if len(attempts) != 2 {
		t.Fatalf("observed %d attempts", len(attempts))
	}
	if attempts[0].Attempt != 1 || attempts[0].Succeeded() || attempts[0].StatusCode != 500 {
		t.Errorf("first attempt = %+v", attempts[0])
	}
	if attempts[1].Attempt != 2 || !attempts[1].Succeeded() || attempts[1].StatusCode != 201 {
		t.Errorf("second attempt = %+v", attempts[1])
	}
	if string(attempts[1].Body) != `{"a":1}` || attempts[1].Method != http.MethodPost {
		t.Errorf("attempt body/method = %s %s", attempts[1].Body, attempts[1].Method)
	}
	if server.LastRequest().Header.Get("X-Tenant") != "acme" {
		t.Error("HeaderHook not applied")
	}
}

func TestDo_HookAbort(t *testing.T) {
	server := newServer(t)
	hookErr := errors.New("denied")
	calls := 0
	client, sleep := newTestClient(t, server,
		WithHTTPHook(HTTPHookFunc{Before: func(context.Context, *http.Request) error {
			calls++
			return hookErr
		}}),
	)

	err := client.get(context.Background(), "/x", nil, nil)
	if !errors.Is(err, hookErr) {
		t.Fatalf("err = %v", err)
	}
	var abort *HookError
	if !errors.As(err, &abort) || IsRetryable(err) {
		t.Errorf("err = %v, want a non-retryable HookError", err)
	}
	if calls != 1 {
		t.Errorf("hook calls = %d, want 1", calls)
	}
	if len(sleep.Delays()) != 0 {
		t.Errorf("slept %v after a hook abort", sleep.Delays())
	}
	if server.RequestCount() != 0 {
		t.Errorf("requests = %d, want 0", server.RequestCount())
	}
}

func TestParseRetryAfter(t *testing.T) {
	if got := parseRetryAfter("5"); got != 5*time.Second {
		t.Errorf("seconds = %v", got)
	}
	if got := parseRetryAfter(""); got != 0 {
		t.Errorf("empty = %v", got)
	}
	if got := parseRetryAfter("soon"); got != 0 {
		t.Errorf("garbage = %v", got)
	}
	future := time.Now().Add(time.Minute).UTC().Format(http.TimeFormat)
	if got := parseRetryAfter(future); got <= 0 || got > time.Minute {
		t.Errorf("date = %v", got)
	}
}

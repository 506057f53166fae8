package gatewayztest

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, strings.TrimSpace(string(body))
}

func TestMockServer_Default(t *testing.T) {
	server := NewMockServer()
	defer server.Close()

	status, body := get(t, server.URL+"/health?x=1")
	if status != http.StatusOK || body != "{}" {
		t.Errorf("got %d %q", status, body)
	}
	if server.RequestCount() != 1 {
		t.Fatalf("RequestCount = %d", server.RequestCount())
	}
	req := server.LastRequest()
	if req.Method != http.MethodGet || req.Path != "/health" || req.Query.Get("x") != "1" {
		t.Errorf("recorded %+v", req)
	}
}

func TestMockServer_Sequence(t *testing.T) {
	server := NewMockServer()
	defer server.Close()

	server.Sequence(Status(http.StatusBadGateway), JSON(http.StatusOK, []int{1, 2}))

	if status, _ := get(t, server.URL+"/a"); status != http.StatusBadGateway {
		t.Errorf("first = %d", status)
	}
	if status, body := get(t, server.URL+"/a"); status != http.StatusOK || body != "[1,2]" {
		t.Errorf("second = %d %q", status, body)
	}
	if status, _ := get(t, server.URL+"/a"); status != http.StatusOK {
		t.Errorf("third should repeat last, got %d", status)
	}
}

func TestMockServer_Routes(t *testing.T) {
	server := NewMockServer()
	defer server.Close()

	server.Routes(map[string]Response{
		"GET /models": Raw(http.StatusOK, `[]`),
	})

	if status, body := get(t, server.URL+"/models"); status != http.StatusOK || body != "[]" {
		t.Errorf("/models = %d %q", status, body)
	}
	status, body := get(t, server.URL+"/missing")
	if status != http.StatusNotFound {
		t.Errorf("/missing = %d", status)
	}
	var decoded map[string]string
	if err := json.Unmarshal([]byte(body), &decoded); err != nil || decoded["message"] != "Not Found" {
		t.Errorf("404 body = %q", body)
	}
	if len(server.RequestsTo("/models")) != 1 {
		t.Error("RequestsTo(/models) should have one entry")
	}
}

func TestMockServer_RateLimitHeader(t *testing.T) {
	server := NewMockServer()
	defer server.Close()

	server.RespondWithRateLimit("3")
	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusTooManyRequests || resp.Header.Get("Retry-After") != "3" {
		t.Errorf("got %d Retry-After=%q", resp.StatusCode, resp.Header.Get("Retry-After"))
	}
}

func TestMockServer_RecordsBodyAndAuth(t *testing.T) {
	server := NewMockServer()
	defer server.Close()

	req, _ := http.NewRequest(http.MethodPost, server.URL+"/v1/chat/completions", strings.NewReader(`{"model":"m"}`))
	req.Header.Set("Authorization", "Bearer secret-token")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	got := server.LastRequest()
	if got.BearerToken() != "secret-token" {
		t.Errorf("BearerToken = %q", got.BearerToken())
	}
	var body struct{ Model string }
	if err := got.DecodeBody(&body); err != nil || body.Model != "m" {
		t.Errorf("DecodeBody = %+v, %v", body, err)
	}
}

func TestMockServer_Reset(t *testing.T) {
	server := NewMockServer()
	defer server.Close()

	server.RespondWithServerError()
	get(t, server.URL)
	server.Reset()

	if server.RequestCount() != 0 || server.LastRequest() != nil || server.RequestAt(0) != nil {
		t.Error("Reset should clear requests")
	}
	if status, _ := get(t, server.URL); status != http.StatusOK {
		t.Errorf("after Reset status = %d, want default 200", status)
	}
}

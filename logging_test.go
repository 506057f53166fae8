package gatewayz

import (
	"bytes"
	"context"
	"log"
	"log/slog"
	"strings"
	"testing"
)

func TestMaskCredential(t *testing.T) {
	tests := map[string]string{
		"":                         "",
		"abc":                      "****",
		"short":                    "****hort",
		"gw_live_1234567890abcdef": "gw_live_************cdef",
		"secret-token-value":       "secret-*******alue",
		"plainkeywithoutprefix":    "*****************efix",
	}
	for in, want := range tests {
		if got := MaskCredential(in); got != want {
			t.Errorf("MaskCredential(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMaskAuthHeader(t *testing.T) {
	if got := MaskAuthHeader("Bearer abc"); got != "Bearer ********" {
		t.Errorf("bearer = %q", got)
	}
	if got := MaskAuthHeader("abc"); got != "********" {
		t.Errorf("other = %q", got)
	}
}

func TestWrapPrintfLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := WrapStdLogger(log.New(&buf, "", 0))

	logger.Warn("gatewayz: retrying request", "attempt", 1, "dangling")
	got := strings.TrimSpace(buf.String())
	want := "[WARN] gatewayz: retrying request | attempt=1 dangling=<missing>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	adapter.With("component", "test").Debug("hello", "n", 1)
	out := buf.String()
	if !strings.Contains(out, "msg=hello") || !strings.Contains(out, "component=test") || !strings.Contains(out, "n=1") {
		t.Errorf("output = %q", out)
	}
}

func TestClientLogsRetriesAtWarn(t *testing.T) {
	server := newServer(t)
	server.RespondWithServerError()

	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	client, _ := newTestClient(t, server, WithLogger(logger), WithRetryAttempts(2))

	_ = client.get(context.Background(), "/x", nil, nil)
	out := buf.String()
	if strings.Count(out, "gatewayz: retrying request") != 1 {
		t.Errorf("expected one retry log line, got %q", out)
	}
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("retry not logged at warn: %q", out)
	}
}

func TestLoggersRedactCredentials(t *testing.T) {
	var buf bytes.Buffer
	WrapStdLogger(log.New(&buf, "", 0)).Info("signed in", "api_key", "gw_live_1234567890abcdef", "user", "ada")

	got := strings.TrimSpace(buf.String())
	want := "[INFO] signed in | api_key=gw_live_************cdef user=ada"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	buf.Reset()
	NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil))).Warn("rejected", "Authorization", "Bearer secret")
	if out := buf.String(); strings.Contains(out, "secret") {
		t.Errorf("authorization leaked: %q", out)
	}
}

func TestRedactLeavesInputUntouched(t *testing.T) {
	args := []any{"token", "gw_live_1234567890abcdef"}
	_ = redact(args)
	if args[1] != "gw_live_1234567890abcdef" {
		t.Errorf("redact modified its input: %v", args)
	}
}

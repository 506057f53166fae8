package gatewayz

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gatewayz/gatewayz-go/gatewayztest"
)

// fakeSleep records requested delays without waiting.
type fakeSleep struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (f *fakeSleep) Sleep(ctx context.Context, d time.Duration) error {
	f.mu.Lock()
	f.delays = append(f.delays, d)
	f.mu.Unlock()
	return ctx.Err()
}

func (f *fakeSleep) Delays() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration(nil), f.delays...)
}

// newTestClient returns a client pointed at server that never really sleeps.
func newTestClient(t *testing.T, server *gatewayztest.MockServer, opts ...ConfigOption) (*Client, *fakeSleep) {
	t.Helper()
	sleep := &fakeSleep{}
	base := []ConfigOption{
		WithBaseURL(server.URL),
		WithTimeout(5 * time.Second),
		WithSleep(sleep.Sleep),
	}
	client, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return client, sleep
}

func newServer(t *testing.T) *gatewayztest.MockServer {
	t.Helper()
	server := gatewayztest.NewMockServer()
	t.Cleanup(server.Close)
	return server
}

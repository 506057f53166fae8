package gatewayz

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	pkgconfig "github.com/gatewayz/gatewayz-go/pkg/config"
	"github.com/gatewayz/gatewayz-go/pkg/types"
)

// CredentialStore persists the API key between sessions.
// Load returns "" and a nil error when nothing is stored.
type CredentialStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// MemoryStore is an in-process CredentialStore.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements CredentialStore.
func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

// Save implements CredentialStore.
func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// Clear implements CredentialStore.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}

var _ CredentialStore = (*MemoryStore)(nil)

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithOnAuthExpired sets a callback invoked after the server rejected the
// credential and the session signed out.
func WithOnAuthExpired(fn func()) SessionOption {
	return func(s *Session) {
		s.onAuthExpired = fn
	}
}

// Session tracks authentication state and cached user data on top of a
// Client. It is safe for concurrent use.
type Session struct {
	client        *Client
	store         CredentialStore
	onAuthExpired func()

	mu      sync.RWMutex
	balance *types.Balance
	profile *types.UserProfile
}

// NewSession creates a session. A nil store means a fresh MemoryStore.
func NewSession(client *Client, store CredentialStore, opts ...SessionOption) *Session {
	if store == nil {
		store = NewMemoryStore()
	}
	s := &Session{
		client: client,
		store:  store,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore loads a stored credential into the client. It reports whether a
// credential was found.
func (s *Session) Restore() (bool, error) {
	token, err := s.store.Load()
	if err != nil {
		return false, fmt.Errorf("gatewayz: load credential: %w", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return false, nil
	}
	s.client.SetCredential(token)
	return true, nil
}

// SignIn validates and stores token and installs it on the client.
// Cached user data from a previous credential is dropped.
func (s *Session) SignIn(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return &ValidationError{Field: "api_key", Message: "API key is required", Err: ErrEmptyCredential}
	}
	if err := pkgconfig.ValidateKey(token); err != nil {
		return &ValidationError{Field: "api_key", Message: err.Error()}
	}
	if err := s.store.Save(token); err != nil {
		return fmt.Errorf("gatewayz: save credential: %w", err)
	}
	s.client.SetCredential(token)
	s.resetUserData()
	return nil
}

// SignOut clears the stored credential, the client credential and cached
// user data. The client is cleared even if the store fails.
func (s *Session) SignOut() error {
	s.client.ClearCredential()
	s.resetUserData()
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("gatewayz: clear credential: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether the client holds a credential.
func (s *Session) IsAuthenticated() bool {
	return s.client.HasCredential()
}

// Balance returns the cached balance, or nil before a successful refresh.
func (s *Session) Balance() *types.Balance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balance
}

// Profile returns the cached profile, or nil before a successful refresh.
func (s *Session) Profile() *types.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// RefreshUserData fetches balance and profile concurrently. Both must
// succeed before either is cached. Without a credential it does nothing. An
// authentication failure signs the session out before the error is returned.
func (s *Session) RefreshUserData(ctx context.Context) error {
	if !s.client.HasCredential() {
		return nil
	}

	var (
		balance *types.Balance
		profile *types.UserProfile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		balance, err = s.client.GetUserBalance(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = s.client.GetUserProfile(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return s.Handle(err)
	}

	s.mu.Lock()
	s.balance = balance
	s.profile = profile
	s.mu.Unlock()
	return nil
}

// Handle inspects err from any call made through the session's client. An
// authentication failure signs out and invokes the expiry callback. err is
// returned unchanged.
//
//	keys, err := client.ListAPIKeys(ctx)
//	if err = session.Handle(err); err != nil {
//	    return err
//	}
func (s *Session) Handle(err error) error {
	if err == nil || !IsAuthError(err) {
		return err
	}
	s.client.log.Info("gatewayz: credential rejected, signing out")
	if serr := s.SignOut(); serr != nil {
		s.client.log.Error("gatewayz: sign out failed", "error", serr)
	}
	if s.onAuthExpired != nil {
		s.onAuthExpired()
	}
	return err
}

func (s *Session) resetUserData() {
	s.mu.Lock()
	s.balance = nil
	s.profile = nil
	s.mu.Unlock()
}

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"kitchenfab_admin/internal/models"
	"kitchenfab_admin/pkg/utils"
)

// Refresher exchanges a refresh token for a new token pair. The auth API
// client satisfies this; tests supply fakes.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

// Manager is the explicit session object handed to the transport layer and to
// pages. It owns the current token pair, persists it through a TokenStore,
// and can keep the access token fresh in the background.
type Manager struct {
	mu      sync.RWMutex
	current *Session

	store  TokenStore
	leeway time.Duration
	tick   time.Duration
}

// NewManager creates a Manager backed by the given store, restoring any
// previously persisted session. A corrupt or missing stored session leaves
// the manager unauthenticated.
func NewManager(store TokenStore, tick, leeway time.Duration) *Manager {
	m := &Manager{store: store, leeway: leeway, tick: tick}
	sess, err := store.Load()
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			utils.LogError(err, "session: failed to restore persisted session")
		}
		return m
	}
	m.current = sess
	return m
}

// SetSession stores a new token pair, filling username and role from the
// access-token claims when the backend did not echo them.
func (m *Manager) SetSession(pair models.TokenPair) error {
	if pair.AccessToken == "" {
		return fmt.Errorf("cannot set session without an access token")
	}
	sess := &Session{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Username:     pair.Username,
		Role:         pair.Role,
	}
	if sess.Username == "" || sess.Role == "" {
		if claims, err := utils.ParseTokenClaims(pair.AccessToken); err == nil {
			if sess.Username == "" {
				sess.Username = claims.Username
			}
			if sess.Role == "" {
				sess.Role = claims.Role
			}
		}
	}

	m.mu.Lock()
	m.current = sess
	m.mu.Unlock()

	if err := m.store.Save(sess); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Clear drops the session from memory and from the store.
func (m *Manager) Clear() error {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	return m.store.Clear()
}

// AccessToken returns the current bearer token, or "" when unauthenticated.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.AccessToken
}

// RefreshToken returns the current refresh token, or "" when unauthenticated.
func (m *Manager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.RefreshToken
}

// Username returns the logged-in staff username, or "".
func (m *Manager) Username() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.Username
}

// Role returns the logged-in staff role, or "".
func (m *Manager) Role() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.Role
}

// Authenticated reports whether a session is held.
func (m *Manager) Authenticated() bool {
	return m.AccessToken() != ""
}

// StartAutoRefresh launches the background refresh loop and returns
// immediately. The loop wakes on a fixed interval, and when the access token
// is within the leeway window of expiry it exchanges the refresh token for a
// new pair. Refresh failures are logged and retried on the next wake; the
// loop stops when ctx is cancelled.
//
// The loop runs independently of resource fetching. A request issued while a
// refresh is in flight simply carries the old (still valid) token.
func (m *Manager) StartAutoRefresh(ctx context.Context, refresher Refresher) {
	go func() {
		ticker := time.NewTicker(m.tick)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.refreshIfNeeded(ctx, refresher)
			}
		}
	}()
}

func (m *Manager) refreshIfNeeded(ctx context.Context, refresher Refresher) {
	m.mu.RLock()
	sess := m.current
	m.mu.RUnlock()

	if sess == nil || sess.RefreshToken == "" {
		return
	}
	if !utils.TokenExpiresWithin(sess.AccessToken, m.leeway) {
		return
	}

	pair, err := refresher.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		utils.LogError(err, "session: token refresh failed, will retry")
		return
	}
	if pair.RefreshToken == "" {
		// Some backends rotate only the access token.
		pair.RefreshToken = sess.RefreshToken
	}
	if err := m.SetSession(*pair); err != nil {
		utils.LogError(err, "session: failed to store refreshed tokens")
		return
	}
	utils.LogDebug("session: access token refreshed")
}

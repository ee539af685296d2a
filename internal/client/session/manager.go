// Package session owns the client's authentication state: the bearer
// credential, the cached user identity, and the one-shot startup
// reconciliation against the backend.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/facturadash/facturadash/internal/client/api"
	"github.com/facturadash/facturadash/internal/client/models"
	"github.com/facturadash/facturadash/internal/client/store"
	"github.com/facturadash/facturadash/internal/client/tokencodec"
	"github.com/facturadash/facturadash/internal/client/validation"
	"github.com/facturadash/facturadash/internal/common"
	"github.com/facturadash/facturadash/internal/logging"
)

// AuthAPI is the slice of the backend client the manager needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
	Register(ctx context.Context, reg models.Registration) (string, *models.User, error)
}

const (
	msgBadCredentials = "invalid email or password"
	msgUnavailable    = "cannot reach the server, check your connection and try again"
	msgLoginFailed    = "login failed"
	msgRegisterFailed = "registration failed"
)

// Manager holds session state behind a mutex. Storage reads and writes
// happen under the same mutex, so each operation observes and updates the
// credential and identity without interleaving another operation's write.
//
// The bearer token lives behind its own lock: the transport's TokenSource
// reads it while the manager is mid-operation holding mu.
type Manager struct {
	api    AuthAPI
	store  store.Store
	codec  *tokencodec.Codec
	logger logging.Logger

	once sync.Once

	mu      sync.Mutex
	user    *models.User
	loading bool
	errMsg  string

	tokenMu sync.RWMutex
	token   string
}

func NewManager(a AuthAPI, st store.Store, codec *tokencodec.Codec, logger logging.Logger) *Manager {
	return &Manager{
		api:     a,
		store:   st,
		codec:   codec,
		logger:  logger,
		loading: true,
	}
}

// Token returns the current bearer credential, or "" when unauthenticated.
// Safe to call from the transport while a session operation is in flight.
func (m *Manager) Token() string {
	m.tokenMu.RLock()
	defer m.tokenMu.RUnlock()
	return m.token
}

func (m *Manager) setToken(token string) {
	m.tokenMu.Lock()
	m.token = token
	m.tokenMu.Unlock()
}

// User returns the cached identity, or nil.
func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

func (m *Manager) IsAuthenticated() bool {
	return m.User() != nil
}

func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Err returns the current user-visible error message, or "".
func (m *Manager) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errMsg
}

// ClearError resets the user-visible error message. Authentication state is
// unaffected.
func (m *Manager) ClearError() {
	m.mu.Lock()
	m.errMsg = ""
	m.mu.Unlock()
}

// Bootstrap reconciles cached local state with the backend. It runs at most
// once per process; later calls are no-ops. atLoginPrompt skips the whole
// check, since the user is about to log in anyway.
func (m *Manager) Bootstrap(ctx context.Context, atLoginPrompt bool) {
	m.once.Do(func() { m.bootstrap(ctx, atLoginPrompt) })
}

func (m *Manager) bootstrap(ctx context.Context, atLoginPrompt bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() { m.loading = false }()

	if atLoginPrompt {
		return
	}

	if err := m.codec.PurgeExpired(ctx, m.store); err != nil {
		m.logger.Warn(ctx, "purging expired credential", "error", err.Error())
	}

	token := m.readCredential(ctx)

	// adopt the cached identity before the network round trip, provisionally
	if cached := m.readIdentity(ctx); cached != nil {
		m.user = cached
	}

	if token == "" {
		return
	}
	m.setToken(token)

	authoritative, err := m.api.Me(ctx)
	switch {
	case err == nil:
		if authoritative != nil {
			m.adoptIdentity(ctx, authoritative)
		}
	case errors.Is(err, api.ErrUnauthorized):
		m.logger.Info(ctx, "stored credential rejected, clearing session")
		m.clearLocal(ctx)
	default:
		// ambiguous or transient failure. A stale identity beats forcing a
		// logout on a flaky network; without one the credential is useless.
		m.logger.Warn(ctx, "identity check failed, keeping local state", "error", err.Error())
		if m.user == nil {
			m.deleteStored(ctx, common.CredentialStorageKey)
			m.setToken("")
		}
	}
}

// Login authenticates against the backend. The outcome lands in session
// state: on success the user is set and the credential persisted, on any
// failure Err reports a human-readable message.
func (m *Manager) Login(ctx context.Context, email, password string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loading = true
	m.errMsg = ""
	defer func() { m.loading = false }()

	if err := validation.Check(validation.LoginForm{Email: email, Password: password}); err != nil {
		m.errMsg = err.Error()
		return
	}

	token, user, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.errMsg = loginErrorMessage(err, msgLoginFailed)
		return
	}
	if user == nil {
		m.logger.Error(ctx, "login response carried no user record")
		m.errMsg = msgLoginFailed
		return
	}
	m.persistSession(ctx, token, user)
}

// Register creates an account and, like Login, adopts the returned session.
func (m *Manager) Register(ctx context.Context, reg models.Registration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loading = true
	m.errMsg = ""
	defer func() { m.loading = false }()

	form := validation.RegisterForm{
		FirstName:   reg.FirstName,
		LastName:    reg.LastName,
		Email:       reg.Email,
		Password:    reg.Password,
		CompanyName: reg.CompanyName,
		CompanyRUC:  reg.CompanyRUC,
	}
	if err := validation.Check(form); err != nil {
		m.errMsg = err.Error()
		return
	}

	token, user, err := m.api.Register(ctx, reg)
	if err != nil {
		m.errMsg = loginErrorMessage(err, msgRegisterFailed)
		return
	}
	if user == nil {
		m.logger.Error(ctx, "register response carried no user record")
		m.errMsg = msgRegisterFailed
		return
	}
	m.persistSession(ctx, token, user)
}

// Logout tells the backend best-effort and always wipes local state.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.api.Logout(ctx); err != nil {
		m.logger.Warn(ctx, "backend logout failed", "error", err.Error())
	}
	m.clearLocal(ctx)
	m.errMsg = ""
}

func loginErrorMessage(err error, fallback string) string {
	var reqErr *api.RequestError
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		return msgBadCredentials
	case errors.Is(err, api.ErrUnavailable):
		return msgUnavailable
	case errors.As(err, &reqErr) && reqErr.Message != "":
		return reqErr.Message
	default:
		return fallback
	}
}

// readCredential loads the stored credential, decoding it when obfuscated.
// A failed decode means no usable credential.
func (m *Manager) readCredential(ctx context.Context) string {
	raw, err := m.store.Get(ctx, common.CredentialStorageKey)
	if err != nil {
		m.logger.Warn(ctx, "reading stored credential", "error", err.Error())
		return ""
	}
	if len(raw) == 0 {
		return ""
	}

	stored := string(raw)
	if m.codec.IsEncoded(stored) {
		return m.codec.Decode(stored)
	}
	return stored
}

func (m *Manager) readIdentity(ctx context.Context) *models.User {
	raw, err := m.store.Get(ctx, common.IdentityStorageKey)
	if err != nil || len(raw) == 0 {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		m.logger.Warn(ctx, "discarding unreadable cached identity", "error", err.Error())
		return nil
	}
	return &user
}

// adoptIdentity replaces the in-memory identity with the server's record and
// rewrites storage only when the record actually changed.
func (m *Manager) adoptIdentity(ctx context.Context, user *models.User) {
	updated, err := json.Marshal(user)
	if err != nil {
		m.logger.Error(ctx, "encoding identity", "error", err.Error())
		m.user = user
		return
	}

	current, err := m.store.Get(ctx, common.IdentityStorageKey)
	if err != nil || !bytes.Equal(current, updated) {
		if err := m.store.Set(ctx, common.IdentityStorageKey, updated); err != nil {
			m.logger.Error(ctx, "persisting identity", "error", err.Error())
		}
	}
	m.user = user
}

func (m *Manager) persistSession(ctx context.Context, token string, user *models.User) {
	stored := m.codec.Encode(token)
	if err := m.store.Set(ctx, common.CredentialStorageKey, []byte(stored)); err != nil {
		m.logger.Error(ctx, "persisting credential", "error", err.Error())
	}

	if raw, err := json.Marshal(user); err == nil {
		if err := m.store.Set(ctx, common.IdentityStorageKey, raw); err != nil {
			m.logger.Error(ctx, "persisting identity", "error", err.Error())
		}
	}

	m.user = user
	m.setToken(token)
}

func (m *Manager) clearLocal(ctx context.Context) {
	m.deleteStored(ctx, common.CredentialStorageKey)
	m.deleteStored(ctx, common.IdentityStorageKey)
	m.user = nil
	m.setToken("")
}

func (m *Manager) deleteStored(ctx context.Context, key string) {
	if err := m.store.Delete(ctx, key); err != nil {
		m.logger.Warn(ctx, "deleting stored value", "key", key, "error", err.Error())
	}
}

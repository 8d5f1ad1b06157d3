package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/shopkit/storefront/pkg/kvstore"
	"github.com/shopkit/storefront/pkg/token"
)

// Persistence keys in the key-value store.
const (
	tokenKey = "auth:token"
	userKey  = "auth:user"
)

// Store holds authentication state and drives the login flow.
//
// Network calls run outside the internal mutex; each response is applied
// atomically under it once resolved. If two Login calls race, the challenge
// reflects whichever response resolved last (last-resolved-wins — callers
// are expected to disable concurrent submission in the UI, not the store).
type Store struct {
	gateway AuthGateway
	codec   token.Codec
	kv      kvstore.Store
	log     *slog.Logger
	now     func() time.Time

	mu        sync.Mutex
	state     State
	token     string
	expiry    time.Time
	user      *User
	challenge *Challenge
}

// Option configures the Store.
type Option func(*Store)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the time source, used by expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates an anonymous session store. Call Restore once at startup to
// hydrate from persisted state.
func New(gateway AuthGateway, codec token.Codec, kv kvstore.Store, opts ...Option) *Store {
	s := &Store{
		gateway: gateway,
		codec:   codec,
		kv:      kv,
		log:     slog.Default(),
		now:     time.Now,
		state:   Anonymous,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login exchanges credentials for a two-factor challenge and transitions to
// TwoFactorPending. Calling Login while already authenticated restarts the
// flow; the held token is untouched until verification succeeds.
//
// Returns the challenge descriptor for display, or an error joined with
// ErrAuth when the gateway rejects the credentials.
func (s *Store) Login(ctx context.Context, email, password string) (Challenge, error) {
	ch, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return Challenge{}, errors.Join(ErrAuth, err)
	}

	s.mu.Lock()
	s.challenge = &ch
	s.state = TwoFactorPending
	s.mu.Unlock()

	s.log.DebugContext(ctx, "two-factor challenge issued",
		slog.String("delivery", ch.DeliveryMethod))

	return ch, nil
}

// VerifyChallenge completes the two-factor flow. Only valid in
// TwoFactorPending; otherwise returns ErrNoPendingChallenge without touching
// state. A rejected code leaves the challenge in place for retry and returns
// an error joined with ErrVerification.
func (s *Store) VerifyChallenge(ctx context.Context, code string) (User, error) {
	s.mu.Lock()
	if s.challenge == nil {
		s.mu.Unlock()
		return User{}, ErrNoPendingChallenge
	}
	challengeToken := s.challenge.Token
	s.mu.Unlock()

	res, err := s.gateway.VerifyTwoFactor(ctx, challengeToken, code)
	if err != nil {
		return User{}, errors.Join(ErrVerification, err)
	}

	user := User{
		FirstName: res.FirstName,
		LastName:  res.LastName,
		Role:      res.Role,
		UUID:      res.UUID,
	}

	var expiry time.Time
	if claims, err := s.codec.Decode(res.Token); err == nil {
		expiry = claims.ExpiresAt
	}

	s.mu.Lock()
	s.challenge = nil
	s.token = res.Token
	s.expiry = expiry
	s.user = &user
	s.state = Authenticated
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.log.InfoContext(ctx, "session authenticated", slog.String("user", user.UUID))

	return user, nil
}

// Logout clears the session unconditionally and erases persisted state.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.clearLocked(ctx)
	s.mu.Unlock()

	s.log.DebugContext(ctx, "session cleared")
}

// Restore hydrates the session from persisted state. A missing, malformed,
// or expired token leaves the store anonymous and erases the stale persisted
// values. Restore never returns an error: persistence problems degrade to a
// fresh anonymous session.
func (s *Store) Restore(ctx context.Context) {
	raw, err := s.kv.Get(ctx, tokenKey)
	if err != nil {
		return
	}

	claims, err := s.codec.Decode(raw)
	if err != nil || claims.Expired(s.now()) {
		s.erase(ctx)
		return
	}

	rawUser, err := s.kv.Get(ctx, userKey)
	if err != nil {
		s.erase(ctx)
		return
	}
	var user User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.erase(ctx)
		return
	}

	s.mu.Lock()
	s.token = raw
	s.expiry = claims.ExpiresAt
	s.user = &user
	s.challenge = nil
	s.state = Authenticated
	s.mu.Unlock()

	s.log.DebugContext(ctx, "session restored", slog.String("user", user.UUID))
}

// State returns the current state, demoting to Anonymous if the token has
// expired since it was set.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked()
	return s.state
}

// Token returns the bearer token, or "" when not authenticated.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked()
	return s.token
}

// IsAuthenticated reports whether a valid, unexpired token is held.
func (s *Store) IsAuthenticated() bool {
	return s.State() == Authenticated
}

// Snapshot returns a copy-safe view of the session.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked()

	snap := Snapshot{State: s.state, Token: s.token}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	if s.challenge != nil {
		ch := *s.challenge
		snap.Challenge = &ch
	}
	return snap
}

// expireLocked demotes an authenticated session whose token expiry has
// passed. Caller must hold the mutex.
func (s *Store) expireLocked() {
	if s.state != Authenticated {
		return
	}
	if s.expiry.IsZero() || s.now().Before(s.expiry) {
		return
	}
	s.clearLocked(context.Background())
	s.log.Debug("session expired")
}

// clearLocked resets to Anonymous and erases persisted state.
// Caller must hold the mutex.
func (s *Store) clearLocked(ctx context.Context) {
	s.token = ""
	s.expiry = time.Time{}
	s.user = nil
	s.challenge = nil
	s.state = Anonymous

	if err := s.kv.Remove(ctx, tokenKey); err != nil {
		s.log.WarnContext(ctx, "failed to erase persisted token", slog.Any("error", err))
	}
	if err := s.kv.Remove(ctx, userKey); err != nil {
		s.log.WarnContext(ctx, "failed to erase persisted user", slog.Any("error", err))
	}
}

// persistLocked writes token and user through to the key-value store.
// Failures are logged and swallowed: the in-memory session stays valid and
// merely won't survive a restart. Caller must hold the mutex.
func (s *Store) persistLocked(ctx context.Context) {
	if err := s.kv.Set(ctx, tokenKey, s.token); err != nil {
		s.log.WarnContext(ctx, "failed to persist token", slog.Any("error", err))
		return
	}

	data, err := json.Marshal(s.user)
	if err != nil {
		s.log.WarnContext(ctx, "failed to encode user", slog.Any("error", err))
		return
	}
	if err := s.kv.Set(ctx, userKey, string(data)); err != nil {
		s.log.WarnContext(ctx, "failed to persist user", slog.Any("error", err))
	}
}

// erase removes persisted session state without touching in-memory state.
func (s *Store) erase(ctx context.Context) {
	_ = s.kv.Remove(ctx, tokenKey)
	_ = s.kv.Remove(ctx, userKey)
}

// Package session is the single source of truth for "who is the current
// actor and are they authenticated".
//
// The session is a small state machine (Anonymous, Authenticating,
// Authenticated, Expired) fed by the auth endpoints and by the persisted
// token. It is the only component that touches the token store; everything
// else reads the session or asks it to transition. State changes are pushed
// to subscribers over an event bus, so independent UI surfaces react to the
// same authentication fact without polling.
//
// Logout is client-local: the server exposes no invalidation endpoint, so a
// still-valid token remains usable server-side after logout. Known gap.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/librivault/librivault-cli/internal/client/models"
	"github.com/librivault/librivault-cli/internal/client/tokenstore"
	"github.com/librivault/librivault-cli/internal/logging"
)

// State names a position in the session lifecycle.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
	StateExpired        State = "expired"
)

// topicStateChanged is the bus topic carrying Snapshot values.
const topicStateChanged = "session:state"

// ErrSuperseded is returned when a call completed after the session had
// already moved on (e.g. a slow login response landing after a logout).
// The completion is discarded instead of resurrecting stale state.
var ErrSuperseded = errors.New("session state changed during call")

// Authenticator is the slice of the API the session needs. The HTTP client
// implements it.
type Authenticator interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context) (*models.AuthResponse, error)
	Profile(ctx context.Context) (*models.User, error)
}

// Snapshot is the value delivered to subscribers on every state change.
// User may lag behind State briefly while a profile fetch is in flight.
type Snapshot struct {
	State State
	User  *models.User
}

// Session holds the in-memory authentication state of the process.
//
// All mutation goes through its methods; the generation counter guards
// against out-of-order completions: any transition that invalidates
// in-flight work (logout, forced expiry, a competing login) bumps the
// generation, and async completions are applied only if the generation they
// captured is still current.
type Session struct {
	mu         sync.Mutex
	state      State
	token      string
	claims     *Claims
	user       *models.User
	generation uint64

	store tokenstore.Store
	auth  Authenticator
	bus   EventBus.Bus
	log   logging.Logger

	// now is a test seam for expiry checks.
	now func() time.Time
}

func New(store tokenstore.Store, auth Authenticator, log logging.Logger) *Session {
	return &Session{
		state: StateAnonymous,
		store: store,
		auth:  auth,
		bus:   EventBus.New(),
		log:   log,
		now:   time.Now,
	}
}

// Init restores the session from the persisted token.
//
// A present, unexpired token makes the session optimistically Authenticated
// and kicks off a background profile reload; the profile may be absent for
// a moment. An absent or expired token leaves the session Anonymous (and
// drops the stale token), with no profile fetch attempted.
func (s *Session) Init(ctx context.Context) {
	token := s.store.Read(ctx)
	if token == "" {
		return
	}
	if IsTokenExpired(token, s.now()) {
		s.log.Info(ctx, "stored token expired, starting anonymous")
		if err := s.store.Clear(ctx); err != nil {
			s.log.Warn(ctx, "failed to drop expired token", "error", err)
		}
		return
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		s.log.Warn(ctx, "stored token undecodable, starting anonymous", "error", err)
		_ = s.store.Clear(ctx)
		return
	}

	s.mu.Lock()
	s.token = token
	s.claims = claims
	s.state = StateAuthenticated
	gen := s.generation
	s.mu.Unlock()
	s.publish()

	go s.reloadProfile(ctx, gen)
}

// reloadProfile fetches the profile and applies it only if the session has
// not moved on since gen was captured.
func (s *Session) reloadProfile(ctx context.Context, gen uint64) {
	user, err := s.auth.Profile(ctx)
	if err != nil {
		// Credential may still be valid; stay Authenticated with an
		// absent profile until a later reload succeeds.
		s.log.Warn(ctx, "profile reload failed", "error", err)
		return
	}

	s.mu.Lock()
	if s.generation != gen || s.state != StateAuthenticated {
		s.mu.Unlock()
		return
	}
	s.user = user
	s.mu.Unlock()
	s.publish()
}

// Login exchanges credentials for a token and profile. On success the token
// is persisted and the session becomes Authenticated; on failure the
// session returns to its previous state and the error is propagated for
// the caller to display.
func (s *Session) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	return s.authenticate(ctx, func() (*models.AuthResponse, error) {
		return s.auth.Login(ctx, req)
	})
}

// Register has the same contract as Login against the register endpoint.
func (s *Session) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return s.authenticate(ctx, func() (*models.AuthResponse, error) {
		return s.auth.Register(ctx, req)
	})
}

func (s *Session) authenticate(ctx context.Context, call func() (*models.AuthResponse, error)) (*models.User, error) {
	s.mu.Lock()
	prev := s.state
	gen := s.generation
	s.state = StateAuthenticating
	s.mu.Unlock()
	s.publish()

	resp, err := call()

	s.mu.Lock()
	if s.generation != gen {
		// Logout or a competing transition won the race; do not
		// resurrect an authenticated state from a stale response.
		s.mu.Unlock()
		if err != nil {
			return nil, err
		}
		return nil, ErrSuperseded
	}

	if err != nil {
		s.state = prev
		s.mu.Unlock()
		s.publish()
		return nil, err
	}

	claims, cerr := DecodeClaims(resp.Token)
	if cerr != nil {
		s.state = prev
		s.mu.Unlock()
		s.publish()
		return nil, cerr
	}

	// A new login invalidates work started for the previous credential
	// (e.g. a profile reload still in flight from Init).
	s.generation++
	s.token = resp.Token
	s.claims = claims
	s.user = resp.User
	s.state = StateAuthenticated
	s.mu.Unlock()

	if serr := s.store.Save(ctx, resp.Token); serr != nil {
		s.log.Warn(ctx, "failed to persist token, session will not survive restart", "error", serr)
	}
	s.publish()
	return resp.User, nil
}

// Logout clears the token and profile and returns the session to Anonymous.
// It always succeeds, is idempotent, and makes no server call.
func (s *Session) Logout(ctx context.Context) {
	s.drop(ctx, StateAnonymous)
}

// ForceExpire is invoked when the server rejects the credential (401): the
// session drops the token and lands in Expired. A subsequent Logout (or
// login) moves it on to Anonymous.
func (s *Session) ForceExpire(ctx context.Context) {
	s.drop(ctx, StateExpired)
}

func (s *Session) drop(ctx context.Context, to State) {
	s.mu.Lock()
	s.generation++
	s.token = ""
	s.claims = nil
	s.user = nil
	s.state = to
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear stored token", "error", err)
	}
	s.publish()
}

// RefreshToken exchanges the current token for a fresh one. Failure is
// surfaced to the caller and never triggers a logout here; that policy
// belongs to the request gate.
func (s *Session) RefreshToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	gen := s.generation
	s.mu.Unlock()

	resp, err := s.auth.Refresh(ctx)
	if err != nil {
		return "", err
	}

	claims, err := DecodeClaims(resp.Token)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	if s.generation != gen {
		s.mu.Unlock()
		return "", ErrSuperseded
	}
	s.token = resp.Token
	s.claims = claims
	if resp.User != nil {
		s.user = resp.User
	}
	s.mu.Unlock()

	if serr := s.store.Save(ctx, resp.Token); serr != nil {
		s.log.Warn(ctx, "failed to persist refreshed token", "error", serr)
	}
	s.publish()
	return resp.Token, nil
}

// ReloadProfile re-fetches the profile for the current credential.
func (s *Session) ReloadProfile(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateAuthenticated {
		s.mu.Unlock()
		return nil
	}
	gen := s.generation
	s.mu.Unlock()

	user, err := s.auth.Profile(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.generation != gen || s.state != StateAuthenticated {
		s.mu.Unlock()
		return ErrSuperseded
	}
	s.user = user
	s.mu.Unlock()
	s.publish()
	return nil
}

// IsAuthenticated reports whether the session holds a live credential.
// Expiry is detected lazily here: an Authenticated session whose token has
// passed its exp claim flips to Expired on this read.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	if s.state != StateAuthenticated {
		s.mu.Unlock()
		return false
	}
	if s.claims == nil || s.claims.ExpiresAt == nil || s.claims.ExpiresAt.Time.Before(s.now()) {
		s.state = StateExpired
		s.mu.Unlock()
		s.publish()
		return false
	}
	s.mu.Unlock()
	return true
}

// HasAnyRole reports whether the current profile's role is in roles.
// Always false when not authenticated or while the profile is still absent.
func (s *Session) HasAnyRole(roles ...models.Role) bool {
	if !s.IsAuthenticated() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return false
	}
	for _, r := range roles {
		if s.user.Role == r {
			return true
		}
	}
	return false
}

// CurrentUser returns the cached profile, or nil when absent.
func (s *Session) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Token returns the current raw bearer token, or "" when anonymous.
// Used by the request gate to build the Authorization header.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to receive a Snapshot on every state change.
func (s *Session) Subscribe(fn func(Snapshot)) error {
	return s.bus.Subscribe(topicStateChanged, fn)
}

// Unsubscribe removes a previously subscribed fn; consumers call it on
// teardown.
func (s *Session) Unsubscribe(fn func(Snapshot)) error {
	return s.bus.Unsubscribe(topicStateChanged, fn)
}

// publish broadcasts the current snapshot. Called outside the mutex so
// subscribers may read the session synchronously.
func (s *Session) publish() {
	s.mu.Lock()
	snap := Snapshot{State: s.state, User: s.user}
	s.mu.Unlock()
	s.bus.Publish(topicStateChanged, snap)
}

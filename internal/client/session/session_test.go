package session

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/librivault/librivault-cli/internal/client/models"
	"github.com/librivault/librivault-cli/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type memStore struct {
	mu    sync.Mutex
	token string
	saves int
}

func (m *memStore) Save(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.saves++
	return nil
}

func (m *memStore) Read(ctx context.Context) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *memStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

type fakeAuth struct {
	mu sync.Mutex

	loginResp   *models.AuthResponse
	loginErr    error
	loginGate   chan struct{} // when non-nil, Login blocks until closed
	regResp     *models.AuthResponse
	regErr      error
	refreshResp *models.AuthResponse
	refreshErr  error
	profileResp *models.User
	profileErr  error
	profileGate chan struct{} // when non-nil, Profile blocks until closed

	profileCalls int
}

func (f *fakeAuth) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if f.loginGate != nil {
		<-f.loginGate
	}
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	return f.regResp, f.regErr
}

func (f *fakeAuth) Refresh(ctx context.Context) (*models.AuthResponse, error) {
	return f.refreshResp, f.refreshErr
}

func (f *fakeAuth) Profile(ctx context.Context) (*models.User, error) {
	if f.profileGate != nil {
		<-f.profileGate
	}
	f.mu.Lock()
	f.profileCalls++
	f.mu.Unlock()
	return f.profileResp, f.profileErr
}

func (f *fakeAuth) profileCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profileCalls
}

func reader(t *testing.T) (*models.User, string) {
	t.Helper()
	u := &models.User{ID: 42, Email: "r@example.com", Role: models.RoleReader, Active: true}
	return u, makeToken(t, models.RoleReader, time.Now().Add(time.Hour))
}

func newSession(store *memStore, auth *fakeAuth) *Session {
	return New(store, auth, logging.New(io.Discard, "error"))
}

// ---- tests ----

func TestLoginSuccess(t *testing.T) {
	user, token := reader(t)
	store := &memStore{}
	auth := &fakeAuth{loginResp: &models.AuthResponse{Token: token, User: user}}
	s := newSession(store, auth)

	got, err := s.Login(context.Background(), models.LoginRequest{Email: "r@example.com", Password: "pw"})
	require.NoError(t, err)

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, models.RoleReader, got.Role)
	assert.Equal(t, models.RoleReader, s.CurrentUser().Role)
	assert.Equal(t, token, store.Read(context.Background()), "token must be persisted exactly once")
	assert.Equal(t, 1, store.saves)
}

func TestLoginFailureLeavesAnonymous(t *testing.T) {
	store := &memStore{}
	auth := &fakeAuth{loginErr: errors.New("bad credentials")}
	s := newSession(store, auth)

	_, err := s.Login(context.Background(), models.LoginRequest{})
	require.Error(t, err)

	assert.Equal(t, StateAnonymous, s.State())
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, store.Read(context.Background()), "no persistence side effect on failure")
}

func TestRegisterSuccess(t *testing.T) {
	user, token := reader(t)
	auth := &fakeAuth{regResp: &models.AuthResponse{Token: token, User: user}}
	s := newSession(&memStore{}, auth)

	_, err := s.Register(context.Background(), models.RegisterRequest{Email: "r@example.com"})
	require.NoError(t, err)
	assert.True(t, s.IsAuthenticated())
}

func TestLogoutAlwaysLandsAnonymous(t *testing.T) {
	user, token := reader(t)
	store := &memStore{}
	auth := &fakeAuth{loginResp: &models.AuthResponse{Token: token, User: user}}
	s := newSession(store, auth)

	_, err := s.Login(context.Background(), models.LoginRequest{})
	require.NoError(t, err)

	s.Logout(context.Background())
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.CurrentUser())
	assert.Empty(t, store.Read(context.Background()))

	// Idempotent: a second logout produces the same end state.
	s.Logout(context.Background())
	assert.Equal(t, StateAnonymous, s.State())
	assert.Empty(t, store.Read(context.Background()))
}

func TestStaleLoginDoesNotResurrectSession(t *testing.T) {
	user, token := reader(t)
	gate := make(chan struct{})
	store := &memStore{}
	auth := &fakeAuth{loginResp: &models.AuthResponse{Token: token, User: user}, loginGate: gate}
	s := newSession(store, auth)

	errCh := make(chan error, 1)
	go func() {
		_, err := s.Login(context.Background(), models.LoginRequest{})
		errCh <- err
	}()

	// Logout while the login call is still in flight, then let it finish.
	require.Eventually(t, func() bool { return s.State() == StateAuthenticating },
		time.Second, time.Millisecond)
	s.Logout(context.Background())
	close(gate)

	err := <-errCh
	assert.ErrorIs(t, err, ErrSuperseded)
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, store.Read(context.Background()))
}

func TestStaleProfileDoesNotOverwriteCompetingLogin(t *testing.T) {
	userA := &models.User{ID: 1, Email: "a@example.com", Role: models.RoleReader}
	userB := &models.User{ID: 2, Email: "b@example.com", Role: models.RoleLibrarian}
	tokenA := makeToken(t, models.RoleReader, time.Now().Add(time.Hour))
	tokenB := makeToken(t, models.RoleLibrarian, time.Now().Add(time.Hour))

	gate := make(chan struct{})
	store := &memStore{token: tokenA}
	auth := &fakeAuth{
		profileResp: userA,
		profileGate: gate,
		loginResp:   &models.AuthResponse{Token: tokenB, User: userB},
	}
	s := newSession(store, auth)

	// Init restores user A's credential; the background profile fetch for
	// it is still hanging when user B logs in.
	s.Init(context.Background())

	got, err := s.Login(context.Background(), models.LoginRequest{Email: "b@example.com"})
	require.NoError(t, err)
	require.Equal(t, userB.ID, got.ID)
	require.Equal(t, userB.ID, s.CurrentUser().ID)

	// Now the old fetch completes with user A's profile; it must be
	// discarded, not applied over user B's session.
	close(gate)
	require.Eventually(t, func() bool { return auth.profileCallCount() == 1 },
		time.Second, time.Millisecond)
	assert.Never(t, func() bool { return s.CurrentUser().ID == userA.ID },
		100*time.Millisecond, 10*time.Millisecond,
		"profile fetched for the previous credential must not land")
	assert.True(t, s.HasAnyRole(models.RoleLibrarian), "role checks must see user B")
}

func TestInitWithExpiredTokenStaysAnonymous(t *testing.T) {
	store := &memStore{token: makeToken(t, models.RoleReader, time.Now().Add(-10*time.Minute))}
	auth := &fakeAuth{}
	s := newSession(store, auth)

	s.Init(context.Background())

	assert.Equal(t, StateAnonymous, s.State())
	assert.Empty(t, store.Read(context.Background()), "expired token is dropped")
	assert.Zero(t, auth.profileCallCount(), "no profile fetch for an expired token")
}

func TestInitWithValidTokenIsOptimisticallyAuthenticated(t *testing.T) {
	user, token := reader(t)
	store := &memStore{token: token}
	auth := &fakeAuth{profileResp: user}
	s := newSession(store, auth)

	s.Init(context.Background())

	assert.True(t, s.IsAuthenticated(), "authenticated before the profile arrives")
	require.Eventually(t, func() bool { return s.CurrentUser() != nil },
		time.Second, time.Millisecond, "background profile reload must land")
	assert.Equal(t, user.ID, s.CurrentUser().ID)
}

func TestInitProfileFetchFailureKeepsCredential(t *testing.T) {
	_, token := reader(t)
	store := &memStore{token: token}
	auth := &fakeAuth{profileErr: errors.New("boom 500")}
	s := newSession(store, auth)

	s.Init(context.Background())

	require.Eventually(t, func() bool { return auth.profileCallCount() == 1 },
		time.Second, time.Millisecond)
	assert.True(t, s.IsAuthenticated(), "credential still valid despite failed fetch")
	assert.Nil(t, s.CurrentUser(), "profile stays absent until retried")
}

func TestHasAnyRole(t *testing.T) {
	user, token := reader(t)
	auth := &fakeAuth{loginResp: &models.AuthResponse{Token: token, User: user}}
	s := newSession(&memStore{}, auth)

	assert.False(t, s.HasAnyRole(models.RoleAdmin, models.RoleReader), "always false while anonymous")

	_, err := s.Login(context.Background(), models.LoginRequest{})
	require.NoError(t, err)

	assert.True(t, s.HasAnyRole(models.RoleReader))
	assert.True(t, s.HasAnyRole(models.RoleLibrarian, models.RoleReader))
	assert.False(t, s.HasAnyRole(models.RoleAdmin))
	assert.False(t, s.HasAnyRole())
}

func TestLazyExpiryFlipsState(t *testing.T) {
	user, token := reader(t)
	auth := &fakeAuth{loginResp: &models.AuthResponse{Token: token, User: user}}
	s := newSession(&memStore{}, auth)

	_, err := s.Login(context.Background(), models.LoginRequest{})
	require.NoError(t, err)
	require.True(t, s.IsAuthenticated())

	// Move the clock past exp; the next read detects the expiry.
	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, StateExpired, s.State())
}

func TestForceExpire(t *testing.T) {
	user, token := reader(t)
	store := &memStore{}
	auth := &fakeAuth{loginResp: &models.AuthResponse{Token: token, User: user}}
	s := newSession(store, auth)

	_, err := s.Login(context.Background(), models.LoginRequest{})
	require.NoError(t, err)

	s.ForceExpire(context.Background())

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, StateExpired, s.State())
	assert.Empty(t, store.Read(context.Background()))
}

func TestRefreshFailureDoesNotLogout(t *testing.T) {
	user, token := reader(t)
	auth := &fakeAuth{
		loginResp:  &models.AuthResponse{Token: token, User: user},
		refreshErr: errors.New("refresh rejected"),
	}
	s := newSession(&memStore{}, auth)

	_, err := s.Login(context.Background(), models.LoginRequest{})
	require.NoError(t, err)

	_, err = s.RefreshToken(context.Background())
	require.Error(t, err)
	assert.True(t, s.IsAuthenticated(), "refresh failure alone must not end the session")
}

func TestRefreshReplacesToken(t *testing.T) {
	user, token := reader(t)
	newToken := makeToken(t, models.RoleReader, time.Now().Add(2*time.Hour))
	store := &memStore{}
	auth := &fakeAuth{
		loginResp:   &models.AuthResponse{Token: token, User: user},
		refreshResp: &models.AuthResponse{Token: newToken, User: user},
	}
	s := newSession(store, auth)

	_, err := s.Login(context.Background(), models.LoginRequest{})
	require.NoError(t, err)

	got, err := s.RefreshToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, newToken, got)
	assert.Equal(t, newToken, s.Token())
	assert.Equal(t, newToken, store.Read(context.Background()))
}

func TestSubscribeReceivesStateChanges(t *testing.T) {
	user, token := reader(t)
	auth := &fakeAuth{loginResp: &models.AuthResponse{Token: token, User: user}}
	s := newSession(&memStore{}, auth)

	var mu sync.Mutex
	var seen []State
	handler := func(snap Snapshot) {
		mu.Lock()
		seen = append(seen, snap.State)
		mu.Unlock()
	}
	require.NoError(t, s.Subscribe(handler))

	_, err := s.Login(context.Background(), models.LoginRequest{})
	require.NoError(t, err)
	s.Logout(context.Background())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []State{StateAuthenticating, StateAuthenticated, StateAnonymous}, seen)
}

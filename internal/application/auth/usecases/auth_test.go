package usecases

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codearena/arena-admin/internal/application/audit/audittest"
	"github.com/codearena/arena-admin/internal/domain/session"
	"github.com/codearena/arena-admin/internal/infrastructure/auth"
	"github.com/codearena/arena-admin/internal/shared/authorization"
	apperrors "github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/sdk/platform"
)

type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]*session.Session
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: make(map[string]*session.Session)}
}

func (m *memorySessions) Create(_ context.Context, s *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memorySessions) Get(_ context.Context, id string) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("session not found")
	}
	return s, nil
}

func (m *memorySessions) Touch(_ context.Context, s *session.Session) error {
	s.UpdateActivity()
	return nil
}

func (m *memorySessions) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

type fakeLoginGateway struct {
	result *platform.LoginResult
	err    error
}

func (f *fakeLoginGateway) Login(context.Context, string, string) (*platform.LoginResult, error) {
	return f.result, f.err
}

func loginAs(role string, expiresIn int64) *fakeLoginGateway {
	return &fakeLoginGateway{result: &platform.LoginResult{
		AccessToken: "platform-token",
		ExpiresIn:   expiresIn,
		User:        platform.User{ID: "u1", Username: "alice", Email: "alice@example.com", Role: role},
	}}
}

func newTokens() *auth.JWTService {
	return auth.NewJWTService("test-secret", 15, 7)
}

func TestLogin_Staff(t *testing.T) {
	sessions := newMemorySessions()
	tokens := newTokens()
	sink := audittest.NewSink()
	uc := NewLoginUseCase(loginAs("moderator", 3600), sessions, tokens, sink, logger.NewNop())

	res, err := uc.Execute(context.Background(), LoginCommand{Email: " Alice@Example.com ", Password: "pw", IPAddress: "10.0.0.1"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Tokens.AccessToken)
	assert.Equal(t, "moderator", res.Staff.Role)

	sess, err := sessions.Get(context.Background(), res.Staff.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "platform-token", sess.PlatformToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, time.Minute, "capped by the platform token lifetime")

	claims, err := tokens.VerifyAccess(res.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, claims.SessionID)

	rec := sink.Last()
	assert.Equal(t, "auth.login", rec.Action.Name)
}

func TestLogin_RejectsNonStaff(t *testing.T) {
	uc := NewLoginUseCase(loginAs("user", 0), newMemorySessions(), newTokens(), audittest.NewSink(), logger.NewNop())

	_, err := uc.Execute(context.Background(), LoginCommand{Email: "bob@example.com", Password: "pw"})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperrors.GetAppError(err).Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	gw := &fakeLoginGateway{err: &platform.APIError{StatusCode: http.StatusUnauthorized, Message: "bad credentials"}}
	uc := NewLoginUseCase(gw, newMemorySessions(), newTokens(), audittest.NewSink(), logger.NewNop())

	_, err := uc.Execute(context.Background(), LoginCommand{Email: "bob@example.com", Password: "nope"})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	assert.Equal(t, "invalid email or password", appErr.Message)

	_, err = uc.Execute(context.Background(), LoginCommand{Email: "not-an-email", Password: "x"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestAuthenticate_AndLogout(t *testing.T) {
	sessions := newMemorySessions()
	tokens := newTokens()
	login := NewLoginUseCase(loginAs("admin", 0), sessions, tokens, audittest.NewSink(), logger.NewNop())
	authn := NewAuthenticateUseCase(sessions, tokens, logger.NewNop())
	logout := NewLogoutUseCase(sessions, audittest.NewSink(), logger.NewNop())

	res, err := login.Execute(context.Background(), LoginCommand{Email: "root@example.com", Password: "pw"})
	require.NoError(t, err)

	sess, err := authn.Execute(context.Background(), res.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", sess.StaffID)

	_, err = authn.Execute(context.Background(), res.Tokens.RefreshToken)
	assert.Equal(t, http.StatusUnauthorized, apperrors.GetAppError(err).Code, "refresh tokens are not access tokens")

	require.NoError(t, logout.Execute(context.Background(), sess.ID))
	_, err = authn.Execute(context.Background(), res.Tokens.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, apperrors.GetAppError(err).Code)
}

func TestRefreshToken(t *testing.T) {
	sessions := newMemorySessions()
	tokens := newTokens()
	login := NewLoginUseCase(loginAs("admin", 0), sessions, tokens, audittest.NewSink(), logger.NewNop())
	refresh := NewRefreshTokenUseCase(sessions, tokens, logger.NewNop())

	res, err := login.Execute(context.Background(), LoginCommand{Email: "root@example.com", Password: "pw"})
	require.NoError(t, err)

	pair, err := refresh.Execute(context.Background(), res.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	_, err = refresh.Execute(context.Background(), res.Tokens.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, apperrors.GetAppError(err).Code)

	require.NoError(t, sessions.Delete(context.Background(), res.Staff.SessionID))
	_, err = refresh.Execute(context.Background(), res.Tokens.RefreshToken)
	assert.Equal(t, http.StatusUnauthorized, apperrors.GetAppError(err).Code)
}

func TestRefreshToken_RejectsOtherStaffSession(t *testing.T) {
	sessions := newMemorySessions()
	tokens := newTokens()
	login := NewLoginUseCase(loginAs("admin", 0), sessions, tokens, audittest.NewSink(), logger.NewNop())
	refresh := NewRefreshTokenUseCase(sessions, tokens, logger.NewNop())

	res, err := login.Execute(context.Background(), LoginCommand{Email: "root@example.com", Password: "pw"})
	require.NoError(t, err)

	forged, err := tokens.Generate("u2", res.Staff.SessionID, authorization.RoleAdmin)
	require.NoError(t, err)

	_, err = refresh.Execute(context.Background(), forged.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.GetAppError(err).Code)
}

func TestGetCurrentStaff(t *testing.T) {
	sessions := newMemorySessions()
	sess, err := session.NewSession("u1", "alice", "a@example.com", "admin", "tok", "", "", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, sessions.Create(context.Background(), sess))

	uc := NewGetCurrentStaffUseCase(sessions, logger.NewNop())
	me, err := uc.Execute(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Username)

	_, err = uc.Execute(context.Background(), "missing")
	assert.Equal(t, http.StatusUnauthorized, apperrors.GetAppError(err).Code)
}

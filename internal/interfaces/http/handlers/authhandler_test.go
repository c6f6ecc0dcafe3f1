package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authUsecases "github.com/codearena/arena-admin/internal/application/auth/usecases"
	"github.com/codearena/arena-admin/internal/infrastructure/auth"
	"github.com/codearena/arena-admin/internal/interfaces/http/handlers/testutil"
	"github.com/codearena/arena-admin/internal/shared/config"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

type mockLoginUC struct {
	cmd    authUsecases.LoginCommand
	result *authUsecases.LoginResult
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd authUsecases.LoginCommand) (*authUsecases.LoginResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockRefreshTokenUC struct {
	token  string
	result *auth.TokenPair
	err    error
}

func (m *mockRefreshTokenUC) Execute(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	m.token = refreshToken
	return m.result, m.err
}

type mockLogoutUC struct {
	sessionID string
	err       error
}

func (m *mockLogoutUC) Execute(ctx context.Context, sessionID string) error {
	m.sessionID = sessionID
	return m.err
}

type mockGetCurrentStaffUC struct {
	result *authUsecases.StaffDTO
	err    error
}

func (m *mockGetCurrentStaffUC) Execute(ctx context.Context, sessionID string) (*authUsecases.StaffDTO, error) {
	return m.result, m.err
}

func newTestAuthHandler(login loginUseCase, refresh refreshTokenUseCase, logout logoutUseCase, current getCurrentStaffUseCase) *AuthHandler {
	return NewAuthHandler(login, refresh, logout, current,
		config.CookieConfig{Path: "/", SameSite: "Lax"}, 7*24*time.Hour, testutil.NewMockLogger())
}

func cookieValue(header http.Header, name string) (string, bool) {
	for _, raw := range header.Values("Set-Cookie") {
		if strings.HasPrefix(raw, name+"=") {
			v, _, _ := strings.Cut(strings.TrimPrefix(raw, name+"="), ";")
			return v, true
		}
	}
	return "", false
}

func TestAuthHandler_Login_SetsCookies(t *testing.T) {
	loginUC := &mockLoginUC{result: &authUsecases.LoginResult{
		Tokens: &auth.TokenPair{AccessToken: "acc", RefreshToken: "ref", ExpiresIn: 1800},
		Staff:  &authUsecases.StaffDTO{ID: "u1", Username: "alice", Role: "admin"},
	}}
	handler := newTestAuthHandler(loginUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]string{"email": "alice@example.com", "password": "secret"})
	c.Request.Header.Set("User-Agent", "console-test")

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice@example.com", loginUC.cmd.Email)
	assert.Equal(t, "console-test", loginUC.cmd.UserAgent)

	access, ok := cookieValue(w.Header(), utils.AccessTokenCookie)
	require.True(t, ok)
	assert.Equal(t, "acc", access)
	refresh, ok := cookieValue(w.Header(), utils.RefreshTokenCookie)
	require.True(t, ok)
	assert.Equal(t, "ref", refresh)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "HttpOnly")
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := newTestAuthHandler(&mockLoginUC{}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]string{"email": "alice@example.com"})

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_Rejected(t *testing.T) {
	loginUC := &mockLoginUC{err: errors.NewUnauthorizedError("invalid email or password")}
	handler := newTestAuthHandler(loginUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]string{"email": "a@example.com", "password": "x"})

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	_, ok := cookieValue(w.Header(), utils.AccessTokenCookie)
	assert.False(t, ok)
}

func TestAuthHandler_RefreshToken_FromCookie(t *testing.T) {
	refreshUC := &mockRefreshTokenUC{result: &auth.TokenPair{AccessToken: "acc2", RefreshToken: "ref2", ExpiresIn: 1800}}
	handler := newTestAuthHandler(nil, refreshUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/refresh", nil)
	c.Request.AddCookie(&http.Cookie{Name: utils.RefreshTokenCookie, Value: "ref1"})

	handler.RefreshToken(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ref1", refreshUC.token)
	access, _ := cookieValue(w.Header(), utils.AccessTokenCookie)
	assert.Equal(t, "acc2", access)
}

func TestAuthHandler_RefreshToken_FromBody(t *testing.T) {
	refreshUC := &mockRefreshTokenUC{result: &auth.TokenPair{AccessToken: "a", RefreshToken: "r"}}
	handler := newTestAuthHandler(nil, refreshUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/refresh", map[string]string{"refresh_token": "body-token"})

	handler.RefreshToken(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body-token", refreshUC.token)
}

func TestAuthHandler_RefreshToken_FailureClearsCookies(t *testing.T) {
	refreshUC := &mockRefreshTokenUC{err: errors.NewUnauthorizedError("session expired")}
	handler := newTestAuthHandler(nil, refreshUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/refresh", nil)
	c.Request.AddCookie(&http.Cookie{Name: utils.RefreshTokenCookie, Value: "stale"})

	handler.RefreshToken(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	access, ok := cookieValue(w.Header(), utils.AccessTokenCookie)
	require.True(t, ok)
	assert.Empty(t, access)
}

func TestAuthHandler_Logout_AlwaysClearsCookies(t *testing.T) {
	logoutUC := &mockLogoutUC{err: errors.NewInternalError("redis down")}
	handler := newTestAuthHandler(nil, nil, logoutUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/logout", nil)
	testutil.SetAuthContext(c, "u1", "admin")

	handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test-session-id", logoutUC.sessionID)
	_, ok := cookieValue(w.Header(), utils.RefreshTokenCookie)
	assert.True(t, ok)
}

func TestAuthHandler_GetCurrentStaff(t *testing.T) {
	handler := newTestAuthHandler(nil, nil, nil, &mockGetCurrentStaffUC{
		result: &authUsecases.StaffDTO{ID: "u1", Username: "alice", Role: "moderator"},
	})

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/me", nil)
	testutil.SetAuthContext(c, "u1", "moderator")

	handler.GetCurrentStaff(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), `"username":"alice"`)
}

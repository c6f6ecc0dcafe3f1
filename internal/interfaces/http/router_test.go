package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/codearena/arena-admin/internal/infrastructure/config"
	"github.com/codearena/arena-admin/internal/infrastructure/migration"
	sharedConfig "github.com/codearena/arena-admin/internal/shared/config"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

type fakePlatform struct {
	server        *httptest.Server
	role          string
	languageCalls atomic.Int32
}

func newFakePlatform(t *testing.T, role string) *fakePlatform {
	t.Helper()
	fp := &fakePlatform{role: role}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, map[string]any{
			"access_token": "platform-token",
			"expires_in":   3600,
			"user": map[string]any{
				"id": "u-1", "username": "mod", "email": "mod@example.com", "role": fp.role,
			},
		})
	})
	mux.HandleFunc("GET /admin/languages", func(w http.ResponseWriter, r *http.Request) {
		fp.languageCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer platform-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeEnvelope(w, []map[string]any{
			{"id": "go", "name": "Go", "version": "1.24", "enabled": true, "display_order": 1},
		})
	})

	fp.server = httptest.NewServer(mux)
	t.Cleanup(fp.server.Close)
	return fp
}

func writeEnvelope(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func newTestRouter(t *testing.T, platformURL string) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, migration.NewGooseStrategy("sqlite", logger.NewNop()).Migrate(db))

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := &config.Config{
		Server:   sharedConfig.ServerConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Database: sharedConfig.DatabaseConfig{Driver: "sqlite"},
		Platform: sharedConfig.PlatformConfig{BaseURL: platformURL, TimeoutSeconds: 5, MirrorTTLSecs: 60},
		Auth: sharedConfig.AuthConfig{
			JWT:        sharedConfig.JWTConfig{Secret: "test-secret", AccessExpMinutes: 15, RefreshExpDays: 1},
			Cookie:     sharedConfig.CookieConfig{Path: "/", SameSite: "Lax"},
			LoginLimit: sharedConfig.LoginLimitConfig{Requests: 5, WindowSeconds: 60},
		},
	}

	r, err := NewRouter(db, client, cfg, "test", logger.NewNop())
	require.NoError(t, err)
	r.SetupRoutes()
	return r
}

func login(t *testing.T, r *Router) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"mod@example.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	r.GetEngine().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)
	return resp.Data.AccessToken
}

func serve(r *Router, method, path, token, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.GetEngine().ServeHTTP(w, req)
	return w
}

func TestRouter_Healthz(t *testing.T) {
	fp := newFakePlatform(t, "moderator")
	r := newTestRouter(t, fp.server.URL)

	w := serve(r, http.MethodGet, "/healthz", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"test"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_ModeratorSession(t *testing.T) {
	fp := newFakePlatform(t, "moderator")
	r := newTestRouter(t, fp.server.URL)
	token := login(t, r)

	t.Run("reads languages with the platform token", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/admin/languages", token, "")
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), `"name":"Go"`)
		assert.GreaterOrEqual(t, fp.languageCalls.Load(), int32(1))
	})

	t.Run("cannot create languages", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/api/admin/languages", token, `{"name":"Rust","version":"1.80","judge_id":"73"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("cannot read the audit log", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/admin/audit", token, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("me returns the staff member", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/auth/me", token, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"mod"`)
	})
}

func TestRouter_AdminReadsAuditLog(t *testing.T) {
	fp := newFakePlatform(t, "admin")
	r := newTestRouter(t, fp.server.URL)
	token := login(t, r)

	w := serve(r, http.MethodGet, "/api/admin/audit", token, "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "auth.login")
}

func TestRouter_RejectsNonStaff(t *testing.T) {
	fp := newFakePlatform(t, "user")
	r := newTestRouter(t, fp.server.URL)

	w := serve(r, http.MethodPost, "/auth/login", "", `{"email":"u@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_RequiresAuthentication(t *testing.T) {
	fp := newFakePlatform(t, "moderator")
	r := newTestRouter(t, fp.server.URL)

	w := serve(r, http.MethodGet, "/api/admin/dashboard", "", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, fp.languageCalls.Load())
}

func TestRouter_ExposesMetrics(t *testing.T) {
	fp := newFakePlatform(t, "moderator")
	r := newTestRouter(t, fp.server.URL)
	_ = serve(r, http.MethodGet, "/healthz", "", "")

	w := serve(r, http.MethodGet, "/metrics", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestRouter_ServesAPIDocsForEveryRoute(t *testing.T) {
	fp := newFakePlatform(t, "moderator")
	r := newTestRouter(t, fp.server.URL)

	w := serve(r, http.MethodGet, "/swagger/doc.json", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "arena-admin API", doc.Info.Title)

	for _, route := range r.GetEngine().Routes() {
		if !strings.HasPrefix(route.Path, "/api/") && !strings.HasPrefix(route.Path, "/auth/") {
			continue
		}
		path := route.Path
		for _, seg := range strings.Split(route.Path, "/") {
			if strings.HasPrefix(seg, ":") {
				path = strings.Replace(path, seg, "{"+seg[1:]+"}", 1)
			}
		}
		assert.Contains(t, doc.Paths[path], strings.ToLower(route.Method), "%s %s is undocumented", route.Method, route.Path)
	}
}

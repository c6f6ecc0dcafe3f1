package platform

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data}))
}

func TestClient_ListUsers_QueryAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/users", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "alice", r.URL.Query().Get("search"))
		assert.Equal(t, "admin", r.URL.Query().Get("role"))
		assert.Empty(t, r.URL.Query().Get("banned"))
		assert.Equal(t, "Bearer static-token", r.Header.Get("Authorization"))

		writeEnvelope(t, w, http.StatusOK, Page[User]{
			Items: []User{{ID: "u1", Username: "alice", Role: "admin"}},
			Total: 11,
			Page:  2,
			Limit: 10,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/", WithStaticToken("static-token"))
	page, err := c.ListUsers(context.Background(), ListParams{
		Page:    2,
		Limit:   10,
		Search:  "alice",
		Filters: map[string]string{"role": "admin", "banned": ""},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "alice", page.Items[0].Username)
}

func TestClient_ContextTokenOverridesSource(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		writeEnvelope(t, w, http.StatusOK, []ProgrammingLanguage{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithStaticToken("fallback"))
	ctx := ContextWithToken(context.Background(), "session-token")

	_, err := c.ListLanguages(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer session-token", got)
}

func TestClient_NoTokenSendsNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "staff@example.com", body["email"])
		writeEnvelope(t, w, http.StatusOK, LoginResult{AccessToken: "tok", User: User{ID: "1", Role: "admin"}})
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).Login(context.Background(), "staff@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", res.AccessToken)
	assert.Equal(t, "admin", res.User.Role)
}

func TestClient_ConflictError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"error":{"type":"conflict","message":"language has submissions"}}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).DeleteLanguage(context.Background(), "cpp")

	require.Error(t, err)
	assert.True(t, IsConflict(err))
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "languages.delete", apiErr.Op)
	assert.Equal(t, "language has submissions", apiErr.Message)
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetPlan(context.Background(), "p1")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream exploded", apiErr.Message)
	assert.False(t, IsNotFound(err))
}

func TestClient_UnsuccessfulEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"not allowed"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetPrompt(context.Background(), "p")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "not allowed", apiErr.Message)
}

func TestClient_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string][]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"go", "cpp", "py"}, body["ids"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).ReorderLanguages(context.Background(), []string{"go", "cpp", "py"})
	assert.NoError(t, err)
}

func TestClient_PathEscaping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/plans/a%2Fb/features/f%201", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).DeleteFeature(context.Background(), "a/b", "f 1")
	assert.NoError(t, err)
}

func TestClient_Observer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, VoteResult{Upvotes: 3, UserVote: 1})
	}))
	defer srv.Close()

	var (
		mu    sync.Mutex
		infos []RequestInfo
	)
	c := NewClient(srv.URL, WithObserver(func(info RequestInfo) {
		mu.Lock()
		defer mu.Unlock()
		infos = append(infos, info)
	}))

	res, err := c.VoteComment(context.Background(), "c1", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Upvotes)

	require.Len(t, infos, 1)
	assert.Equal(t, "comments.vote", infos[0].Op)
	assert.Equal(t, http.MethodPut, infos[0].Method)
	assert.Equal(t, http.StatusOK, infos[0].StatusCode)
	assert.NoError(t, infos[0].Err)
}

func TestClient_RateLimitHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, []AIPrompt{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithRateLimit(0.001, 1))
	_, err := c.ListPrompts(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.ListPrompts(ctx)
	assert.Error(t, err)
}

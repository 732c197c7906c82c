package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"traffic-lab/auth"
	"traffic-lab/domain"
	"traffic-lab/observability"
	"traffic-lab/repositories"
	"traffic-lab/runtime"
	"traffic-lab/services"
	"traffic-lab/transport"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	server *httptest.Server
	tokens *auth.TokenManager
	users  *repositories.UserRepository
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	users := repositories.NewUserRepository(db, log)
	posts := repositories.NewPostRepository(db, log)
	views := repositories.NewViewRepository(db, log)
	clicks := repositories.NewClickRepository(db, log)
	settings := repositories.NewSettingRepository(db, log)

	hub := transport.NewHub(log)
	config := runtime.NewConfigProvider(log, settings)
	registry := runtime.NewRegistry(log, config.WaveCount)
	distributor := runtime.NewDistributor(log, registry, config, runtime.NewTimerScheduler())
	quota := services.NewQuotaGovernor(log, users, runtime.NewKeyLock())

	handlers := NewHandlers(log,
		services.NewUserService(log, users),
		services.NewPostService(log, users, posts, views, distributor, hub),
		services.NewViewTracker(log, posts, views, hub),
		services.NewClickTracker(log, clicks, hub),
		services.NewReupService(log, users, posts, quota, distributor, registry, hub),
		services.NewSettingsService(log, users, settings, distributor, registry, hub),
		observability.NewMonitoringManager(log),
	)
	tokens := auth.NewTokenManager("secret", time.Hour)
	server := httptest.NewServer(NewRouter(handlers, tokens, http.NotFoundHandler()))
	t.Cleanup(server.Close)
	return testServer{server: server, tokens: tokens, users: users}
}

func (s testServer) token(t *testing.T, userID string) string {
	t.Helper()
	token, err := s.tokens.GenerateToken(userID, userID+"@mail.test", "")
	require.NoError(t, err)
	return token
}

func (s testServer) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	r, err := http.NewRequest(method, s.server.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(r)
	require.NoError(t, err)
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, payload
}

func TestAPI_Health_And_Metrics_Are_Public(t *testing.T) {
	req := require.New(t)
	s := newTestServer(t)

	status, body := s.do(t, http.MethodGet, "/health", "", nil)
	req.Equal(http.StatusOK, status)
	req.Contains(string(body), `"status":"starting"`)

	status, _ = s.do(t, http.MethodGet, "/metrics", "", nil)
	req.Equal(http.StatusOK, status)
}

func TestAPI_Requires_Token(t *testing.T) {
	req := require.New(t)
	s := newTestServer(t)

	status, body := s.do(t, http.MethodGet, "/api/auth/me", "", nil)
	req.Equal(http.StatusUnauthorized, status)
	req.JSONEq(`{"message":"unauthorized"}`, string(body))

	status, _ = s.do(t, http.MethodGet, "/api/auth/me", "garbage", nil)
	req.Equal(http.StatusUnauthorized, status)
}

func TestAPI_Sync_Then_Me(t *testing.T) {
	req := require.New(t)
	s := newTestServer(t)
	token := s.token(t, "alice")

	status, _ := s.do(t, http.MethodGet, "/api/auth/me", token, nil)
	req.Equal(http.StatusNotFound, status)

	status, _ = s.do(t, http.MethodPost, "/api/auth/sync", token, nil)
	req.Equal(http.StatusCreated, status)
	status, _ = s.do(t, http.MethodPost, "/api/auth/sync", token, nil)
	req.Equal(http.StatusOK, status)

	status, body := s.do(t, http.MethodGet, "/api/auth/me", token, nil)
	req.Equal(http.StatusOK, status)
	var me domain.User
	req.NoError(json.Unmarshal(body, &me))
	req.Equal("alice", me.ID)
	req.Equal(domain.DefaultPoints, me.Points)
}

func TestAPI_Post_And_View_Flow(t *testing.T) {
	req := require.New(t)
	s := newTestServer(t)
	author := s.token(t, "author")
	viewer := s.token(t, "viewer")
	s.do(t, http.MethodPost, "/api/auth/sync", author, nil)
	s.do(t, http.MethodPost, "/api/auth/sync", viewer, nil)

	// Given a post with an invalid content
	status, body := s.do(t, http.MethodPost, "/api/posts", author, map[string]any{
		"title": "Shoes", "content": "no format",
	})
	req.Equal(http.StatusBadRequest, status)
	req.Contains(string(body), "invalid content format")

	// When the post is valid
	status, body = s.do(t, http.MethodPost, "/api/posts", author, map[string]any{
		"title": "Shoes", "content": "https://shop.example### shoes!!!",
	})
	req.Equal(http.StatusCreated, status)
	var post domain.Post
	req.NoError(json.Unmarshal(body, &post))

	// Then a viewer can open and close a session on it
	status, body = s.do(t, http.MethodPost, "/api/views/start", viewer, map[string]any{
		"postId": post.ID, "link": "https://shop.example",
	})
	req.Equal(http.StatusCreated, status)
	var started map[string]string
	req.NoError(json.Unmarshal(body, &started))
	req.NotEmpty(started["viewId"])

	status, _ = s.do(t, http.MethodPost, "/api/views/end", author, map[string]any{
		"viewId": started["viewId"], "postId": post.ID,
	})
	req.Equal(http.StatusForbidden, status)

	status, body = s.do(t, http.MethodPost, "/api/views/end", viewer, map[string]any{
		"viewId": started["viewId"], "postId": post.ID,
	})
	req.Equal(http.StatusOK, status)
	req.JSONEq(`{"success":true,"pointsEarned":0}`, string(body))

	status, body = s.do(t, http.MethodGet, "/api/posts/"+post.ID+"/views", author, nil)
	req.Equal(http.StatusOK, status)
	var views services.PostViews
	req.NoError(json.Unmarshal(body, &views))
	req.Equal(1, views.Total)

	status, _ = s.do(t, http.MethodPatch, "/api/posts/"+post.ID+"/auto-reup", viewer, map[string]any{"enabled": false})
	req.Equal(http.StatusForbidden, status)

	status, body = s.do(t, http.MethodGet, "/api/posts", author, nil)
	req.Equal(http.StatusOK, status)
	var owned []domain.Post
	req.NoError(json.Unmarshal(body, &owned))
	req.Len(owned, 1)
	req.Equal(1, owned[0].CurrentView)
}

func TestAPI_Reup_Settings(t *testing.T) {
	req := require.New(t)
	s := newTestServer(t)
	token := s.token(t, "alice")
	s.do(t, http.MethodPost, "/api/auth/sync", token, nil)

	status, body := s.do(t, http.MethodPut, "/api/reup-settings", token, map[string]any{"mode": "specific"})
	req.Equal(http.StatusBadRequest, status)
	req.Contains(string(body), "specificPostIds")

	status, _ = s.do(t, http.MethodPut, "/api/reup-settings", token, map[string]any{"mode": "one-user"})
	req.Equal(http.StatusOK, status)

	status, body = s.do(t, http.MethodGet, "/api/reup-settings", token, nil)
	req.Equal(http.StatusOK, status)
	req.JSONEq(`{"mode":"one-user","specificPostIds":[]}`, string(body))
}

func TestAPI_Admin_Routes(t *testing.T) {
	req := require.New(t)
	s := newTestServer(t)
	user := s.token(t, "user")
	admin := s.token(t, "admin")
	s.do(t, http.MethodPost, "/api/auth/sync", user, nil)
	req.NoError(s.users.SaveUser(domain.User{ID: "admin", Role: domain.RoleAdmin, Points: 1}))

	for _, path := range []string{"/api/admin/settings", "/api/admin/distribution", "/api/admin/users", "/api/click-history"} {
		status, _ := s.do(t, http.MethodGet, path, user, nil)
		req.Equal(http.StatusForbidden, status, path)
	}

	// When an admin changes the distribution setting
	status, _ := s.do(t, http.MethodPut, "/api/admin/settings", admin, map[string]any{
		"key": "postDistribution", "value": map[string]any{"enabled": true, "waveCount": 4, "waveDelayMs": 100},
	})
	req.Equal(http.StatusOK, status)

	// Then the live distribution reports it
	status, body := s.do(t, http.MethodGet, "/api/admin/distribution", admin, nil)
	req.Equal(http.StatusOK, status)
	var overview services.DistributionOverview
	req.NoError(json.Unmarshal(body, &overview))
	req.Equal(4, overview.WaveCount)
	req.Equal(int64(100), overview.WaveDelayMs)

	status, body = s.do(t, http.MethodPut, "/api/admin/users/user", admin, map[string]any{"role": "MANAGER"})
	req.Equal(http.StatusOK, status)
	req.Contains(string(body), `"role":"MANAGER"`)

	status, body = s.do(t, http.MethodGet, "/api/admin/users?limit=1", admin, nil)
	req.Equal(http.StatusOK, status)
	var page services.UsersPage
	req.NoError(json.Unmarshal(body, &page))
	req.Equal(2, page.Total)
	req.Equal(2, page.TotalPages)
	req.Len(page.Users, 1)
}

func TestAPI_Extension_Release(t *testing.T) {
	req := require.New(t)
	s := newTestServer(t)
	admin := s.token(t, "admin")
	req.NoError(s.users.SaveUser(domain.User{ID: "admin", Role: domain.RoleAdmin, Points: 1}))

	status, body := s.do(t, http.MethodGet, "/api/extension/latest", admin, nil)
	req.Equal(http.StatusOK, status)
	req.JSONEq(`null`, string(body))

	status, _ = s.do(t, http.MethodPost, "/api/extension/releases", admin, map[string]any{"version": "2.0.0"})
	req.Equal(http.StatusCreated, status)
	status, _ = s.do(t, http.MethodPost, "/api/extension/releases", admin, map[string]any{"version": "2.0.0"})
	req.Equal(http.StatusBadRequest, status)

	status, body = s.do(t, http.MethodGet, "/api/extension/latest", admin, nil)
	req.Equal(http.StatusOK, status)
	req.Contains(string(body), `"version":"2.0.0"`)
}

func TestAPI_Malformed_Body(t *testing.T) {
	req := require.New(t)
	s := newTestServer(t)
	token := s.token(t, "alice")

	r, err := http.NewRequest(http.MethodPost, s.server.URL+"/api/views/start", bytes.NewBufferString("{"))
	req.NoError(err)
	r.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(r)
	req.NoError(err)
	defer resp.Body.Close()

	req.Equal(http.StatusBadRequest, resp.StatusCode)
}

package api

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"traffic-lab/auth"
	"traffic-lab/domain"
	"traffic-lab/errors"
	"traffic-lab/observability"
	"traffic-lab/services"

	"github.com/gorilla/mux"
)

type Handlers struct {
	log        *slog.Logger
	users      services.IUserService
	posts      services.IPostService
	views      services.IViewTracker
	clicks     services.IClickTracker
	reup       services.IReupService
	settings   services.ISettingsService
	monitoring *observability.MonitoringManager
	writeError func(w http.ResponseWriter, err error)
}

func NewHandlers(log *slog.Logger, users services.IUserService, posts services.IPostService,
	views services.IViewTracker, clicks services.IClickTracker, reup services.IReupService,
	settings services.ISettingsService, monitoring *observability.MonitoringManager) *Handlers {
	log = log.With("component", "http")
	return &Handlers{
		log:        log,
		users:      users,
		posts:      posts,
		views:      views,
		clicks:     clicks,
		reup:       reup,
		settings:   settings,
		monitoring: monitoring,
		writeError: errorWriter(log),
	}
}

// Health answers 503 while the last process sample failed.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	stats := h.monitoring.GetLatest()
	status := http.StatusOK
	if stats.Status == observability.StatusDegraded {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, stats)
}

// Sync mirrors the token identity into the store, 201 on first sight.
func (h *Handlers) Sync(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFrom(r.Context())
	user, created, err := h.users.Sync(r.Context(), services.SyncRequest{
		UserID:      claims.UserID,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, user)
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Me(r.Context(), auth.UserIDFrom(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type startViewRequest struct {
	PostID string `json:"postId"`
	Link   string `json:"link"`
}

func (h *Handlers) StartView(w http.ResponseWriter, r *http.Request) {
	var body startViewRequest
	if err := decode(r, &body); err != nil {
		h.writeError(w, err)
		return
	}
	view, err := h.views.Start(r.Context(), auth.UserIDFrom(r.Context()), body.PostID, body.Link)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"viewId": view.ID})
}

type endViewRequest struct {
	ViewID string `json:"viewId"`
	PostID string `json:"postId"`
}

func (h *Handlers) EndView(w http.ResponseWriter, r *http.Request) {
	var body endViewRequest
	if err := decode(r, &body); err != nil {
		h.writeError(w, err)
		return
	}
	points, err := h.views.End(r.Context(), auth.UserIDFrom(r.Context()), body.ViewID, body.PostID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "pointsEarned": points})
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var body services.CreatePostRequest
	if err := decode(r, &body); err != nil {
		h.writeError(w, err)
		return
	}
	body.AuthorID = auth.UserIDFrom(r.Context())
	post, err := h.posts.CreatePost(r.Context(), body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListUserPosts(r.Context(), auth.UserIDFrom(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *Handlers) ListPostViews(w http.ResponseWriter, r *http.Request) {
	views, err := h.posts.ListViews(r.Context(), mux.Vars(r)["id"],
		queryInt(r, "skip", 0), queryInt(r, "limit", services.DefaultViewPageSize))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

type autoReupRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *Handlers) SetAutoReup(w http.ResponseWriter, r *http.Request) {
	var body autoReupRequest
	if err := decode(r, &body); err != nil {
		h.writeError(w, err)
		return
	}
	post, err := h.reup.SetAutoReup(r.Context(), auth.UserIDFrom(r.Context()), mux.Vars(r)["id"], body.Enabled)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *Handlers) GetReupSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.GetReupSettings(r.Context(), auth.UserIDFrom(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handlers) PutReupSettings(w http.ResponseWriter, r *http.Request) {
	var body domain.ReupSettings
	if err := decode(r, &body); err != nil {
		h.writeError(w, err)
		return
	}
	settings, err := h.settings.PutReupSettings(r.Context(), auth.UserIDFrom(r.Context()), body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Reup settings updated successfully",
		"settings": settings,
	})
}

func (h *Handlers) StartClick(w http.ResponseWriter, r *http.Request) {
	var body services.StartClickRequest
	if err := decode(r, &body); err != nil {
		h.writeError(w, err)
		return
	}
	body.ViewerID = auth.UserIDFrom(r.Context())
	click, err := h.clicks.StartClick(r.Context(), body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"clickId": click.ID})
}

type endClickRequest struct {
	ClickID string `json:"clickId"`
}

func (h *Handlers) EndClick(w http.ResponseWriter, r *http.Request) {
	var body endClickRequest
	if err := decode(r, &body); err != nil {
		h.writeError(w, err)
		return
	}
	points, err := h.clicks.EndClick(r.Context(), body.ClickID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "points": points})
}

func (h *Handlers) ListClicks(w http.ResponseWriter, r *http.Request) {
	page, err := h.clicks.ListClicks(r.Context(),
		queryInt(r, "page", 1), queryInt(r, "limit", services.DefaultClickPageSize))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.GetAllSettings(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handlers) PutSetting(w http.ResponseWriter, r *http.Request) {
	var body services.PutSettingRequest
	if err := decode(r, &body); err != nil {
		h.writeError(w, err)
		return
	}
	setting, err := h.settings.PutSetting(r.Context(), body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

func (h *Handlers) Distribution(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.settings.Distribution(r.Context()))
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.users.ListUsers(r.Context(),
		queryInt(r, "page", 1), queryInt(r, "limit", services.DefaultUserPageSize))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var body services.UpdateUserRequest
	if err := decode(r, &body); err != nil {
		h.writeError(w, err)
		return
	}
	user, err := h.users.UpdateUser(r.Context(), mux.Vars(r)["userId"], body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handlers) AnnounceRelease(w http.ResponseWriter, r *http.Request) {
	var body services.ReleaseRequest
	if err := decode(r, &body); err != nil {
		h.writeError(w, err)
		return
	}
	body.UploadedBy = auth.UserIDFrom(r.Context())
	release, err := h.settings.AnnounceRelease(r.Context(), body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":   "Extension release announced",
		"extension": release,
	})
}

// LatestRelease answers null when nothing was ever announced.
func (h *Handlers) LatestRelease(w http.ResponseWriter, r *http.Request) {
	release, err := h.settings.LatestRelease(r.Context())
	if stderrors.Is(err, errors.ErrReleaseNotFound) {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, release)
}

// requireAdmin guards admin routes with the stored role of the caller.
func (h *Handlers) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h.users.RequireAdmin(r.Context(), auth.UserIDFrom(r.Context())); err != nil {
			h.writeError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

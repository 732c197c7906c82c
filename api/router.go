package api

import (
	"net/http"

	"traffic-lab/auth"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every HTTP route. The websocket endpoint shares the token check of /api.
func NewRouter(h *Handlers, tokens *auth.TokenManager, ws http.Handler) *mux.Router {
	r := mux.NewRouter()
	authenticated := auth.Middleware(tokens, h.writeError)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.Handle("/ws", authenticated(ws))

	api := r.PathPrefix("/api").Subrouter()
	api.Use(authenticated)

	api.HandleFunc("/auth/sync", h.Sync).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)

	api.HandleFunc("/views/start", h.StartView).Methods(http.MethodPost)
	api.HandleFunc("/views/end", h.EndView).Methods(http.MethodPost)

	api.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts", h.ListPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}/views", h.ListPostViews).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}/auto-reup", h.SetAutoReup).Methods(http.MethodPatch)

	api.HandleFunc("/reup-settings", h.GetReupSettings).Methods(http.MethodGet)
	api.HandleFunc("/reup-settings", h.PutReupSettings).Methods(http.MethodPut)

	api.HandleFunc("/click-history/start", h.StartClick).Methods(http.MethodPost)
	api.HandleFunc("/click-history/end", h.EndClick).Methods(http.MethodPost)
	api.Handle("/click-history", h.requireAdmin(http.HandlerFunc(h.ListClicks))).Methods(http.MethodGet)

	api.HandleFunc("/extension/latest", h.LatestRelease).Methods(http.MethodGet)
	api.Handle("/extension/releases", h.requireAdmin(http.HandlerFunc(h.AnnounceRelease))).Methods(http.MethodPost)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(h.requireAdmin)
	admin.HandleFunc("/settings", h.GetSettings).Methods(http.MethodGet)
	admin.HandleFunc("/settings", h.PutSetting).Methods(http.MethodPut)
	admin.HandleFunc("/distribution", h.Distribution).Methods(http.MethodGet)
	admin.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userId}", h.UpdateUser).Methods(http.MethodPut)

	return r
}

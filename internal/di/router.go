package di

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"viztube/internal/common"
)

type routeRegistrar interface {
	RegisterRoutes(r *mux.Router, auth *common.Authenticator)
}

// NewRouter mounts the API under /api/v2, Prometheus on /metrics and, with
// the document backend, the media file routes at the root.
func NewRouter(api *API, corsOrigin string) *mux.Router {
	router := mux.NewRouter()
	router.Use(common.RequestID, common.AccessLog, common.CORS(corsOrigin))

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	v2 := router.PathPrefix("/api/v2").Subrouter()
	api.Health.RegisterRoutes(v2)

	registrars := []routeRegistrar{
		api.Users, api.Videos, api.Comments, api.Tweets, api.Likes,
		api.Subscriptions, api.Playlists, api.Dashboard,
	}
	if api.Media != nil {
		registrars = append(registrars, api.Media)
		api.Media.RegisterFileRoutes(router)
	}
	for _, reg := range registrars {
		reg.RegisterRoutes(v2, api.Auth)
	}

	// preflight requests carry no route-specific method, so give them a
	// match for the CORS middleware to answer
	router.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return router
}

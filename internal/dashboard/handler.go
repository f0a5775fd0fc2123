package dashboard

import (
	"net/http"

	"github.com/gorilla/mux"

	"viztube/internal/common"
)

type Handler struct {
	dashboardService *DashboardService
	rs               *common.Responder
}

func NewHandler(dashboardService *DashboardService, rs *common.Responder) *Handler {
	return &Handler{dashboardService: dashboardService, rs: rs}
}

func (h *Handler) RegisterRoutes(r *mux.Router, auth *common.Authenticator) {
	d := r.PathPrefix("/dashboard").Subrouter()
	d.Handle("/stats", auth.Wrap(h.Stats)).Methods(http.MethodGet)
	d.Handle("/videos", auth.Wrap(h.Videos)).Methods(http.MethodGet)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	stats, err := h.dashboardService.Stats(r.Context(), viewer.ID)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, stats, "Channel stats fetched successfully")
}

func (h *Handler) Videos(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	q := r.URL.Query()
	videos, err := h.dashboardService.Videos(r.Context(), viewer.ID, VideoParams{
		Query:    q.Get("query"),
		SortBy:   q.Get("sortBy"),
		SortType: q.Get("sortType"),
		Page:     q.Get("page"),
		Limit:    q.Get("limit"),
	})
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, videos, "Channel videos fetched successfully")
}

package healthcheck

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"viztube/internal/common"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Status struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	Time    string `json:"time"`
}

type Handler struct {
	store   Pinger
	backend string
	rs      *common.Responder
}

func NewHandler(store Pinger, backend string, rs *common.Responder) *Handler {
	return &Handler{store: store, backend: backend, rs: rs}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/healthcheck", h.Check).Methods(http.MethodGet)
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	st := Status{Status: "ok", Backend: h.backend, Time: time.Now().UTC().Format(time.RFC3339)}
	if err := h.store.Ping(ctx); err != nil {
		st.Status = "unavailable"
		h.rs.JSON(w, r, http.StatusServiceUnavailable, st, "Store is unreachable")
		return
	}
	h.rs.JSON(w, r, http.StatusOK, st, "OK")
}

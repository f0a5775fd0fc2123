package subscription

import (
	"net/http"

	"github.com/gorilla/mux"

	"viztube/internal/common"
)

type Handler struct {
	subscriptionService *SubscriptionService
	rs                  *common.Responder
}

func NewHandler(subscriptionService *SubscriptionService, rs *common.Responder) *Handler {
	return &Handler{subscriptionService: subscriptionService, rs: rs}
}

func (h *Handler) RegisterRoutes(r *mux.Router, auth *common.Authenticator) {
	subs := r.PathPrefix("/subscriptions").Subrouter()
	subs.Handle("/c/{channelId}", auth.Wrap(h.Toggle)).Methods(http.MethodPost)
	subs.HandleFunc("/c/{channelId}", h.Subscribers).Methods(http.MethodGet)
	subs.HandleFunc("/u/{subscriberId}", h.SubscribedChannels).Methods(http.MethodGet)
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	res, err := h.subscriptionService.Toggle(r.Context(), viewer.ID, common.PathParam(r, "channelId"))
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	msg := "Unsubscribed successfully"
	if res.IsSubscribed {
		msg = "Subscribed successfully"
	}
	h.rs.JSON(w, r, http.StatusOK, res, msg)
}

func (h *Handler) Subscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subscriptionService.Subscribers(r.Context(), common.PathParam(r, "channelId"))
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, subs, "Subscribers fetched successfully")
}

func (h *Handler) SubscribedChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.subscriptionService.SubscribedChannels(r.Context(), common.PathParam(r, "subscriberId"))
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, channels, "Subscribed channels fetched successfully")
}

package tweet

import (
	"net/http"

	"github.com/gorilla/mux"

	"viztube/internal/common"
)

type Handler struct {
	tweetService *TweetService
	rs           *common.Responder
}

func NewHandler(tweetService *TweetService, rs *common.Responder) *Handler {
	return &Handler{tweetService: tweetService, rs: rs}
}

func (h *Handler) RegisterRoutes(r *mux.Router, auth *common.Authenticator) {
	tweets := r.PathPrefix("/tweets").Subrouter()
	tweets.Handle("", auth.Wrap(h.CreateTweet)).Methods(http.MethodPost)
	tweets.HandleFunc("/user/{userId}", h.UserTweets).Methods(http.MethodGet)
	tweets.Handle("/{tweetId}", auth.Wrap(h.UpdateTweet)).Methods(http.MethodPatch)
	tweets.Handle("/{tweetId}", auth.Wrap(h.DeleteTweet)).Methods(http.MethodDelete)
}

func (h *Handler) CreateTweet(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	var in ContentInput
	if err := common.DecodeJSON(r, &in); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	t, err := h.tweetService.CreateTweet(r.Context(), viewer.ID, in)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusCreated, t, "Tweet created successfully")
}

func (h *Handler) UserTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.tweetService.UserTweets(r.Context(), common.PathParam(r, "userId"))
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, tweets, "Tweets fetched successfully")
}

func (h *Handler) UpdateTweet(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	var in ContentInput
	if err := common.DecodeJSON(r, &in); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	t, err := h.tweetService.UpdateTweet(r.Context(), viewer.ID, common.PathParam(r, "tweetId"), in)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, t, "Tweet updated successfully")
}

func (h *Handler) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	if err := h.tweetService.DeleteTweet(r.Context(), viewer.ID, common.PathParam(r, "tweetId")); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, map[string]interface{}{}, "Tweet deleted successfully")
}

package like

import (
	"net/http"

	"github.com/gorilla/mux"

	"viztube/internal/common"
	"viztube/internal/domain"
)

type Handler struct {
	likeService *LikeService
	rs          *common.Responder
}

func NewHandler(likeService *LikeService, rs *common.Responder) *Handler {
	return &Handler{likeService: likeService, rs: rs}
}

func (h *Handler) RegisterRoutes(r *mux.Router, auth *common.Authenticator) {
	likes := r.PathPrefix("/likes").Subrouter()
	likes.Handle("/toggle/v/{videoId}", auth.Wrap(h.toggle(domain.LikeVideo, "videoId"))).Methods(http.MethodPost)
	likes.Handle("/toggle/c/{commentId}", auth.Wrap(h.toggle(domain.LikeComment, "commentId"))).Methods(http.MethodPost)
	likes.Handle("/toggle/t/{tweetId}", auth.Wrap(h.toggle(domain.LikeTweet, "tweetId"))).Methods(http.MethodPost)
	likes.Handle("/videos", auth.Wrap(h.LikedVideos)).Methods(http.MethodGet)
}

func (h *Handler) toggle(kind domain.LikeKind, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := common.MustViewer(r.Context())
		if err != nil {
			h.rs.Error(w, r, err)
			return
		}
		res, err := h.likeService.Toggle(r.Context(), viewer.ID, kind, common.PathParam(r, param))
		if err != nil {
			h.rs.Error(w, r, err)
			return
		}
		msg := "Like removed"
		if res.IsLiked {
			msg = "Liked successfully"
		}
		h.rs.JSON(w, r, http.StatusOK, res, msg)
	}
}

func (h *Handler) LikedVideos(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	videos, err := h.likeService.LikedVideos(r.Context(), viewer.ID)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, videos, "Liked videos fetched successfully")
}

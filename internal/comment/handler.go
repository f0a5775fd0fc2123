package comment

import (
	"net/http"

	"github.com/gorilla/mux"

	"viztube/internal/common"
)

type Handler struct {
	commentService *CommentService
	rs             *common.Responder
}

func NewHandler(commentService *CommentService, rs *common.Responder) *Handler {
	return &Handler{commentService: commentService, rs: rs}
}

func (h *Handler) RegisterRoutes(r *mux.Router, auth *common.Authenticator) {
	comments := r.PathPrefix("/comments").Subrouter()
	comments.Handle("/c/{commentId}", auth.Wrap(h.UpdateComment)).Methods(http.MethodPatch)
	comments.Handle("/c/{commentId}", auth.Wrap(h.DeleteComment)).Methods(http.MethodDelete)
	comments.HandleFunc("/{videoId}", h.ListComments).Methods(http.MethodGet)
	comments.Handle("/{videoId}", auth.Wrap(h.AddComment)).Methods(http.MethodPost)
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.commentService.ListComments(r.Context(), common.PathParam(r, "videoId"), q.Get("page"), q.Get("limit"))
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, page, "Comments fetched successfully")
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
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
	c, err := h.commentService.AddComment(r.Context(), viewer.ID, common.PathParam(r, "videoId"), in)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusCreated, c, "Comment added successfully")
}

func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
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
	c, err := h.commentService.UpdateComment(r.Context(), viewer.ID, common.PathParam(r, "commentId"), in)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, c, "Comment updated successfully")
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	if err := h.commentService.DeleteComment(r.Context(), viewer.ID, common.PathParam(r, "commentId")); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, map[string]interface{}{}, "Comment deleted successfully")
}

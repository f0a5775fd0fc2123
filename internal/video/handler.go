package video

import (
	"net/http"

	"github.com/gorilla/mux"

	"viztube/internal/common"
)

type Handler struct {
	videoService *VideoService
	rs           *common.Responder
}

func NewHandler(videoService *VideoService, rs *common.Responder) *Handler {
	return &Handler{videoService: videoService, rs: rs}
}

func (h *Handler) RegisterRoutes(r *mux.Router, auth *common.Authenticator) {
	videos := r.PathPrefix("/videos").Subrouter()
	videos.HandleFunc("", h.ListVideos).Methods(http.MethodGet)
	videos.Handle("", auth.Wrap(h.PublishVideo)).Methods(http.MethodPost)
	videos.Handle("/toggle/publish/{videoId}", auth.Wrap(h.TogglePublish)).Methods(http.MethodPatch)
	videos.Handle("/{videoId}", auth.Maybe(h.GetVideo)).Methods(http.MethodGet)
	videos.Handle("/{videoId}", auth.Wrap(h.UpdateVideo)).Methods(http.MethodPatch)
	videos.Handle("/{videoId}", auth.Wrap(h.DeleteVideo)).Methods(http.MethodDelete)
}

func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.videoService.ListVideos(r.Context(), ListParams{
		Query:    q.Get("query"),
		SortBy:   q.Get("sortBy"),
		SortType: q.Get("sortType"),
		UserID:   q.Get("userId"),
		Page:     q.Get("page"),
		Limit:    q.Get("limit"),
	})
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, page, "Videos fetched successfully")
}

func (h *Handler) PublishVideo(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	var in PublishInput
	if err := common.DecodeJSON(r, &in); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	v, err := h.videoService.Publish(r.Context(), viewer.ID, in)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusCreated, v, "Video published successfully")
}

func (h *Handler) GetVideo(w http.ResponseWriter, r *http.Request) {
	var viewer *common.Viewer
	if v, ok := common.ViewerFrom(r.Context()); ok {
		viewer = &v
	}
	v, err := h.videoService.GetVideo(r.Context(), common.PathParam(r, "videoId"), viewer)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, v, "Video fetched successfully")
}

func (h *Handler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	var in UpdateInput
	if err := common.DecodeJSON(r, &in); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	v, err := h.videoService.UpdateVideo(r.Context(), viewer.ID, common.PathParam(r, "videoId"), in)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, v, "Video updated successfully")
}

func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	if err := h.videoService.DeleteVideo(r.Context(), viewer.ID, common.PathParam(r, "videoId")); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, map[string]interface{}{}, "Video deleted successfully")
}

func (h *Handler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	v, err := h.videoService.TogglePublish(r.Context(), viewer.ID, common.PathParam(r, "videoId"))
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, v, "Publish status toggled successfully")
}

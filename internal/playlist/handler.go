package playlist

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"viztube/internal/common"
	"viztube/internal/domain"
)

type Handler struct {
	playlistService *PlaylistService
	rs              *common.Responder
}

func NewHandler(playlistService *PlaylistService, rs *common.Responder) *Handler {
	return &Handler{playlistService: playlistService, rs: rs}
}

func (h *Handler) RegisterRoutes(r *mux.Router, auth *common.Authenticator) {
	pl := r.PathPrefix("/playlist").Subrouter()
	pl.Handle("", auth.Wrap(h.CreatePlaylist)).Methods(http.MethodPost)
	pl.HandleFunc("/user/{userId}", h.UserPlaylists).Methods(http.MethodGet)
	pl.HandleFunc("/{playlistId}", h.GetPlaylist).Methods(http.MethodGet)
	pl.Handle("/{playlistId}", auth.Wrap(h.UpdatePlaylist)).Methods(http.MethodPatch)
	pl.Handle("/{playlistId}", auth.Wrap(h.DeletePlaylist)).Methods(http.MethodDelete)
	pl.Handle("/{playlistId}/{videoId}", auth.Wrap(h.AddVideo)).Methods(http.MethodPost)
	pl.Handle("/{playlistId}/{videoId}", auth.Wrap(h.RemoveVideo)).Methods(http.MethodDelete)
}

func (h *Handler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	var in PlaylistInput
	if err := common.DecodeJSON(r, &in); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	p, err := h.playlistService.CreatePlaylist(r.Context(), viewer.ID, in)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusCreated, p, "Playlist created successfully")
}

func (h *Handler) UserPlaylists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.playlistService.UserPlaylists(r.Context(), common.PathParam(r, "userId"))
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, lists, "Playlists fetched successfully")
}

func (h *Handler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	p, err := h.playlistService.GetPlaylist(r.Context(), common.PathParam(r, "playlistId"))
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, p, "Playlist fetched successfully")
}

func (h *Handler) AddVideo(w http.ResponseWriter, r *http.Request) {
	h.member(w, r, h.playlistService.AddVideo, "Video added to playlist")
}

func (h *Handler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	h.member(w, r, h.playlistService.RemoveVideo, "Video removed from playlist")
}

type memberOp func(ctx context.Context, viewerID, rawPlaylistID, rawVideoID string) (domain.PlaylistDetail, error)

func (h *Handler) member(w http.ResponseWriter, r *http.Request, op memberOp, msg string) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	p, err := op(r.Context(), viewer.ID, common.PathParam(r, "playlistId"), common.PathParam(r, "videoId"))
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, p, msg)
}

func (h *Handler) UpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	var in PlaylistInput
	if err := common.DecodeJSON(r, &in); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	p, err := h.playlistService.UpdatePlaylist(r.Context(), viewer.ID, common.PathParam(r, "playlistId"), in)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, p, "Playlist updated successfully")
}

func (h *Handler) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	if err := h.playlistService.DeletePlaylist(r.Context(), viewer.ID, common.PathParam(r, "playlistId")); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, map[string]interface{}{}, "Playlist deleted successfully")
}

package user

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"viztube/internal/common"
	"viztube/internal/domain"
)

// Handler exposes the user service under /users.
type Handler struct {
	userService *UserService
	rs          *common.Responder
}

func NewHandler(userService *UserService, rs *common.Responder) *Handler {
	return &Handler{userService: userService, rs: rs}
}

func (h *Handler) RegisterRoutes(r *mux.Router, auth *common.Authenticator) {
	users := r.PathPrefix("/users").Subrouter()
	users.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	users.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	users.HandleFunc("/refresh-token", h.RefreshToken).Methods(http.MethodPost)
	users.Handle("/logout", auth.Wrap(h.Logout)).Methods(http.MethodPost)
	users.Handle("/change-password", auth.Wrap(h.ChangePassword)).Methods(http.MethodPost)
	users.Handle("/current-user", auth.Wrap(h.CurrentUser)).Methods(http.MethodGet)
	users.Handle("/update-account", auth.Wrap(h.UpdateAccount)).Methods(http.MethodPatch)
	users.Handle("/avatar", auth.Wrap(h.UpdateAvatar)).Methods(http.MethodPatch)
	users.Handle("/cover-image", auth.Wrap(h.UpdateCoverImage)).Methods(http.MethodPatch)
	users.Handle("/c/{username}", auth.Maybe(h.ChannelProfile)).Methods(http.MethodGet)
	users.Handle("/history", auth.Wrap(h.WatchHistory)).Methods(http.MethodGet)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in RegisterInput
	if err := common.DecodeJSON(r, &in); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	u, err := h.userService.Register(r.Context(), in)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusCreated, u, "User registered successfully")
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in LoginInput
	if err := common.DecodeJSON(r, &in); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	res, err := h.userService.Login(r.Context(), in)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	setAuthCookies(w, res.AccessToken, res.RefreshToken)
	h.rs.JSON(w, r, http.StatusOK, res, "User logged in successfully")
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	if err := h.userService.Logout(r.Context(), viewer.ID); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	clearAuthCookies(w)
	h.rs.JSON(w, r, http.StatusOK, map[string]interface{}{}, "User logged out")
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	incoming := ""
	if c, err := r.Cookie("refreshToken"); err == nil {
		incoming = c.Value
	}
	if incoming == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := common.DecodeJSON(r, &body); err != nil {
			h.rs.Error(w, r, err)
			return
		}
		incoming = body.RefreshToken
	}

	res, err := h.userService.Refresh(r.Context(), incoming)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	setAuthCookies(w, res.AccessToken, res.RefreshToken)
	h.rs.JSON(w, r, http.StatusOK, map[string]string{
		"accessToken":  res.AccessToken,
		"refreshToken": res.RefreshToken,
	}, "Access token refreshed")
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	var in ChangePasswordInput
	if err := common.DecodeJSON(r, &in); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	if err := h.userService.ChangePassword(r.Context(), viewer.ID, in); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, map[string]interface{}{}, "Password changed successfully")
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	u, err := h.userService.CurrentUser(r.Context(), viewer.ID)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, u, "User fetched successfully")
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	var in UpdateAccountInput
	if err := common.DecodeJSON(r, &in); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	u, err := h.userService.UpdateAccount(r.Context(), viewer.ID, in)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, u, "Account details updated successfully")
}

type mediaBody struct {
	URL string `json:"url" validate:"nonblank"`
}

func (h *Handler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	h.updateMedia(w, r, h.userService.UpdateAvatar, "Avatar updated successfully")
}

func (h *Handler) UpdateCoverImage(w http.ResponseWriter, r *http.Request) {
	h.updateMedia(w, r, h.userService.UpdateCoverImage, "Cover image updated successfully")
}

func (h *Handler) updateMedia(w http.ResponseWriter, r *http.Request,
	apply func(ctx context.Context, userID, url string) (domain.User, error), msg string) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	var body mediaBody
	if err := common.DecodeJSON(r, &body); err != nil {
		h.rs.Error(w, r, err)
		return
	}
	u, err := apply(r.Context(), viewer.ID, body.URL)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, u, msg)
}

func (h *Handler) ChannelProfile(w http.ResponseWriter, r *http.Request) {
	var viewer *common.Viewer
	if v, ok := common.ViewerFrom(r.Context()); ok {
		viewer = &v
	}
	p, err := h.userService.ChannelProfile(r.Context(), common.PathParam(r, "username"), viewer)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, p, "User channel fetched successfully")
}

func (h *Handler) WatchHistory(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	history, err := h.userService.WatchHistory(r.Context(), viewer.ID)
	if err != nil {
		h.rs.Error(w, r, err)
		return
	}
	h.rs.JSON(w, r, http.StatusOK, history, "Watch history fetched successfully")
}

func setAuthCookies(w http.ResponseWriter, access, refresh string) {
	http.SetCookie(w, &http.Cookie{Name: "accessToken", Value: access, Path: "/", HttpOnly: true, Secure: true})
	http.SetCookie(w, &http.Cookie{Name: "refreshToken", Value: refresh, Path: "/", HttpOnly: true, Secure: true})
}

func clearAuthCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: "accessToken", Value: "", Path: "/", MaxAge: -1, HttpOnly: true, Secure: true})
	http.SetCookie(w, &http.Cookie{Name: "refreshToken", Value: "", Path: "/", MaxAge: -1, HttpOnly: true, Secure: true})
}

// Package media serves uploads and downloads for the GridFS media store. An
// upload returns the locator that videos and avatars then reference.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"viztube/internal/common"
	"viztube/internal/config"
	"viztube/internal/dbmongo"
	"viztube/internal/domain"
	"viztube/internal/logging"
	"viztube/internal/metrics"
)

// FileStore is the part of dbmongo.MediaStorage the routes use.
type FileStore interface {
	UploadFile(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*dbmongo.MediaFile, error)
	DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, *dbmongo.MediaFile, error)
}

type Upload struct {
	domain.Media
	FileType common.MediaFileType `json:"fileType"`
	Size     int64                `json:"size"`
}

type HTTPServer struct {
	storage  FileStore
	rs       *common.Responder
	baseURL  string
	maxBytes int64
}

func NewHTTPServer(storage FileStore, cfg config.MediaConfig, rs *common.Responder) *HTTPServer {
	maxMB := cfg.MaxUploadMB
	if maxMB <= 0 {
		maxMB = 100
	}
	return &HTTPServer{
		storage:  storage,
		rs:       rs,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		maxBytes: int64(maxMB) << 20,
	}
}

// RegisterRoutes mounts the upload endpoint on the API router.
func (s *HTTPServer) RegisterRoutes(r *mux.Router, auth *common.Authenticator) {
	r.Handle("/media", auth.Wrap(s.upload)).Methods(http.MethodPost)
}

// RegisterFileRoutes mounts GET /media/{fileId} on the root router so stored
// URLs stay outside the API version prefix.
func (s *HTTPServer) RegisterFileRoutes(r *mux.Router) {
	r.HandleFunc("/media/{fileId}", s.serveFile).Methods(http.MethodGet)
}

func (s *HTTPServer) upload(w http.ResponseWriter, r *http.Request) {
	viewer, err := common.MustViewer(r.Context())
	if err != nil {
		s.rs.Error(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.rs.Error(w, r, common.Validation("A file field is required").WithCause(err))
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = common.ContentTypeFor(header.Filename)
	}

	stored, err := s.storage.UploadFile(r.Context(), header.Filename, mimeType, viewer.ID, file)
	if err != nil {
		s.rs.Error(w, r, err)
		return
	}
	metrics.RecordMediaUpload(stored.FileType.String())
	logging.Ctx(r.Context()).Info().Str("file_id", stored.ID).Int64("size", stored.Size).Msg("media uploaded")

	s.rs.JSON(w, r, http.StatusCreated, Upload{
		Media:    domain.Media{URL: s.baseURL + "/" + stored.ID, PublicID: stored.ID},
		FileType: stored.FileType,
		Size:     stored.Size,
	}, "File uploaded successfully")
}

func (s *HTTPServer) serveFile(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileId"]

	reader, mediaFile, err := s.storage.DownloadFile(r.Context(), fileID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logging.Ctx(r.Context()).Debug().Err(err).Str("file_id", fileID).Msg("media lookup failed")
		}
		s.rs.Error(w, r, common.NotFound("File not found"))
		return
	}
	defer reader.Close()

	contentType := mediaFile.MimeType
	if contentType == "" {
		contentType = common.ContentTypeFor(mediaFile.Filename)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", mediaFile.Size))

	if _, err := io.Copy(w, reader); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("file_id", fileID).Msg("error streaming file")
	}
}

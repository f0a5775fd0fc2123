package media

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viztube/internal/common"
	"viztube/internal/config"
	"viztube/internal/dbmongo"
	"viztube/internal/domain"
	"viztube/internal/metrics"
)

type storedFile struct {
	info dbmongo.MediaFile
	data []byte
}

// fakeStore keeps uploads in memory.
type fakeStore struct {
	mu    sync.Mutex
	files map[string]storedFile
}

func (f *fakeStore) UploadFile(_ context.Context, filename, mimeType, uploaderID string, content io.Reader) (*dbmongo.MediaFile, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := "507f1f77bcf86cd79943901" + string(rune('0'+len(f.files)))
	info := dbmongo.MediaFile{
		ID:         id,
		Filename:   filename,
		MimeType:   mimeType,
		Size:       int64(len(data)),
		FileType:   common.DetectFileType(mimeType),
		UploadedBy: uploaderID,
		UploadedAt: time.Now(),
	}
	f.files[id] = storedFile{info: info, data: data}
	return &info, nil
}

func (f *fakeStore) DownloadFile(_ context.Context, fileID string) (io.ReadCloser, *dbmongo.MediaFile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sf, ok := f.files[fileID]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	info := sf.info
	return io.NopCloser(bytes.NewReader(sf.data)), &info, nil
}

func newTestRouter(t *testing.T) (*mux.Router, *common.TokenManager) {
	t.Helper()
	tokens := common.NewTokenManager("access", "refresh", time.Hour, 24*time.Hour)
	rs := common.NewResponder(false)
	srv := NewHTTPServer(&fakeStore{files: map[string]storedFile{}}, config.MediaConfig{BaseURL: "http://cdn.test/media/", MaxUploadMB: 1}, rs)

	router := mux.NewRouter()
	srv.RegisterFileRoutes(router)
	srv.RegisterRoutes(router.PathPrefix("/api/v2").Subrouter(), common.NewAuthenticator(tokens, rs))
	return router, tokens
}

func multipartBody(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadAndServe(t *testing.T) {
	router, tokens := newTestRouter(t)
	tok, err := tokens.GenerateAccessToken("1", "alice", "alice@example.com")
	require.NoError(t, err)

	before := testutil.ToFloat64(metrics.MediaUploads.WithLabelValues("video"))

	body, ctype := multipartBody(t, "intro.mp4", "video/mp4", []byte("frames"))
	r := httptest.NewRequest(http.MethodPost, "/api/v2/media", body)
	r.Header.Set("Content-Type", ctype)
	r.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data Upload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, common.MediaFileTypeVideo, resp.Data.FileType)
	assert.Equal(t, int64(6), resp.Data.Size)
	assert.Equal(t, "http://cdn.test/media/"+resp.Data.PublicID, resp.Data.URL)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.MediaUploads.WithLabelValues("video")))

	r = httptest.NewRequest(http.MethodGet, "/media/"+resp.Data.PublicID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "video/mp4", w.Header().Get("Content-Type"))
	assert.Equal(t, "6", w.Header().Get("Content-Length"))
	assert.Equal(t, "frames", w.Body.String())
}

func TestUploadRequiresAuthAndFile(t *testing.T) {
	router, tokens := newTestRouter(t)

	body, ctype := multipartBody(t, "a.png", "image/png", []byte("x"))
	r := httptest.NewRequest(http.MethodPost, "/api/v2/media", body)
	r.Header.Set("Content-Type", ctype)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	tok, err := tokens.GenerateAccessToken("1", "alice", "alice@example.com")
	require.NoError(t, err)
	r = httptest.NewRequest(http.MethodPost, "/api/v2/media", bytes.NewBufferString("{}"))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Authorization", "Bearer "+tok)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServeMissingFile(t *testing.T) {
	router, _ := newTestRouter(t)

	r := httptest.NewRequest(http.MethodGet, "/media/507f1f77bcf86cd799439099", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

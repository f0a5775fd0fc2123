package user

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viztube/internal/common"
	"viztube/internal/storetest"
)

type testServer struct {
	router *mux.Router
	tokens *common.TokenManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	tokens := newTokens()
	rs := common.NewResponder(false)
	auth := common.NewAuthenticator(tokens, rs)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v2").Subrouter()
	NewHandler(NewUserService(storetest.NewMemoryStore(), tokens), rs).RegisterRoutes(api, auth)
	return &testServer{router: router, tokens: tokens}
}

func (s *testServer) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	r := httptest.NewRequest(method, path, &buf)
	r.Header.Set("Content-Type", "application/json")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHandler_RegisterLoginCurrentUser(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/v2/users/register", map[string]string{
		"fullname": "Alice", "email": "alice@example.com", "username": "Alice",
		"password": "password1", "avatar": "http://m/a.png",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, w.Body.String(), "password")

	w = s.do(http.MethodPost, "/api/v2/users/register", map[string]string{
		"fullname": "Alice", "email": "alice@example.com", "username": "alice",
		"password": "password1", "avatar": "http://m/a.png",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/api/v2/users/login", map[string]string{"username": "alice", "password": "password1"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	token := data["accessToken"].(string)

	var sawCookie bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "accessToken" && c.HttpOnly {
			sawCookie = true
		}
	}
	assert.True(t, sawCookie)

	w = s.do(http.MethodGet, "/api/v2/users/current-user", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", decode(t, w)["data"].(map[string]interface{})["username"])

	w = s.do(http.MethodGet, "/api/v2/users/current-user", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_RegisterValidation(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/v2/users/register", map[string]string{"username": "x"}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["errors"])
}

func TestHandler_ChannelProfileAnonymous(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodPost, "/api/v2/users/register", map[string]string{
		"fullname": "Alice", "email": "alice@example.com", "username": "alice",
		"password": "password1", "avatar": "http://m/a.png",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(http.MethodGet, "/api/v2/users/c/ALICE", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["subscriberCount"])
	assert.Equal(t, false, data["isSubscribed"])
	assert.NotContains(t, w.Body.String(), "_count")

	w = s.do(http.MethodGet, "/api/v2/users/c/nobody", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_EmptyHistoryIsOK(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodPost, "/api/v2/users/register", map[string]string{
		"fullname": "Alice", "email": "alice@example.com", "username": "alice",
		"password": "password1", "avatar": "http://m/a.png",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["data"].(map[string]interface{})["id"].(string)

	token, err := s.tokens.GenerateAccessToken(id, "alice", "alice@example.com")
	require.NoError(t, err)

	w = s.do(http.MethodGet, "/api/v2/users/history", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, decode(t, w)["data"])
}

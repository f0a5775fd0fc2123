package common

import (
	"context"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
)

// Viewer is the authenticated caller, taken from the access token claims.
type Viewer struct {
	ID       string
	Username string
	Email    string
}

type viewerKey struct{}

func WithViewer(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, v)
}

// ViewerFrom returns the viewer and whether the request was authenticated.
func ViewerFrom(ctx context.Context) (Viewer, bool) {
	v, ok := ctx.Value(viewerKey{}).(Viewer)
	return v, ok
}

// MustViewer is for handlers mounted behind RequireAuth.
func MustViewer(ctx context.Context) (Viewer, error) {
	v, ok := ViewerFrom(ctx)
	if !ok {
		return Viewer{}, Unauthorized("Unauthorized request")
	}
	return v, nil
}

// DecodeJSON reads the body into dst and validates its struct tags. An empty
// body decodes to the zero value so tag validation reports the missing fields.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body != nil {
		err := json.NewDecoder(r.Body).Decode(dst)
		if err != nil && err != io.EOF {
			return Validation("Malformed JSON body").WithCause(err)
		}
	}
	return ValidateStruct(dst)
}

// PathParam returns a mux route variable.
func PathParam(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

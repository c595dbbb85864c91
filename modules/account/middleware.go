package account

import (
	"net/http"
	"slices"

	"github.com/pharmagarde/pharmagarde/handler"
	"github.com/pharmagarde/pharmagarde/pkg/apperror"
)

const basicRealm = `Basic realm="pharmagarde"`

// Authenticate signs the request in with HTTP Basic credentials and stores
// the user in the request context.
func Authenticate(p Provider, opts ...handler.Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, password, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", basicRealm)
				handler.Wrap(errorResponse(handler.ErrUnauthorized), opts...)(w, r)
				return
			}

			user, err := p.SignIn(r.Context(), email, password)
			if err != nil {
				if apperror.HTTPStatus(apperror.Classify(err).Kind) == http.StatusUnauthorized {
					w.Header().Set("WWW-Authenticate", basicRealm)
				}
				handler.Wrap(errorResponse(err), opts...)(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// RequireRole lets the request through only when the authenticated user has
// one of roles.
func RequireRole(roles []Role, opts ...handler.Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				handler.Wrap(errorResponse(handler.ErrUnauthorized), opts...)(w, r)
				return
			}
			if !slices.Contains(roles, user.Role) {
				handler.Wrap(errorResponse(apperror.New(apperror.KindPermissionDenied)), opts...)(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func errorResponse(err error) handler.Func {
	return func(*http.Request) handler.Response {
		return handler.Error(err)
	}
}

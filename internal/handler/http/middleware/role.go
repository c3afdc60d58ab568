package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffsync/attendance-backend-go/internal/domain/user"
	"github.com/staffsync/attendance-backend-go/internal/handler/http/response"
)

// RequireRoles allows the request through when the token's role claim is one
// of the given roles.
func RequireRoles(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrAccessDenied)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, user.ErrAccessDenied)
				return
			}

			role := user.Role(roleStr)
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.HandleError(w, user.ErrAccessDenied)
		})
	}
}

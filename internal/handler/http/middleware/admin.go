package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kerjahub/roster-backend-go/internal/domain/user"
	"github.com/kerjahub/roster-backend-go/internal/handler/http/response"
)

// AdminOnly guards the supervisor decision endpoints.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrInvalidToken)
			return
		}

		admin, ok := claims["is_admin"].(bool)
		if !ok || !admin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

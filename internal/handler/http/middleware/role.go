package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/obracontrol/asistencia-backend-go/internal/domain/user"
	"github.com/obracontrol/asistencia-backend-go/internal/handler/http/response"
)

// RequireRole gates an endpoint on role membership. Denial happens before
// any handler or data access runs.
func RequireRole(allowed ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrInsufficientPermissions)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, user.ErrInsufficientPermissions)
				return
			}

			if !user.RoleAllowed(user.Role(roleStr), allowed) {
				response.HandleError(w, user.ErrInsufficientPermissions)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdministratorOnly is shorthand for the administrator-exclusive endpoints.
func AdministratorOnly(next http.Handler) http.Handler {
	return RequireRole(user.RoleAdministrator)(next)
}

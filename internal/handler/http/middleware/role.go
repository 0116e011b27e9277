package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/sumit123-456/backend-project/internal/domain/employee"
	"github.com/sumit123-456/backend-project/internal/handler/http/response"
)

// RequireHR requires the hr role
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "HR access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(employee.RoleHR) {
			response.Forbidden(w, "HR access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireReviewer requires the team_leader or hr role
func RequireReviewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Reviewer access required")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || (role != string(employee.RoleTeamLeader) && role != string(employee.RoleHR)) {
			response.Forbidden(w, "Reviewer access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

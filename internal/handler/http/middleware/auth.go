package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type actorKey struct{}

// AuthRequired accepts only access tokens with a known role and stores the
// caller as a user.Actor on the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.Unauthorized(w, "Invalid token")
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Unauthorized(w, "Invalid token type")
				return
			}

			userID, _ := claims["user_id"].(string)
			if userID == "" {
				response.Unauthorized(w, "Invalid token subject")
				return
			}

			roleStr, _ := claims["role"].(string)
			role, err := user.ParseRole(roleStr)
			if err != nil {
				response.Forbidden(w, "Unknown role")
				return
			}

			// employee_id is null for accounts without an employee record
			employeeID, _ := claims["employee_id"].(string)

			actor := user.Actor{UserID: userID, EmployeeID: employeeID, Role: role}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		}
		return http.HandlerFunc(hfn)
	}
}

func WithActor(ctx context.Context, actor user.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the caller stored by AuthRequired.
func ActorFromContext(ctx context.Context) (user.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(user.Actor)
	return actor, ok
}

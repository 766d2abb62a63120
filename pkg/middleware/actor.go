package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/planora/planora/pkg/composables"
	"github.com/planora/planora/pkg/configuration"
	"github.com/planora/planora/pkg/types"
)

// WithActor reads the identity headers set by the auth gateway and attaches
// the resolved actor to the request context. Requests without a parseable
// actor id pass through anonymously; services reject them where an actor is
// required.
func WithActor() mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := uuid.Parse(r.Header.Get(conf.ActorIDHeader))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			role := types.RoleMember
			switch types.Role(r.Header.Get(conf.ActorRoleHeader)) {
			case types.RoleAdmin:
				role = types.RoleAdmin
			case types.RoleManager:
				role = types.RoleManager
			}

			actor := types.Actor{
				ID:          id,
				Role:        role,
				CompanyCode: r.Header.Get(conf.CompanyCodeHeader),
			}
			next.ServeHTTP(w, r.WithContext(composables.WithActor(r.Context(), actor)))
		})
	}
}

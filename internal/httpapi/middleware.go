package httpapi

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/nayamama/hr-project/internal/service"
)

type contextKey struct{}

var actorKey contextKey

// AuthMiddleware resolves the request actor. Full session mechanics live
// outside this service; a shared admin token is the capability check here.
func AuthMiddleware(adminToken string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := service.Actor{}
		token := r.Header.Get("X-Admin-Token")
		if token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) == 1 {
			actor.IsAdmin = true
		}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

func WithActor(ctx context.Context, actor service.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func actorFrom(r *http.Request) service.Actor {
	actor, _ := r.Context().Value(actorKey).(service.Actor)
	return actor
}

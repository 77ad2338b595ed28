package web

import (
	"context"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/AntonStoeckl/library-books-go/library/core"
	"github.com/AntonStoeckl/library-books-go/library/shell/config"
)

const realm = `Basic realm="library", charset="UTF-8"`

type actorKey struct{}

// Authenticator checks basic auth credentials against bcrypt password hashes.
type Authenticator struct {
	users     map[string]config.User
	dummyHash []byte
}

// NewAuthenticator creates an Authenticator for the configured users.
func NewAuthenticator(users []config.User) *Authenticator {
	byName := make(map[string]config.User, len(users))
	for _, user := range users {
		byName[user.Name] = user
	}

	// unknown users are compared against this hash to take as long as known ones
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte("library"), bcrypt.DefaultCost)

	return &Authenticator{users: byName, dummyHash: dummyHash}
}

// Authenticate returns the actor for valid credentials.
func (a *Authenticator) Authenticate(name, password string) (core.Actor, bool) {
	user, ok := a.users[name]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(password))
		return core.Actor{}, false
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return core.Actor{}, false
	}

	return core.BuildActor(user.Name, user.Groups...), true
}

// RequireUser is a middleware that rejects requests without valid credentials
// and puts the actor into the request context otherwise.
func (a *Authenticator) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, password, ok := r.BasicAuth()
		if !ok {
			unauthorized(w)
			return
		}

		actor, ok := a.Authenticate(name, password)
		if !ok {
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// WithActor puts the actor into the context.
func WithActor(ctx context.Context, actor core.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom returns the authenticated actor, or an actor without groups.
func ActorFrom(ctx context.Context) core.Actor {
	actor, ok := ctx.Value(actorKey{}).(core.Actor)
	if !ok {
		return core.Actor{Name: "anonymous"}
	}

	return actor
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", realm)
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}

package middleware

import (
	"context"
	"net/http"

	"event-manager-go/internal/auth"
	userdomain "event-manager-go/internal/domain/user"
	"event-manager-go/pkg/logger"
)

type contextKey int

const userKey contextKey = iota

// User is the verified identity injected into the request context.
type User struct {
	ID    uint
	Email string
}

type UserLoader interface {
	GetByID(ctx context.Context, id uint) (*userdomain.User, error)
}

// SessionAuth resolves the identity behind the session cookie and passes it
// to handlers through the request context.
type SessionAuth struct {
	cookieName string
	tokens     *auth.Tokens
	users      UserLoader
	log        logger.Logger
}

func NewSessionAuth(cookieName string, tokens *auth.Tokens, users UserLoader, log logger.Logger) *SessionAuth {
	return &SessionAuth{
		cookieName: cookieName,
		tokens:     tokens,
		users:      users,
		log:        log,
	}
}

func (a *SessionAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(a.cookieName)
		if err != nil || cookie.Value == "" {
			unauthorized(w)
			return
		}

		userID, _, err := a.tokens.Verify(cookie.Value)
		if err != nil {
			unauthorized(w)
			return
		}

		// the token may outlive the account
		found, err := a.users.GetByID(r.Context(), userID)
		if err != nil {
			a.log.BusinessError("auth: session user lookup failed", err, "user_id", userID)
			unauthorized(w)
			return
		}

		ctx := WithUser(r.Context(), User{ID: found.ID, Email: found.Email})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userKey).(User)
	if !ok || user.ID == 0 {
		return User{}, false
	}
	return user, true
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
}

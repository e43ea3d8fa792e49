package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
	"github.com/heartmarshall/inventory-dashboard/pkg/ctxutil"
)

type sessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*domain.User, error)
}

// Auth resolves the session token from the Authorization bearer header or
// the session cookie and stores the user id, role and token in the context.
// Requests without a token pass through anonymously. An invalid bearer token
// is rejected with 401; a stale cookie is treated as anonymous so clients
// can still reach the login endpoint. Resolver failures other than
// domain.ErrUnauthorized answer 500.
func Auth(resolver sessionResolver, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, fromHeader := extractBearerToken(r), true
			if token == "" {
				token, fromHeader = cookieToken(r, cookieName), false
			}
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := resolver.ResolveSession(r.Context(), token)
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthorized) {
					writeError(w, http.StatusInternalServerError, "Internal server error")
					return
				}
				if fromHeader {
					writeError(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), user.ID)
			ctx = ctxutil.WithUserRole(ctx, user.Role.String())
			ctx = ctxutil.WithSessionToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole admits only authenticated users holding one of roles.
// When enforce is false it is a no-op.
func RequireRole(enforce bool, roles ...domain.UserRole) Middleware {
	return func(next http.Handler) http.Handler {
		if !enforce {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			u := domain.User{Role: domain.UserRole(ctxutil.UserRoleFromCtx(r.Context()))}
			if !u.HasRole(roles...) {
				writeError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

func cookieToken(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

package middleware

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/forumhub-dev/forumhub/internal/domain"
	"github.com/forumhub-dev/forumhub/internal/utils"
	jwt_internal "github.com/forumhub-dev/forumhub/internal/utils/jwt"
)

// Key to store the user claims in the request context
type key int

const userClaimsKey key = 0

func auth(jwtService *jwt_internal.Jwt, adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessCookie, err := r.Cookie("accessToken")
			if err == http.ErrNoCookie {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			} else if err != nil {
				http.Error(w, "Invalid cookie", http.StatusInternalServerError)
				return
			}

			token, err := jwtService.DecodeToken(accessCookie.Value)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}

			uid, uidOk := claims["uid"].(float64)
			login, loginOk := claims["login"].(string)
			admin, adminOk := claims["admin"].(bool)
			if !uidOk || !loginOk || !adminOk {
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}

			if adminOnly && !admin {
				http.Error(w, "Access denied. Only for admin", http.StatusForbidden)
				return
			}

			user := &domain.User{
				Id:    domain.UserId(uid),
				Login: login,
				Admin: admin,
			}
			if name, ok := claims["name"].(string); ok {
				user.Name = name
			}

			ctx := context.WithValue(r.Context(), userClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func AdminOnly(jwtService *jwt_internal.Jwt) func(http.Handler) http.Handler {
	return auth(jwtService, true)
}

func NeedAuth(jwtService *jwt_internal.Jwt) func(http.Handler) http.Handler {
	return auth(jwtService, false)
}

// WithUser returns a request carrying the user, for handler tests.
func WithUser(r *http.Request, user *domain.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userClaimsKey, user))
}

// GetUserFromContext returns the authenticated user, or nil outside an
// authenticated request.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

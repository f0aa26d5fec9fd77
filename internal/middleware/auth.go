package middleware

import (
	"net/http"

	"redmedicos-be/internal/auth"
	"redmedicos-be/internal/user"
	"redmedicos-be/internal/utils"
)

// AuthMiddleware is passive: anonymous requests pass through untouched, but
// a token that is present and invalid is rejected outright.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.ExtractAccessToken(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			utils.WriteJSONError(w, "인증이 만료되었거나 유효하지 않습니다", http.StatusUnauthorized)
			return
		}

		ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Email, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects requests with no authenticated user in context.
// Must run after AuthMiddleware.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			utils.WriteJSONError(w, "로그인이 필요합니다", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects authenticated users without the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			utils.WriteJSONError(w, "로그인이 필요합니다", http.StatusUnauthorized)
			return
		}
		if utils.GetUserRoleFromContext(r.Context()) != string(user.RoleAdmin) {
			utils.WriteJSONError(w, "관리자 권한이 필요합니다", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"redmedicos-be/internal/user"
	"redmedicos-be/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := CORS(nextHandler)

	t.Run("OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Normal request", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuth(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	t.Run("Missing token passes through anonymously", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/protected", nil)
		w := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid token rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer invalid-token")
		w := httptest.NewRecorder()

		AuthMiddleware(http.NotFoundHandler()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Valid token populates context", func(t *testing.T) {
		tokenString, err := user.GenerateJWT(1, string(user.RoleUser), "kim@example.com")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		w := httptest.NewRecorder()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, uint(1), userID)
			assert.Equal(t, "kim@example.com", utils.GetUserEmailFromContext(r.Context()))
			w.WriteHeader(http.StatusOK)
		})

		AuthMiddleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Malformed header treated as anonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Basic user:pass")
		w := httptest.NewRecorder()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok)
			w.WriteHeader(http.StatusOK)
		})

		AuthMiddleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Anonymous blocked", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/orders/my", nil)
		w := httptest.NewRecorder()

		RequireAuth(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Authenticated allowed", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/orders/my", nil)
		ctx := utils.SetUserContext(req.Context(), 7, "kim@example.com", string(user.RoleUser))
		w := httptest.NewRecorder()

		RequireAuth(next).ServeHTTP(w, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Anonymous blocked", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/orders", nil)
		w := httptest.NewRecorder()

		RequireAdmin(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Plain user forbidden", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/orders", nil)
		ctx := utils.SetUserContext(req.Context(), 7, "kim@example.com", string(user.RoleUser))
		w := httptest.NewRecorder()

		RequireAdmin(next).ServeHTTP(w, req.WithContext(ctx))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin allowed", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/orders", nil)
		ctx := utils.SetUserContext(req.Context(), 1, "admin@redmedicos.kr", string(user.RoleAdmin))
		w := httptest.NewRecorder()

		RequireAdmin(next).ServeHTTP(w, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimitTiers(t *testing.T) {
	t.Run("strict tier on payment paths", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/payment/confirm", nil)
		limit, burst, tier := resolveRateTier(req)
		assert.Equal(t, limitStrict, limit)
		assert.Equal(t, burstStrict, burst)
		assert.Equal(t, "strict", tier)
	})

	t.Run("strict tier on auth paths", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/auth/login", nil)
		_, _, tier := resolveRateTier(req)
		assert.Equal(t, "strict", tier)
	})

	t.Run("public tier on news and product reads", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/news", nil)
		_, _, tier := resolveRateTier(req)
		assert.Equal(t, "public", tier)

		req = httptest.NewRequest("GET", "/api/products", nil)
		_, _, tier = resolveRateTier(req)
		assert.Equal(t, "public", tier)
	})

	t.Run("product writes stay general", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/products", nil)
		_, _, tier := resolveRateTier(req)
		assert.Equal(t, "general", tier)
	})
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := RateLimitMiddleware(next)
	addr := "203.0.113.9:1234"

	blocked := false
	for i := 0; i < burstStrict+2; i++ {
		req := httptest.NewRequest("POST", "/api/payment/confirm", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			blocked = true
			break
		}
	}

	assert.True(t, blocked, "burst exhaustion should trip the limiter")

	// The bucket refills over time, so a later request succeeds again.
	time.Sleep(600 * time.Millisecond)
	req := httptest.NewRequest("POST", "/api/payment/confirm", nil)
	req.RemoteAddr = addr
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

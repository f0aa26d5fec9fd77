package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAccessToken(t *testing.T) {
	t.Run("from cookie", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: "access_token", Value: "tok-cookie"})
		assert.Equal(t, "tok-cookie", ExtractAccessToken(r))
	})

	t.Run("from bearer header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer tok-header")
		assert.Equal(t, "tok-header", ExtractAccessToken(r))
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: "access_token", Value: "tok-cookie"})
		r.Header.Set("Authorization", "Bearer tok-header")
		assert.Equal(t, "tok-cookie", ExtractAccessToken(r))
	})

	t.Run("empty when absent", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		assert.Equal(t, "", ExtractAccessToken(r))
	})

	t.Run("non bearer header ignored", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Basic abc")
		assert.Equal(t, "", ExtractAccessToken(r))
	})
}

package utils

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	t.Run("SetUserContext and GetUserIDFromContext", func(t *testing.T) {
		ctx := context.Background()
		userID := uint(100)
		email := "user@example.com"
		role := "user"

		ctx = SetUserContext(ctx, userID, email, role)
		assert.NotNil(t, ctx)

		id, ok := GetUserIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, userID, id)

		assert.Equal(t, email, GetUserEmailFromContext(ctx))
		assert.Equal(t, role, GetUserRoleFromContext(ctx))
	})

	t.Run("GetUserIDFromContext with empty context", func(t *testing.T) {
		_, ok := GetUserIDFromContext(context.Background())
		assert.False(t, ok)
	})
}

func TestToUint(t *testing.T) {
	tests := []struct {
		in      string
		want    uint
		wantErr bool
	}{
		{"42", 42, false},
		{"0", 0, false},
		{"abc", 0, true},
		{"-1", 0, true},
	}

	for _, tt := range tests {
		got, err := ToUint(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestPtrHelpers(t *testing.T) {
	s := "hello"
	assert.Equal(t, &s, StrPtr("hello"))
	assert.Equal(t, "hello", PtrString(&s))
	assert.Equal(t, "", PtrString(nil))
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONError(w, "something broke", 400)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "something broke", body["error"])
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, 201, map[string]int{"count": 3})

	assert.Equal(t, 201, w.Code)

	var body map[string]int
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body["count"])
}

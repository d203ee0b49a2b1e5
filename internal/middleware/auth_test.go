package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/auth"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/models"
)

func setupAuthRouter(t *testing.T, codec *auth.TokenCodec) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/users/:uid/tasks", RequireAuth(codec, zap.NewNop()), RequireOwner(), func(c *gin.Context) {
		ident, ok := GetIdentity(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": ident.UserID})
	})
	return r
}

func issueToken(t *testing.T, codec *auth.TokenCodec, userID uint64, ttl time.Duration) string {
	t.Helper()
	token, err := codec.Issue(&models.User{ID: userID, Email: "a@x.com"}, ttl)
	require.NoError(t, err)
	return token
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	codec, err := auth.NewTokenCodec("secret", "HS256")
	require.NoError(t, err)
	r := setupAuthRouter(t, codec)

	req := httptest.NewRequest(http.MethodGet, "/users/1/tasks", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestRequireAuth_BadScheme(t *testing.T) {
	codec, err := auth.NewTokenCodec("secret", "HS256")
	require.NoError(t, err)
	r := setupAuthRouter(t, codec)

	token := issueToken(t, codec, 1, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/users/1/tasks", nil)
	req.Header.Set("Authorization", "Basic "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	codec, err := auth.NewTokenCodec("secret", "HS256")
	require.NoError(t, err)
	r := setupAuthRouter(t, codec)

	token := issueToken(t, codec, 1, -time.Minute)
	req := httptest.NewRequest(http.MethodGet, "/users/1/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	codec, err := auth.NewTokenCodec("secret", "HS256")
	require.NoError(t, err)
	other, err := auth.NewTokenCodec("other-secret", "HS256")
	require.NoError(t, err)
	r := setupAuthRouter(t, codec)

	token := issueToken(t, other, 1, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/users/1/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireOwner_PathMismatch(t *testing.T) {
	codec, err := auth.NewTokenCodec("secret", "HS256")
	require.NoError(t, err)
	r := setupAuthRouter(t, codec)

	// Valid token for user 1 must not reach user 2's tasks.
	token := issueToken(t, codec, 1, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/users/2/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireOwner_InvalidPathParam(t *testing.T) {
	codec, err := auth.NewTokenCodec("secret", "HS256")
	require.NoError(t, err)
	r := setupAuthRouter(t, codec)

	token := issueToken(t, codec, 1, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/users/abc/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	codec, err := auth.NewTokenCodec("secret", "HS256")
	require.NoError(t, err)
	r := setupAuthRouter(t, codec)

	token := issueToken(t, codec, 1, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/users/1/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"user_id": 1}`, w.Body.String())
}

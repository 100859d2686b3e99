package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmhevents/elation/internal/config"
	"github.com/fmhevents/elation/internal/middleware"
	"github.com/fmhevents/elation/internal/services"
	"github.com/fmhevents/elation/internal/session"
)

const testSecret = "test-session-secret"

func newAuthRouter(t *testing.T) (*gin.Engine, *services.AuthService, *fakeUserRepo) {
	t.Helper()

	users := newFakeUserRepo()
	sessions := session.NewMemoryStore(session.TTL)
	auth := services.NewAuthService(users, sessions)
	cfg := &config.Config{SessionSecret: testSecret, Environment: "development"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := gin.New()
	r.Use(middleware.CurrentUser(sessions, users, testSecret, logger))
	r.POST("/auth/login", Login(auth, cfg))
	r.GET("/auth/logout", Logout(auth, cfg))

	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired())
	admin.GET("/dashboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, auth, users
}

func seedAdmin(t *testing.T, auth *services.AuthService) {
	t.Helper()
	require.NoError(t, auth.EnsureAdmin(context.Background(), "admin@example.com", "bootstrap9"))
}

func TestLoginSetsSignedSessionCookie(t *testing.T) {
	r, auth, _ := newAuthRouter(t)
	seedAdmin(t, auth)

	w := postJSON(t, r, "/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "bootstrap9",
	})
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, session.CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	token, ok := session.VerifyCookie(testSecret, cookie.Value)
	assert.True(t, ok)
	assert.NotEmpty(t, token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r, auth, _ := newAuthRouter(t)
	seedAdmin(t, auth)

	unknown := postJSON(t, r, "/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "bootstrap9",
	})
	wrongPass := postJSON(t, r, "/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, unknown.Body.String(), wrongPass.Body.String())
}

func TestAdminRouteRedirectsAnonymousPageRequest(t *testing.T) {
	r, _, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))
}

func TestAdminRouteReturns401ForAPIRequest(t *testing.T) {
	r, _, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRouteAllowsLoggedInAdmin(t *testing.T) {
	r, auth, _ := newAuthRouter(t)
	seedAdmin(t, auth)

	login := postJSON(t, r, "/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "bootstrap9",
	})
	require.Equal(t, http.StatusOK, login.Code)
	cookie := login.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTamperedCookieIsIgnored(t *testing.T) {
	r, auth, _ := newAuthRouter(t)
	seedAdmin(t, auth)

	login := postJSON(t, r, "/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "bootstrap9",
	})
	require.Equal(t, http.StatusOK, login.Code)
	cookie := login.Result().Cookies()[0]
	cookie.Value = "forged-token." + cookie.Value

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(cookie)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutDestroysServerSession(t *testing.T) {
	r, auth, _ := newAuthRouter(t)
	seedAdmin(t, auth)

	login := postJSON(t, r, "/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "bootstrap9",
	})
	require.Equal(t, http.StatusOK, login.Code)
	cookie := login.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)

	// The original cookie no longer grants access
	req = httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(cookie)
	req.Header.Set("Accept", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

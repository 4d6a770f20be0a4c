package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marseille-immobilier/internal/auth"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("mi_session", store))
	r.Use(InjectIdentity())

	r.POST("/login-as/:name", func(c *gin.Context) {
		sess := sessions.Default(c)
		sess.Set("user_id", uint(1))
		sess.Set("username", c.Param("name"))
		_ = sess.Save()
		c.Status(http.StatusOK)
	})

	admin := r.Group("/admin", RequireAuth())
	admin.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, Identity(c).Username)
	})

	return r
}

func TestRequireAuth_RedirectsAnonymous(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestRequireAuth_PassesWithSession(t *testing.T) {
	r := newTestRouter()

	login := httptest.NewRecorder()
	r.ServeHTTP(login, httptest.NewRequest(http.MethodPost, "/login-as/admin", nil))
	require.Equal(t, http.StatusOK, login.Code)
	cookies := login.Result().Cookies()
	require.NotEmpty(t, cookies)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/whoami", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())
}

func TestIdentity_ZeroWithoutInjection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	id := Identity(c)
	assert.False(t, id.Valid())
	assert.Equal(t, auth.Identity{}, id)
}

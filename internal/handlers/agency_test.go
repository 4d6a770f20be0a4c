package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"marseille-immobilier/internal/auth"
	"marseille-immobilier/internal/database"
	"marseille-immobilier/internal/middleware"
	"marseille-immobilier/internal/models"
	"marseille-immobilier/internal/services"
	"marseille-immobilier/internal/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func adminIdentity() auth.Identity {
	return auth.Identity{UserID: 1, Username: "admin"}
}

func newReorderRouter(t *testing.T) (*gin.Engine, *services.AgencyService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	files, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	agencies := services.NewAgencyService(db, files)
	h := &Handlers{Agencies: agencies}

	r := gin.New()
	r.Use(sessions.Sessions("mi_session", cookie.NewStore([]byte("test-secret"))))
	r.Use(middleware.InjectIdentity())
	r.POST("/test-login", func(c *gin.Context) {
		sess := sessions.Default(c)
		sess.Set("user_id", uint(1))
		sess.Set("username", "admin")
		_ = sess.Save()
		c.Status(http.StatusOK)
	})
	admin := r.Group("/admin", middleware.RequireAuth())
	admin.POST("/agencies/reorder", h.ReorderAgencies)

	return r, agencies
}

func loginCookies(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test-login", nil))
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func postReorder(t *testing.T, r *gin.Engine, cookies []*http.Cookie, ids []uint) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(gin.H{"agency_ids": ids})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/agencies/reorder", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createAgency(t *testing.T, svc *services.AgencyService, name string, active bool) uint {
	t.Helper()
	in := services.AgencyInput{
		Name:     name,
		City:     "Marseille",
		Website:  "example.com",
		Plan:     models.PlanBasic,
		IsActive: active,
	}
	agency, err := svc.Create(adminIdentity(), in, nil, nil)
	require.NoError(t, err)
	return agency.ID
}

func TestReorderAgencies_AcceptsFullAdminListOrder(t *testing.T) {
	r, svc := newReorderRouter(t)
	cookies := loginCookies(t, r)

	a := createAgency(t, svc, "One", true)
	b := createAgency(t, svc, "Hidden", false)
	c := createAgency(t, svc, "Three", true)

	// the admin list renders every row, hidden included, and the
	// drag-and-drop posts that full order back
	w := postReorder(t, r, cookies, []uint{c, b, a})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success"}`, w.Body.String())

	all, err := svc.ListAll(adminIdentity())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint{c, b, a}, []uint{all[0].ID, all[1].ID, all[2].ID})
}

func TestReorderAgencies_RejectsStaleList(t *testing.T) {
	r, svc := newReorderRouter(t)
	cookies := loginCookies(t, r)

	a := createAgency(t, svc, "One", true)
	createAgency(t, svc, "Hidden", false)

	w := postReorder(t, r, cookies, []uint{a})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":"error"}`, w.Body.String())
}

func TestReorderAgencies_AnonymousIsRedirected(t *testing.T) {
	r, _ := newReorderRouter(t)

	w := postReorder(t, r, nil, []uint{1})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

package server

import (
	"html/template"
	"net/http"

	"marseille-immobilier/internal/config"
	"marseille-immobilier/internal/handlers"
	"marseille-immobilier/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, h *handlers.Handlers) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.Static("/uploads", cfg.UploadDir)

	r.SetFuncMap(template.FuncMap{
		"uploadURL": func(kind, name string) string {
			if name == "" {
				return ""
			}
			return "/uploads/" + kind + "/" + name
		},
	})
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("mi_session", store))

	r.Use(middleware.InjectIdentity())

	// PUBLIC
	r.GET("/", h.IndexPage)
	r.GET("/contact", h.ShowContact)
	r.POST("/contact", h.SubmitContact)
	r.GET("/privacy", h.PrivacyPage)
	r.GET("/set-language/:lang", h.SetLanguage)

	// AUTH
	r.GET("/admin/login", h.ShowLogin)
	r.POST("/admin/login", h.Login)
	r.GET("/admin/logout", h.Logout)

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth())

	admin.GET("/dashboard", h.Dashboard)

	// AGENCIES
	admin.GET("/agencies", h.ListAgencies)
	admin.GET("/agencies/add", h.ShowNewAgency)
	admin.POST("/agencies/add", h.CreateAgency)
	admin.GET("/agencies/edit/:id", h.ShowEditAgency)
	admin.POST("/agencies/edit/:id", h.UpdateAgency)
	admin.POST("/agencies/delete/:id", h.DeleteAgency)
	admin.POST("/agencies/reorder", h.ReorderAgencies)

	// AGENCY GALLERY
	admin.GET("/agencies/images/:id", h.ShowAgencyImages)
	admin.POST("/agencies/images/:id", h.AddAgencyImages)
	admin.POST("/agencies/images/:id/reorder", h.ReorderAgencyImages)
	admin.POST("/images/delete/:id", h.DeleteAgencyImage)
	admin.POST("/images/primary/:id", h.SetPrimaryAgencyImage)

	// MESSAGES
	admin.GET("/messages", h.ListMessages)
	admin.POST("/messages/read/:id", h.MarkMessageRead)
	admin.POST("/messages/delete/:id", h.DeleteMessage)

	// TRANSLATIONS
	admin.GET("/translations", h.ListTranslations)
	admin.POST("/translations", h.UpsertTranslation)

	// CAROUSEL
	admin.GET("/carousel", h.ShowCarousel)
	admin.POST("/carousel/settings", h.UpdateCarouselSettings)
	admin.POST("/carousel/items", h.AddCarouselItem)
	admin.POST("/carousel/items/delete/:id", h.DeleteCarouselItem)
	admin.POST("/carousel/items/toggle/:id", h.ToggleCarouselItem)
	admin.POST("/carousel/reorder", h.ReorderCarousel)

	// PASSWORD
	admin.GET("/password", h.ShowPasswordChange)
	admin.POST("/password", h.ChangePassword)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}

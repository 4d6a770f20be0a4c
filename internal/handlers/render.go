package handlers

import (
	"strconv"

	"marseille-immobilier/internal/middleware"
	"marseille-immobilier/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the services behind the HTTP surface.
type Handlers struct {
	Auth         *services.AuthService
	Agencies     *services.AgencyService
	Contact      *services.ContactService
	Translations *services.TranslationService
	Carousel     *services.CarouselService
}

// language returns the visitor's language from the session, falling back
// to the catalog default.
func (h *Handlers) language(c *gin.Context) string {
	sess := sessions.Default(c)
	if lang, ok := sess.Get("language").(string); ok && lang != "" {
		return lang
	}
	return h.Translations.DefaultLanguage()
}

// render wraps c.HTML and gives every template the language, the T lookup
// function, the language switcher list and the caller identity.
func (h *Handlers) render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	lang := h.language(c)
	data["Lang"] = lang
	data["T"] = func(key string) string {
		return h.Translations.Resolve(key, lang)
	}
	if langs, err := h.Translations.Languages(); err == nil {
		data["Languages"] = langs
	}

	identity := middleware.Identity(c)
	if identity.Valid() {
		data["CurrentUsername"] = identity.Username
		data["LoggedIn"] = true
	}

	if _, ok := data["flash"]; !ok {
		sess := sessions.Default(c)
		if flashes := sess.Flashes(); len(flashes) > 0 {
			data["flash"] = flashes[0]
			_ = sess.Save()
		}
	}

	c.HTML(status, tmpl, data)
}

func flash(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg)
	_ = sess.Save()
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

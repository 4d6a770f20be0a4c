package handlers

import (
	"errors"
	"net/http"

	"marseille-immobilier/internal/apperr"
	"marseille-immobilier/internal/middleware"

	"github.com/gin-gonic/gin"
)

// ListTranslations shows the catalog editor for one language (?lang=,
// default language when absent).
func (h *Handlers) ListTranslations(c *gin.Context) {
	lang := c.Query("lang")
	if lang == "" {
		lang = h.Translations.DefaultLanguage()
	}

	list, err := h.Translations.ListForLanguage(middleware.Identity(c), lang)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	h.render(c, http.StatusOK, "translations.html", gin.H{
		"translations": list,
		"editLang":     lang,
	})
}

type translationForm struct {
	Language string `form:"language"`
	Key      string `form:"key"`
	Value    string `form:"value"`
}

func (h *Handlers) UpsertTranslation(c *gin.Context) {
	var form translationForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}

	err := h.Translations.Upsert(middleware.Identity(c), form.Language, form.Key, form.Value)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Redirect(http.StatusFound, "/admin/translations?lang="+form.Language)
}

package handlers

import (
	"net/http"

	"marseille-immobilier/internal/apperr"
	"marseille-immobilier/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"errors"
)

// IndexPage is the public listing: active agencies premium-first plus the
// carousel when enabled.
func (h *Handlers) IndexPage(c *gin.Context) {
	agencies, err := h.Agencies.List("")
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	settings, items, err := h.Carousel.Get()
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	h.render(c, http.StatusOK, "index.html", gin.H{
		"agencies":         agencies,
		"carouselSettings": settings,
		"carouselItems":    items,
	})
}

func (h *Handlers) ShowContact(c *gin.Context) {
	h.render(c, http.StatusOK, "contact.html", gin.H{"error": ""})
}

type contactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Phone   string `form:"phone"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

func (h *Handlers) SubmitContact(c *gin.Context) {
	lang := h.language(c)

	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "contact.html", gin.H{
			"error": h.Translations.Resolve("contact_error_required", lang),
		})
		return
	}

	result, err := h.Contact.Submit(services.ContactInput{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Subject: form.Subject,
		Body:    form.Message,
	})
	if err != nil {
		key := "contact_error_save"
		status := http.StatusInternalServerError
		if errors.Is(err, apperr.ErrValidation) {
			key = "contact_error_required"
			status = http.StatusBadRequest
		}
		h.render(c, status, "contact.html", gin.H{
			"error": h.Translations.Resolve(key, lang),
		})
		return
	}

	if result.Notified {
		flash(c, h.Translations.Resolve("contact_success", lang))
	} else {
		flash(c, h.Translations.Resolve("contact_email_error", lang))
	}
	c.Redirect(http.StatusFound, "/contact")
}

func (h *Handlers) PrivacyPage(c *gin.Context) {
	h.render(c, http.StatusOK, "privacy.html", gin.H{})
}

// SetLanguage stores the visitor's language choice when it is one of the
// seeded catalog languages.
func (h *Handlers) SetLanguage(c *gin.Context) {
	lang := c.Param("lang")

	langs, err := h.Translations.Languages()
	if err == nil {
		for _, known := range langs {
			if known == lang {
				sess := sessions.Default(c)
				sess.Set("language", lang)
				_ = sess.Save()
				break
			}
		}
	}

	if ref := c.Request.Referer(); ref != "" {
		c.Redirect(http.StatusFound, ref)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

package handlers

import (
	"errors"
	"net/http"

	"marseille-immobilier/internal/apperr"
	"marseille-immobilier/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handlers) ShowLogin(c *gin.Context) {
	if middleware.Identity(c).Valid() {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	h.render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *Handlers) Login(c *gin.Context) {
	lang := h.language(c)

	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "login.html", gin.H{
			"error": h.Translations.Resolve("login_error_required", lang),
		})
		return
	}

	identity, err := h.Auth.Login(form.Username, form.Password)
	if err != nil {
		key := "login_error_invalid"
		if errors.Is(err, apperr.ErrValidation) {
			key = "login_error_required"
		}
		h.render(c, http.StatusBadRequest, "login.html", gin.H{
			"error": h.Translations.Resolve(key, lang),
		})
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", identity.UserID)
	sess.Set("username", identity.Username)
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *Handlers) Logout(c *gin.Context) {
	lang := h.language(c)

	sess := sessions.Default(c)
	sess.Clear()
	sess.Set("language", lang) // keep the visitor's language across logout
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *Handlers) ShowPasswordChange(c *gin.Context) {
	h.render(c, http.StatusOK, "password_change.html", gin.H{"error": ""})
}

type passwordForm struct {
	Current string `form:"current_password"`
	New     string `form:"new_password"`
	Confirm string `form:"confirm_password"`
}

func (h *Handlers) ChangePassword(c *gin.Context) {
	var form passwordForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "password_change.html", gin.H{"error": "invalid form"})
		return
	}

	err := h.Auth.ChangePassword(middleware.Identity(c), form.Current, form.New, form.Confirm)
	if err != nil {
		status := http.StatusBadRequest
		msg := "could not update password"
		switch {
		case errors.Is(err, apperr.ErrValidation):
			msg = err.Error()
		case errors.Is(err, apperr.ErrUnauthenticated):
			msg = "current password is incorrect"
		default:
			status = http.StatusInternalServerError
		}
		h.render(c, status, "password_change.html", gin.H{"error": msg})
		return
	}

	flash(c, "password updated")
	c.Redirect(http.StatusFound, "/admin/password")
}

package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"marseille-immobilier/internal/apperr"
	"marseille-immobilier/internal/middleware"
	"marseille-immobilier/internal/models"
	"marseille-immobilier/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) Dashboard(c *gin.Context) {
	identity := middleware.Identity(c)

	totalAgencies, activeAgencies, err := h.Agencies.Counts(identity)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	totalMessages, unreadMessages, err := h.Contact.Counts(identity)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	recent, err := h.Contact.Recent(identity, 5)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	h.render(c, http.StatusOK, "dashboard.html", gin.H{
		"totalAgencies":  totalAgencies,
		"activeAgencies": activeAgencies,
		"totalMessages":  totalMessages,
		"unreadMessages": unreadMessages,
		"recentMessages": recent,
	})
}

func (h *Handlers) ListAgencies(c *gin.Context) {
	agencies, err := h.Agencies.ListAll(middleware.Identity(c))
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	h.render(c, http.StatusOK, "agencies.html", gin.H{"agencies": agencies})
}

func (h *Handlers) ShowNewAgency(c *gin.Context) {
	h.render(c, http.StatusOK, "agency_form.html", gin.H{"agency": nil, "error": ""})
}

type agencyForm struct {
	Name        string `form:"name"`
	City        string `form:"city"`
	Website     string `form:"website"`
	Description string `form:"description"`
	Plan        string `form:"plan"`
	IsActive    string `form:"is_active"`
}

func (f agencyForm) input() services.AgencyInput {
	plan := models.Plan(f.Plan)
	if f.Plan == "" {
		plan = models.PlanBasic
	}
	return services.AgencyInput{
		Name:        f.Name,
		City:        f.City,
		Website:     f.Website,
		Description: f.Description,
		Plan:        plan,
		IsActive:    f.IsActive != "",
	}
}

// formFile returns the named upload or nil when the field is empty.
func formFile(c *gin.Context, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil || fh.Filename == "" {
		return nil
	}
	return fh
}

func (h *Handlers) CreateAgency(c *gin.Context) {
	lang := h.language(c)

	var form agencyForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "agency_form.html", gin.H{
			"agency": nil,
			"error":  h.Translations.Resolve("agency_error_required", lang),
		})
		return
	}

	_, err := h.Agencies.Create(middleware.Identity(c), form.input(), formFile(c, "logo"), formFile(c, "cover"))
	if err != nil {
		key := "agency_error_save"
		status := http.StatusInternalServerError
		if errors.Is(err, apperr.ErrValidation) {
			key = "agency_error_required"
			status = http.StatusBadRequest
		}
		h.render(c, status, "agency_form.html", gin.H{
			"agency": nil,
			"error":  h.Translations.Resolve(key, lang),
		})
		return
	}

	flash(c, h.Translations.Resolve("agency_add_success", lang))
	c.Redirect(http.StatusFound, "/admin/agencies")
}

func (h *Handlers) ShowEditAgency(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.String(http.StatusBadRequest, "invalid agency id")
		return
	}

	agency, err := h.Agencies.Get(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			c.String(http.StatusNotFound, "agency not found")
			return
		}
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	h.render(c, http.StatusOK, "agency_form.html", gin.H{"agency": agency, "error": ""})
}

func (h *Handlers) UpdateAgency(c *gin.Context) {
	lang := h.language(c)

	id, ok := parseID(c)
	if !ok {
		c.String(http.StatusBadRequest, "invalid agency id")
		return
	}

	var form agencyForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}

	_, err := h.Agencies.Update(middleware.Identity(c), id, form.input(), formFile(c, "logo"), formFile(c, "cover"))
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			c.String(http.StatusNotFound, "agency not found")
		case errors.Is(err, apperr.ErrValidation):
			h.render(c, http.StatusBadRequest, "agency_form.html", gin.H{
				"agency": nil,
				"error":  h.Translations.Resolve("agency_error_required", lang),
			})
		default:
			c.String(http.StatusInternalServerError, "internal error")
		}
		return
	}

	flash(c, h.Translations.Resolve("agency_edit_success", lang))
	c.Redirect(http.StatusFound, "/admin/agencies")
}

func (h *Handlers) DeleteAgency(c *gin.Context) {
	lang := h.language(c)

	id, ok := parseID(c)
	if !ok {
		c.String(http.StatusBadRequest, "invalid agency id")
		return
	}

	if err := h.Agencies.Delete(middleware.Identity(c), id); err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	flash(c, h.Translations.Resolve("agency_delete_success", lang))
	c.Redirect(http.StatusFound, "/admin/agencies")
}

type reorderAgenciesRequest struct {
	AgencyIDs []uint `json:"agency_ids"`
}

// ReorderAgencies is the drag-and-drop AJAX endpoint; it answers JSON like
// the rest of the reorder endpoints.
func (h *Handlers) ReorderAgencies(c *gin.Context) {
	var req reorderAgenciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error"})
		return
	}

	if err := h.Agencies.Reorder(middleware.Identity(c), req.AgencyIDs); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, apperr.ErrValidation) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"status": "error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

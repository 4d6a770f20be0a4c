package handlers

import (
	"errors"
	"net/http"

	"marseille-immobilier/internal/apperr"
	"marseille-immobilier/internal/middleware"

	"github.com/gin-gonic/gin"
)

// ShowAgencyImages renders the gallery manager for one agency.
func (h *Handlers) ShowAgencyImages(c *gin.Context) {
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

	h.render(c, http.StatusOK, "agency_images.html", gin.H{
		"agency": agency,
		"images": agency.Images,
	})
}

func (h *Handlers) AddAgencyImages(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.String(http.StatusBadRequest, "invalid agency id")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}

	_, err = h.Agencies.AddImages(middleware.Identity(c), id, form.File["images"])
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			c.String(http.StatusNotFound, "agency not found")
		case errors.Is(err, apperr.ErrValidation):
			c.String(http.StatusBadRequest, err.Error())
		default:
			c.String(http.StatusInternalServerError, "internal error")
		}
		return
	}

	c.Redirect(http.StatusFound, "/admin/agencies/images/"+c.Param("id"))
}

func (h *Handlers) DeleteAgencyImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.String(http.StatusBadRequest, "invalid image id")
		return
	}

	if err := h.Agencies.DeleteImage(middleware.Identity(c), id); err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	if ref := c.Request.Referer(); ref != "" {
		c.Redirect(http.StatusFound, ref)
		return
	}
	c.Redirect(http.StatusFound, "/admin/agencies")
}

func (h *Handlers) SetPrimaryAgencyImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error"})
		return
	}

	if err := h.Agencies.SetPrimaryImage(middleware.Identity(c), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, apperr.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"status": "error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

type reorderImagesRequest struct {
	ImageIDs []uint `json:"image_ids"`
}

func (h *Handlers) ReorderAgencyImages(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error"})
		return
	}

	var req reorderImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error"})
		return
	}

	if err := h.Agencies.ReorderImages(middleware.Identity(c), id, req.ImageIDs); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, apperr.ErrValidation) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"status": "error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

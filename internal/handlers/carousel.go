package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"marseille-immobilier/internal/apperr"
	"marseille-immobilier/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) ShowCarousel(c *gin.Context) {
	settings, items, err := h.Carousel.GetAdmin(middleware.Identity(c))
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	h.render(c, http.StatusOK, "carousel.html", gin.H{
		"settings": settings,
		"items":    items,
	})
}

func (h *Handlers) UpdateCarouselSettings(c *gin.Context) {
	isActive := c.PostForm("is_active") != ""
	interval, err := strconv.Atoi(c.PostForm("interval_seconds"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid interval")
		return
	}

	if err := h.Carousel.UpdateSettings(middleware.Identity(c), isActive, interval); err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Redirect(http.StatusFound, "/admin/carousel")
}

func (h *Handlers) AddCarouselItem(c *gin.Context) {
	upload := formFile(c, "image")

	_, err := h.Carousel.AddItem(middleware.Identity(c), upload, c.PostForm("link_url"), c.PostForm("alt_text"))
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Redirect(http.StatusFound, "/admin/carousel")
}

func (h *Handlers) DeleteCarouselItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.String(http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.Carousel.DeleteItem(middleware.Identity(c), id); err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Redirect(http.StatusFound, "/admin/carousel")
}

func (h *Handlers) ToggleCarouselItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error"})
		return
	}

	if err := h.Carousel.ToggleItem(middleware.Identity(c), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, apperr.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"status": "error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

type reorderCarouselRequest struct {
	ItemIDs []uint `json:"item_ids"`
}

func (h *Handlers) ReorderCarousel(c *gin.Context) {
	var req reorderCarouselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error"})
		return
	}

	if err := h.Carousel.Reorder(middleware.Identity(c), req.ItemIDs); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, apperr.ErrValidation) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"status": "error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

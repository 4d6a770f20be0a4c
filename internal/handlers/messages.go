package handlers

import (
	"errors"
	"net/http"

	"marseille-immobilier/internal/apperr"
	"marseille-immobilier/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) ListMessages(c *gin.Context) {
	unreadOnly := c.Query("unread") == "1"

	msgs, err := h.Contact.List(middleware.Identity(c), unreadOnly)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	h.render(c, http.StatusOK, "messages.html", gin.H{
		"messages":   msgs,
		"unreadOnly": unreadOnly,
	})
}

func (h *Handlers) MarkMessageRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error"})
		return
	}

	if err := h.Contact.MarkRead(middleware.Identity(c), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, apperr.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"status": "error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handlers) DeleteMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.String(http.StatusBadRequest, "invalid message id")
		return
	}

	if err := h.Contact.Delete(middleware.Identity(c), id); err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Redirect(http.StatusFound, "/admin/messages")
}

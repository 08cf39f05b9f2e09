package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"doctor-booking-api/internal/catalog"
)

func (h *Handler) listDoctors(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 6)
	if page < 1 || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page and limit must be positive"})
		return
	}

	res, err := h.catalog.Query(c.Request.Context(), page, limit, c.Query("specialty"))
	if errors.Is(err, catalog.ErrQueryFailed) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not load doctors, try again"})
		return
	}
	if err != nil {
		// ctx cancelled mid-delay, client is gone
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) listSpecialties(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"specialties": catalog.Specialties})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return n
}

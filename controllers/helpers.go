package controllers

import (
	"errors"
	"net/http"

	"knowledge-portal-api/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps workflow errors onto HTTP responses. Every rejected
// operation carries the message naming the unmet precondition.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrEmptyText),
		errors.Is(err, services.ErrEmptySelection),
		errors.Is(err, services.ErrNoEligibleReviewer),
		errors.Is(err, services.ErrMissingKnowledgeCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// identityFromContext reads the authenticated identity set by the middleware.
func identityFromContext(c *gin.Context) (phone, name, role string) {
	if v, ok := c.Get("phone"); ok {
		phone = v.(string)
	}
	if v, ok := c.Get("name"); ok {
		name = v.(string)
	}
	if v, ok := c.Get("role"); ok {
		role = v.(string)
	}
	return
}

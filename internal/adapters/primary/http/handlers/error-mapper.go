package handlers

import (
	"errors"
	"net/http"

	"rental-price-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func statusForError(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrPredictionNotFound),
		errors.Is(err, domain.ErrHistoryDisabled):
		return http.StatusNotFound

	// Bad request / validation errors
	case errors.Is(err, domain.ErrUnknownFurnishing),
		errors.Is(err, domain.ErrInvalidPredictionID):
		return http.StatusBadRequest

	// Model rejected the row
	case errors.Is(err, domain.ErrShapeMismatch):
		return http.StatusUnprocessableEntity

	// Upstream model server errors
	case errors.Is(err, domain.ErrInferenceFailed):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

func mapDomainError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

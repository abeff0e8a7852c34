package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/remittance_advisor/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP status and writes {"error": msg}.
// fallback is the message used for unexpected errors.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrLookup):
		logger.Error("Upstream rate lookup failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNumeric):
		logger.Error("Rate data could not be evaluated", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

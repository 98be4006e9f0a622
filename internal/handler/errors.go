// Package handler exposes the HTTP facade over the repositories.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"neuralpulse/internal/domain"
	"neuralpulse/internal/logger"
	"neuralpulse/internal/middleware"
	"neuralpulse/internal/validator"
)

// respondError logs the failure with request context and writes the JSON
// error response. Status codes follow the storage error taxonomy: validation
// 400, not found 404, conflict 409, everything else 500.
func respondError(c *gin.Context, op string, err error) {
	log := logger.WithRequestID(middleware.GetRequestID(c))

	switch {
	case validator.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": op + " not found"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": op + " already exists"})
	case errors.Is(err, domain.ErrConsistency):
		log.Error("storage consistency violation", "operation", op, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	default:
		log.Error("request failed", "operation", op, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// decodeJSON reads the request body into dst, rejecting unknown fields.
func decodeJSON(c *gin.Context, dst any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	// A body with trailing garbage after the first JSON value is malformed.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

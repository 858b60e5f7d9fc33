package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"remainder-service/internal/config"
	"remainder-service/internal/store"
	"remainder-service/internal/validation"
)

// Every response uses the same envelope: {success, message, ...}. Failures
// optionally carry a per-field errors array.

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

func respondFieldErrors(c *gin.Context, errs []validation.FieldError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation errors",
		"errors":  errs,
	})
}

// respondStoreError maps store failures onto the envelope: not-found to 404,
// a defense-in-depth validation rejection back to the 400 shape, anything
// else to a generic 500 that leaks nothing.
func respondStoreError(c *gin.Context, route string, err error) {
	var verr *validation.Error
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(c, http.StatusNotFound, "Remainder not found")
	case errors.As(err, &verr):
		respondFieldErrors(c, verr.Fields)
	default:
		config.Logger().WithField("route", route).Errorln("store error:", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

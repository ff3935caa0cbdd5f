package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"veridect/types"
)

// errorKind returns the HTTP status and machine-readable kind for a
// pipeline error. Input and extraction errors stay in the 4xx range;
// model and internal faults are 5xx, distinct from anything the user
// can correct.
func errorKind(err error) (int, string) {
	switch {
	case errors.Is(err, types.ErrMissingText):
		return http.StatusBadRequest, "missing_text"
	case errors.Is(err, types.ErrTooShort):
		return http.StatusBadRequest, "text_too_short"
	case errors.Is(err, types.ErrTooLong):
		return http.StatusBadRequest, "text_too_long"
	case errors.Is(err, types.ErrEmptyAfterClean):
		return http.StatusBadRequest, "empty_after_cleaning"
	case errors.Is(err, types.ErrUnsupportedInput):
		return http.StatusBadRequest, "unsupported_input"
	case errors.Is(err, types.ErrModelNotLoaded):
		return http.StatusInternalServerError, "model_not_loaded"
	}

	var extErr *types.ExtractionError
	if errors.As(err, &extErr) {
		return http.StatusUnprocessableEntity, "extraction_failed"
	}

	var dimErr *types.DimensionalityError
	if errors.As(err, &dimErr) {
		return http.StatusInternalServerError, "dimensionality_mismatch"
	}

	return http.StatusInternalServerError, "internal_error"
}

// respondError writes the structured error body shared by all
// endpoints.
func respondError(c *gin.Context, err error) {
	status, kind := errorKind(err)
	c.JSON(status, gin.H{
		"error":   kind,
		"message": err.Error(),
	})
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Vuongmtien/final-test-fullstack-BE/roster"
)

// atoiOr parses s, falling back to def when empty or malformed.
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// writeError maps roster errors onto the HTTP boundary. Anything not in the
// taxonomy is a store failure and stays a generic 500.
func writeError(c echo.Context, err error) error {
	var ve *roster.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": ve.Fields})
	case errors.Is(err, roster.ErrInvalidID):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	case errors.Is(err, roster.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	case errors.Is(err, roster.ErrConflict):
		return c.JSON(http.StatusConflict, map[string]string{"error": "USER_ALREADY_HAS_TEACHER"})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return c.JSON(http.StatusConflict, map[string]string{"error": "DUPLICATE_KEY"})
	case errors.Is(err, roster.ErrCodeExhausted):
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "CODE_GENERATION_FAILED"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
}

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Vuongmtien/final-test-fullstack-BE/database"
	"github.com/Vuongmtien/final-test-fullstack-BE/models"
)

// Health serves /health.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// DBInfo reports row counts per table, handy when checking a fresh import.
func DBInfo(c echo.Context) error {
	tables := map[string]any{
		"users":     &models.User{},
		"teachers":  &models.Teacher{},
		"positions": &models.TeacherPosition{},
	}
	counts := make(map[string]int64, len(tables))
	for name, model := range tables {
		var n int64
		if err := database.DB.Model(model).Count(&n).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
		}
		counts[name] = n
	}
	return c.JSON(http.StatusOK, map[string]any{"counts": counts})
}

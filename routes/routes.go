package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Vuongmtien/final-test-fullstack-BE/handlers"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo) {
	tch := handlers.NewTeacherHandler()
	pos := handlers.NewPositionHandler()

	e.GET("/health", handlers.Health)

	api := e.Group("/api")

	api.GET("/positions", pos.List)
	api.POST("/positions", pos.Create)
	api.PUT("/positions/:id", pos.Update)
	api.DELETE("/positions/:id", pos.Delete)

	api.GET("/teachers", tch.List)
	api.GET("/teachers/all", tch.ListAll)
	api.GET("/teachers/:id", tch.Get)
	api.POST("/teachers", tch.Create)
	api.PUT("/teachers/:id", tch.Update)
	api.DELETE("/teachers/:id", tch.Delete)

	api.GET("/debug/dbinfo", handlers.DBInfo)
}

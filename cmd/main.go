package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Vuongmtien/final-test-fullstack-BE/config"
	"github.com/Vuongmtien/final-test-fullstack-BE/database"
	"github.com/Vuongmtien/final-test-fullstack-BE/routes"
)

func main() {
	cfg := config.Load()

	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

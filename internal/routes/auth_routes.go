package routes

import (
	"github.com/GhufranBkri/Sipema-backend/internal/handler"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	levelRepo := repository.NewUserLevelRepository(db)
	hdl := handler.NewAuthHandler(service.NewAuthService(userRepo, levelRepo))

	api := app.Group("/api/auth")
	api.Post("/register", hdl.Register)
	api.Post("/login", hdl.Login)
}

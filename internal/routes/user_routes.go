package routes

import (
	"github.com/GhufranBkri/Sipema-backend/internal/authz"
	"github.com/GhufranBkri/Sipema-backend/internal/handler"
	"github.com/GhufranBkri/Sipema-backend/internal/middleware"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB, authorizer authz.Authorizer) {
	userRepo := repository.NewUserRepository(db)
	levelRepo := repository.NewUserLevelRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	hdl := handler.NewUserHandler(service.NewUserService(userRepo, levelRepo, unitRepo))

	api := app.Group("/api/users", middleware.Auth)
	api.Get("/profile", hdl.GetProfile) // Profil pemanggil sendiri, tanpa izin khusus
	api.Get("/", middleware.Permission(authorizer, "USER_MANAGEMENT", "read"), hdl.GetAll)
	api.Get("/:noIdentitas", middleware.Permission(authorizer, "USER_MANAGEMENT", "read"), hdl.GetByNoIdentitas)
	api.Patch("/:noIdentitas", middleware.Permission(authorizer, "USER_MANAGEMENT", "update"), hdl.Update)
	api.Delete("/:noIdentitas", middleware.Permission(authorizer, "USER_MANAGEMENT", "delete"), hdl.Delete)
}
